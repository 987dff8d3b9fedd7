package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrForbidden          = errors.New("admin privileges required")

	ErrCaseNotFound          = errors.New("case not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvestigationNotFound = errors.New("investigation not found")
	ErrTargetNotFound        = errors.New("target not found")
)

// ValidationError signals missing or malformed input. It renders as a 400
// with its message at the request boundary.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Validation builds a ValidationError from a plain message.
func Validation(msg string) error { return ValidationError(msg) }
