package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// RegisterInput carries a new user registration. Role is optional; unknown
// values are coerced to the general role.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService implements login and admin-driven user registration.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user. The error never reveals whether the username exists.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
