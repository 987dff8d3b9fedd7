package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// condBuilder accumulates WHERE clauses and their positional arguments.
// Conditions are passed with a %d placeholder for the argument index,
// e.g. add("name ILIKE $%d", pattern).
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// next reserves the next argument slot and returns its placeholder index.
func (b *condBuilder) next(arg any) int {
	b.args = append(b.args, arg)
	return len(b.args)
}

func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// likePattern wraps a term for case-insensitive substring matching.
func likePattern(term string) string {
	return "%" + term + "%"
}

// Postgres error codes surfaced as domain errors. Constraint violations are
// the transactional backstop behind the services' existence pre-checks: a
// parent deleted between validation and write still resolves to NotFound.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pgForeignKeyViolation:
		switch {
		case strings.Contains(pqErr.Constraint, "case_id"):
			return domain.ErrCaseNotFound
		case strings.Contains(pqErr.Constraint, "investigation_id"):
			return domain.ErrInvestigationNotFound
		}
	case pgUniqueViolation:
		switch {
		case strings.Contains(pqErr.Constraint, "username"):
			return domain.ErrUsernameTaken
		case strings.Contains(pqErr.Constraint, "email"):
			return domain.ErrEmailTaken
		}
	}
	return err
}
