package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// CaseCreate carries the fields accepted when creating a case.
type CaseCreate struct {
	Name        string
	Description string
	Status      string
}

// CaseUpdate applies partial-update semantics: nil fields are left untouched.
type CaseUpdate struct {
	Name        *string
	Description *string
	Status      *string
}

// CaseSearch is the conjunctive filter whitelist for cases. Name and
// Description match as case-insensitive substrings, Status matches exactly.
// When IDs is non-empty the result is additionally restricted to those ids.
type CaseSearch struct {
	Name        *string
	Status      *string
	Description *string
	IDs         []int64
}

// CaseRepository defines persistence operations for cases.
type CaseRepository interface {
	Create(ctx context.Context, input CaseCreate) (*domain.Case, error)
	GetByID(ctx context.Context, id int64) (*domain.Case, error)
	// List returns a page of cases ordered by id ascending plus the total count.
	List(ctx context.Context, page domain.PageRequest) ([]domain.Case, int64, error)
	Update(ctx context.Context, id int64, input CaseUpdate) (*domain.Case, error)
	// Delete removes the case and, through the store's cascade, all of its
	// customers, investigations and targets.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter CaseSearch, page domain.PageRequest) ([]domain.Case, int64, error)
}
