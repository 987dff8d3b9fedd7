package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// OptionalDate is a tri-state date field for update payloads: not sent
// (Set == false), sent as null or empty (Set == true, Value == nil, clears
// the column), or sent with a value.
type OptionalDate struct {
	Set   bool
	Value *domain.Date
}

type InvestigationCreate struct {
	CaseID      int64
	Title       string
	Description string
	Status      string
	StartDate   *domain.Date
	EndDate     *domain.Date
}

// InvestigationUpdate applies partial-update semantics: nil pointer fields
// and unset dates are left untouched.
type InvestigationUpdate struct {
	CaseID      *int64
	Title       *string
	Description *string
	Status      *string
	StartDate   OptionalDate
	EndDate     OptionalDate
}

// InvestigationSearch is the conjunctive filter whitelist for
// investigations. Title and Description match as case-insensitive
// substrings, Status and CaseID match exactly. When IDs is non-empty the
// result is additionally restricted to those ids.
type InvestigationSearch struct {
	Title       *string
	Description *string
	Status      *string
	CaseID      *int64
	IDs         []int64
}

// InvestigationRepository defines persistence operations for investigations.
type InvestigationRepository interface {
	Create(ctx context.Context, input InvestigationCreate) (*domain.Investigation, error)
	GetByID(ctx context.Context, id int64) (*domain.Investigation, error)
	List(ctx context.Context, caseID *int64, page domain.PageRequest) ([]domain.Investigation, int64, error)
	Update(ctx context.Context, id int64, input InvestigationUpdate) (*domain.Investigation, error)
	// Delete removes the investigation and, through the store's cascade, all
	// of its targets.
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter InvestigationSearch, page domain.PageRequest) ([]domain.Investigation, int64, error)
}
