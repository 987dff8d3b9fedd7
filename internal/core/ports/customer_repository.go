package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

type CustomerCreate struct {
	CaseID  int64
	Name    string
	Email   string
	Phone   string
	Address string
}

// CustomerUpdate applies partial-update semantics: nil fields are left
// untouched. A non-nil CaseID reassigns the customer and is re-validated
// against the case table.
type CustomerUpdate struct {
	CaseID  *int64
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// CustomerSearch is the conjunctive filter whitelist for customers.
// Name, Email, Phone and Address match as case-insensitive substrings,
// CaseID matches exactly.
type CustomerSearch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	CaseID  *int64
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, input CustomerCreate) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	// List returns a page of customers ordered by id ascending. When caseID is
	// non-nil the result is scoped to that case.
	List(ctx context.Context, caseID *int64, page domain.PageRequest) ([]domain.Customer, int64, error)
	Update(ctx context.Context, id int64, input CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter CustomerSearch, page domain.PageRequest) ([]domain.Customer, int64, error)
	// DistinctCaseIDs returns the deduplicated case ids of customers whose
	// name contains the given substring (case-insensitive).
	DistinctCaseIDs(ctx context.Context, name string) ([]int64, error)
}
