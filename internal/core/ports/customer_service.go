package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// CustomerService orchestrates customer CRUD. Creates and case reassignments
// validate that the referenced case exists before any write.
type CustomerService interface {
	Create(ctx context.Context, input CustomerCreate) (*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.Customer, domain.Pagination, error)
	// ListByCase fails with ErrCaseNotFound when the case does not exist.
	ListByCase(ctx context.Context, caseID int64, page domain.PageRequest) ([]domain.Customer, domain.Pagination, error)
	Update(ctx context.Context, id int64, input CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
