package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// InvestigationService orchestrates investigation CRUD.
type InvestigationService interface {
	Create(ctx context.Context, input InvestigationCreate) (*domain.Investigation, error)
	Get(ctx context.Context, id int64) (*domain.Investigation, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.Investigation, domain.Pagination, error)
	ListByCase(ctx context.Context, caseID int64, page domain.PageRequest) ([]domain.Investigation, domain.Pagination, error)
	Update(ctx context.Context, id int64, input InvestigationUpdate) (*domain.Investigation, error)
	Delete(ctx context.Context, id int64) error
}
