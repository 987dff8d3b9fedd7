package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// TargetService orchestrates target CRUD.
type TargetService interface {
	Create(ctx context.Context, input TargetCreate) (*domain.Target, error)
	Get(ctx context.Context, id int64) (*domain.Target, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.Target, domain.Pagination, error)
	ListByInvestigation(ctx context.Context, investigationID int64, page domain.PageRequest) ([]domain.Target, domain.Pagination, error)
	Update(ctx context.Context, id int64, input TargetUpdate) (*domain.Target, error)
	Delete(ctx context.Context, id int64) error
}
