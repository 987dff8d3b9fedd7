package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// CaseService orchestrates case CRUD: required-field validation, partial
// updates, and cascading deletes.
type CaseService interface {
	Create(ctx context.Context, input CaseCreate) (*domain.Case, error)
	Get(ctx context.Context, id int64) (*domain.Case, error)
	List(ctx context.Context, page domain.PageRequest) ([]domain.Case, domain.Pagination, error)
	Update(ctx context.Context, id int64, input CaseUpdate) (*domain.Case, error)
	Delete(ctx context.Context, id int64) error
}
