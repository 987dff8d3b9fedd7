package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

type TargetCreate struct {
	InvestigationID int64
	Name            string
	Type            string
	Details         string
	Status          string
}

// TargetUpdate applies partial-update semantics: nil fields are left
// untouched. A non-nil InvestigationID reassigns the target and is
// re-validated against the investigation table.
type TargetUpdate struct {
	InvestigationID *int64
	Name            *string
	Type            *string
	Details         *string
	Status          *string
}

// TargetSearch is the conjunctive filter whitelist for targets. Name, Type
// and Details match as case-insensitive substrings, Status and
// InvestigationID match exactly.
type TargetSearch struct {
	Name            *string
	Type            *string
	Details         *string
	Status          *string
	InvestigationID *int64
}

// TargetRepository defines persistence operations for targets.
type TargetRepository interface {
	Create(ctx context.Context, input TargetCreate) (*domain.Target, error)
	GetByID(ctx context.Context, id int64) (*domain.Target, error)
	List(ctx context.Context, investigationID *int64, page domain.PageRequest) ([]domain.Target, int64, error)
	Update(ctx context.Context, id int64, input TargetUpdate) (*domain.Target, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter TargetSearch, page domain.PageRequest) ([]domain.Target, int64, error)
	// DistinctInvestigationIDs returns the deduplicated investigation ids of
	// targets whose name contains the given substring (case-insensitive).
	DistinctInvestigationIDs(ctx context.Context, name string) ([]int64, error)
}
