package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

type CaseService struct {
	repo   ports.CaseRepository
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, logger: logger}
}

func (s *CaseService) Create(ctx context.Context, input ports.CaseCreate) (*domain.Case, error) {
	if input.Name == "" {
		return nil, domain.Validation("case name is required")
	}
	if input.Status == "" {
		input.Status = domain.DefaultStatus
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("case_id", created.ID).Str("name", created.Name).Msg("case created")
	return created, nil
}

func (s *CaseService) Get(ctx context.Context, id int64) (*domain.Case, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CaseService) List(ctx context.Context, page domain.PageRequest) ([]domain.Case, domain.Pagination, error) {
	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *CaseService) Update(ctx context.Context, id int64, input ports.CaseUpdate) (*domain.Case, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *CaseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("case_id", id).Msg("case deleted with descendants")
	return nil
}
