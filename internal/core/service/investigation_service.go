package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

type InvestigationService struct {
	repo   ports.InvestigationRepository
	cases  ports.CaseRepository
	logger zerolog.Logger
}

func NewInvestigationService(repo ports.InvestigationRepository, cases ports.CaseRepository, logger zerolog.Logger) *InvestigationService {
	return &InvestigationService{repo: repo, cases: cases, logger: logger}
}

func (s *InvestigationService) Create(ctx context.Context, input ports.InvestigationCreate) (*domain.Investigation, error) {
	if input.Title == "" || input.CaseID == 0 {
		return nil, domain.Validation("investigation title and case_id are required")
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.DefaultStatus
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("investigation_id", created.ID).Int64("case_id", created.CaseID).Msg("investigation created")
	return created, nil
}

func (s *InvestigationService) Get(ctx context.Context, id int64) (*domain.Investigation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InvestigationService) List(ctx context.Context, page domain.PageRequest) ([]domain.Investigation, domain.Pagination, error) {
	items, total, err := s.repo.List(ctx, nil, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *InvestigationService) ListByCase(ctx context.Context, caseID int64, page domain.PageRequest) ([]domain.Investigation, domain.Pagination, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, domain.Pagination{}, err
	}
	items, total, err := s.repo.List(ctx, &caseID, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *InvestigationService) Update(ctx context.Context, id int64, input ports.InvestigationUpdate) (*domain.Investigation, error) {
	if input.CaseID != nil {
		if _, err := s.cases.GetByID(ctx, *input.CaseID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, input)
}

func (s *InvestigationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("investigation_id", id).Msg("investigation deleted with targets")
	return nil
}
