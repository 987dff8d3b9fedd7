package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

type TargetService struct {
	repo           ports.TargetRepository
	investigations ports.InvestigationRepository
	logger         zerolog.Logger
}

func NewTargetService(repo ports.TargetRepository, investigations ports.InvestigationRepository, logger zerolog.Logger) *TargetService {
	return &TargetService{repo: repo, investigations: investigations, logger: logger}
}

func (s *TargetService) Create(ctx context.Context, input ports.TargetCreate) (*domain.Target, error) {
	if input.Name == "" || input.InvestigationID == 0 {
		return nil, domain.Validation("target name and investigation_id are required")
	}
	if _, err := s.investigations.GetByID(ctx, input.InvestigationID); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.DefaultStatus
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("target_id", created.ID).Int64("investigation_id", created.InvestigationID).Msg("target created")
	return created, nil
}

func (s *TargetService) Get(ctx context.Context, id int64) (*domain.Target, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TargetService) List(ctx context.Context, page domain.PageRequest) ([]domain.Target, domain.Pagination, error) {
	items, total, err := s.repo.List(ctx, nil, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *TargetService) ListByInvestigation(ctx context.Context, investigationID int64, page domain.PageRequest) ([]domain.Target, domain.Pagination, error) {
	if _, err := s.investigations.GetByID(ctx, investigationID); err != nil {
		return nil, domain.Pagination{}, err
	}
	items, total, err := s.repo.List(ctx, &investigationID, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *TargetService) Update(ctx context.Context, id int64, input ports.TargetUpdate) (*domain.Target, error) {
	if input.InvestigationID != nil {
		if _, err := s.investigations.GetByID(ctx, *input.InvestigationID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, input)
}

func (s *TargetService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("target_id", id).Msg("target deleted")
	return nil
}
