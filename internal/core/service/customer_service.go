package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	cases  ports.CaseRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, cases ports.CaseRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, cases: cases, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, input ports.CustomerCreate) (*domain.Customer, error) {
	if input.Name == "" || input.CaseID == 0 {
		return nil, domain.Validation("customer name and case_id are required")
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("customer_id", created.ID).Int64("case_id", created.CaseID).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, page domain.PageRequest) ([]domain.Customer, domain.Pagination, error) {
	items, total, err := s.repo.List(ctx, nil, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *CustomerService) ListByCase(ctx context.Context, caseID int64, page domain.PageRequest) ([]domain.Customer, domain.Pagination, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, domain.Pagination{}, err
	}
	items, total, err := s.repo.List(ctx, &caseID, page)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return items, domain.NewPagination(page, total), nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, input ports.CustomerUpdate) (*domain.Customer, error) {
	// A reassignment must reference an existing case before any field is applied.
	if input.CaseID != nil {
		if _, err := s.cases.GetByID(ctx, *input.CaseID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, input)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
