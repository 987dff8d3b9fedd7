package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// SearchService composes per-entity conjunctive filters and the two
// cross-entity joins (customer name → cases, target name → investigations).
type SearchService struct {
	cases          ports.CaseRepository
	customers      ports.CustomerRepository
	investigations ports.InvestigationRepository
	targets        ports.TargetRepository
	logger         zerolog.Logger
}

func NewSearchService(
	cases ports.CaseRepository,
	customers ports.CustomerRepository,
	investigations ports.InvestigationRepository,
	targets ports.TargetRepository,
	logger zerolog.Logger,
) *SearchService {
	return &SearchService{
		cases:          cases,
		customers:      customers,
		investigations: investigations,
		targets:        targets,
		logger:         logger,
	}
}

func (s *SearchService) Search(ctx context.Context, criteria ports.SearchCriteria, page domain.PageRequest) (*ports.SearchResults, error) {
	entities := []string{ports.EntityCases, ports.EntityCustomers, ports.EntityInvestigations, ports.EntityTargets}
	if criteria.Entities != nil {
		entities = *criteria.Entities
	}
	requested := make(map[string]bool, len(entities))
	for _, e := range entities {
		requested[e] = true
	}

	// Every entity type is present in the response, empty when unrequested.
	results := &ports.SearchResults{
		Cases:          []domain.Case{},
		Customers:      []domain.Customer{},
		Investigations: []domain.Investigation{},
		Targets:        []domain.Target{},
	}

	if requested[ports.EntityCases] {
		items, _, err := s.cases.Search(ctx, ports.CaseSearch{
			Name:        criteria.Name,
			Status:      criteria.Status,
			Description: criteria.Description,
		}, page)
		if err != nil {
			return nil, err
		}
		if items != nil {
			results.Cases = items
		}
	}

	if requested[ports.EntityCustomers] {
		items, _, err := s.customers.Search(ctx, ports.CustomerSearch{
			Name:    criteria.Name,
			Email:   criteria.Email,
			Phone:   criteria.Phone,
			Address: criteria.Address,
			CaseID:  criteria.CaseID,
		}, page)
		if err != nil {
			return nil, err
		}
		if items != nil {
			results.Customers = items
		}
	}

	if requested[ports.EntityInvestigations] {
		items, _, err := s.investigations.Search(ctx, ports.InvestigationSearch{
			Title:       criteria.Title,
			Description: criteria.Description,
			Status:      criteria.Status,
			CaseID:      criteria.CaseID,
		}, page)
		if err != nil {
			return nil, err
		}
		if items != nil {
			results.Investigations = items
		}
	}

	if requested[ports.EntityTargets] {
		items, _, err := s.targets.Search(ctx, ports.TargetSearch{
			Name:            criteria.Name,
			Type:            criteria.Type,
			Details:         criteria.Details,
			Status:          criteria.Status,
			InvestigationID: criteria.InvestigationID,
		}, page)
		if err != nil {
			return nil, err
		}
		if items != nil {
			results.Targets = items
		}
	}

	if criteria.CrossEntity {
		if criteria.CustomerName != nil && requested[ports.EntityCases] {
			ids, err := s.customers.DistinctCaseIDs(ctx, *criteria.CustomerName)
			if err != nil {
				return nil, err
			}
			// An empty id set leaves the previously computed cases untouched.
			if len(ids) > 0 {
				items, _, err := s.cases.Search(ctx, ports.CaseSearch{IDs: ids}, page)
				if err != nil {
					return nil, err
				}
				results.Cases = items
				if results.Cases == nil {
					results.Cases = []domain.Case{}
				}
			}
		}

		if criteria.TargetName != nil && requested[ports.EntityInvestigations] {
			ids, err := s.targets.DistinctInvestigationIDs(ctx, *criteria.TargetName)
			if err != nil {
				return nil, err
			}
			if len(ids) > 0 {
				items, _, err := s.investigations.Search(ctx, ports.InvestigationSearch{IDs: ids}, page)
				if err != nil {
					return nil, err
				}
				results.Investigations = items
				if results.Investigations == nil {
					results.Investigations = []domain.Investigation{}
				}
			}
		}
	}

	s.logger.Debug().
		Strs("entities", entities).
		Bool("cross_entity", criteria.CrossEntity).
		Int("cases", len(results.Cases)).
		Int("customers", len(results.Customers)).
		Int("investigations", len(results.Investigations)).
		Int("targets", len(results.Targets)).
		Msg("search executed")

	return results, nil
}
