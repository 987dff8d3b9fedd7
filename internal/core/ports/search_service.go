package ports

import (
	"context"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// Entity-set selector values accepted in SearchCriteria.Entities.
const (
	EntityCases          = "cases"
	EntityCustomers      = "customers"
	EntityInvestigations = "investigations"
	EntityTargets        = "targets"
)

// SearchCriteria is the free-form search payload. Each field applies only to
// the entity types whose whitelist includes it; a nil field is simply not
// part of the conjunction. A nil Entities selects all four types; an
// explicit empty list selects none.
type SearchCriteria struct {
	Entities *[]string

	Name        *string
	Status      *string
	Description *string

	Email   *string
	Phone   *string
	Address *string
	CaseID  *int64

	Title *string

	Type            *string
	Details         *string
	InvestigationID *int64

	// Cross-entity two-hop joins: customer name resolves to cases, target
	// name resolves to investigations.
	CrossEntity  bool
	CustomerName *string
	TargetName   *string
}

// Empty reports whether the criteria carries no usable information.
func (c SearchCriteria) Empty() bool {
	return c.Entities == nil && !c.CrossEntity &&
		c.Name == nil && c.Status == nil && c.Description == nil &&
		c.Email == nil && c.Phone == nil && c.Address == nil && c.CaseID == nil &&
		c.Title == nil && c.Type == nil && c.Details == nil && c.InvestigationID == nil &&
		c.CustomerName == nil && c.TargetName == nil
}

// SearchResults maps every entity type to its (possibly empty) result list.
// Unrequested types report empty lists, never absent keys.
type SearchResults struct {
	Cases          []domain.Case          `json:"cases"`
	Customers      []domain.Customer      `json:"customers"`
	Investigations []domain.Investigation `json:"investigations"`
	Targets        []domain.Target        `json:"targets"`
}

// SearchService builds and executes per-entity conjunctive filters plus the
// optional cross-entity joins.
type SearchService interface {
	Search(ctx context.Context, criteria SearchCriteria, page domain.PageRequest) (*SearchResults, error)
}
