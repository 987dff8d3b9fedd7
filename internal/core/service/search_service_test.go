package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

func entitySet(names ...string) *[]string {
	if names == nil {
		names = []string{}
	}
	return &names
}

func newSearchFixture() (*stubCaseRepo, *stubCustomerRepo, *stubInvestigationRepo, *stubTargetRepo, *SearchService) {
	cases := newStubCaseRepo()
	customers := newStubCustomerRepo()
	investigations := newStubInvestigationRepo()
	targets := newStubTargetRepo()
	svc := NewSearchService(cases, customers, investigations, targets, zerolog.Nop())
	return cases, customers, investigations, targets, svc
}

func TestSearchService_DefaultsToAllEntities(t *testing.T) {
	cases, customers, investigations, targets, svc := newSearchFixture()
	cases.add("Phoenix breach", "open")
	customers.add(1, "Phoenix Retail")
	inv := investigations.add(1, "Phoenix network sweep")
	inv.Description = "phoenix perimeter"
	targets.add(inv.ID, "phoenix-db-01")

	name := "phoenix"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{Name: &name}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results.Cases) != 1 || len(results.Customers) != 1 || len(results.Targets) != 1 {
		t.Fatalf("expected matches across entities: %+v", results)
	}
	// Name is not in the investigation whitelist, so all investigations match.
	if len(results.Investigations) != 1 {
		t.Fatalf("expected 1 investigation, got %d", len(results.Investigations))
	}
}

func TestSearchService_UnrequestedEntitiesStayEmpty(t *testing.T) {
	cases, customers, _, _, svc := newSearchFixture()
	cases.add("Hydra", "open")
	customers.add(1, "Hydra Logistics")

	name := "hydra"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities: entitySet(ports.EntityCases),
		Name:     &name,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results.Cases) != 1 {
		t.Fatalf("expected 1 case, got %d", len(results.Cases))
	}
	if results.Customers == nil || len(results.Customers) != 0 {
		t.Fatalf("unrequested customers must be an empty list: %+v", results.Customers)
	}
	if results.Investigations == nil || results.Targets == nil {
		t.Fatalf("all entity keys must be present: %+v", results)
	}
}

func TestSearchService_ExplicitEmptyEntitySet(t *testing.T) {
	cases, customers, _, _, svc := newSearchFixture()
	cases.add("Hydra", "open")
	customers.add(1, "Hydra Logistics")

	name := "hydra"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities: entitySet(),
		Name:     &name,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	// An explicit empty list requests no types at all, unlike an absent one.
	if len(results.Cases) != 0 || len(results.Customers) != 0 ||
		len(results.Investigations) != 0 || len(results.Targets) != 0 {
		t.Fatalf("explicit empty entity set must match nothing: %+v", results)
	}
	if results.Cases == nil || results.Customers == nil || results.Investigations == nil || results.Targets == nil {
		t.Fatalf("all entity keys must still be present: %+v", results)
	}
}

func TestSearchService_StatusExactMatch(t *testing.T) {
	cases, _, _, _, svc := newSearchFixture()
	cases.add("A", "open")
	cases.add("B", "reopened")

	status := "open"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities: entitySet(ports.EntityCases),
		Status:   &status,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results.Cases) != 1 || results.Cases[0].Name != "A" {
		t.Fatalf("status must match exactly, got %+v", results.Cases)
	}
}

func TestSearchService_CrossEntityCustomerName(t *testing.T) {
	cases, customers, _, _, svc := newSearchFixture()
	a := cases.add("Alpha", "open")
	b := cases.add("Beta", "open")
	cases.add("Gamma", "open")
	customers.add(a.ID, "Nakamura Trading")
	customers.add(b.ID, "Nakamura Shipping")
	customers.add(a.ID, "Nakamura West") // same case twice, ids must deduplicate

	customerName := "nakamura"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities:     entitySet(ports.EntityCases),
		CrossEntity:  true,
		CustomerName: &customerName,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results.Cases) != 2 {
		t.Fatalf("expected the 2 cases owning matching customers, got %+v", results.Cases)
	}
}

func TestSearchService_CrossEntityEmptySetKeepsPriorResult(t *testing.T) {
	cases, _, _, _, svc := newSearchFixture()
	cases.add("Alpha", "open")
	cases.add("Beta", "open")

	customerName := "nobody"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities:     entitySet(ports.EntityCases),
		CrossEntity:  true,
		CustomerName: &customerName,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	// No customer matched, so the per-entity filter result stands.
	if len(results.Cases) != 2 {
		t.Fatalf("empty join set must leave prior cases untouched, got %+v", results.Cases)
	}
}

func TestSearchService_CrossEntityTargetName(t *testing.T) {
	_, _, investigations, targets, svc := newSearchFixture()
	invA := investigations.add(1, "Sweep A")
	investigations.add(1, "Sweep B")
	targets.add(invA.ID, "db-primary")

	targetName := "db-"
	results, err := svc.Search(context.Background(), ports.SearchCriteria{
		Entities:    entitySet(ports.EntityInvestigations),
		CrossEntity: true,
		TargetName:  &targetName,
	}, domain.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results.Investigations) != 1 || results.Investigations[0].ID != invA.ID {
		t.Fatalf("expected only the investigation owning the matching target, got %+v", results.Investigations)
	}
}
