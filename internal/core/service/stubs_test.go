package service

import (
	"context"
	"sort"
	"strings"

	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. Filters mirror the
// store behaviour: substring matches are case-insensitive, exact matches are
// literal, and paging slices the id-ordered result.

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func pageSlice[T any](items []T, page domain.PageRequest) ([]T, int64) {
	total := int64(len(items))
	start := page.Offset()
	if start >= len(items) {
		return []T{}, total
	}
	end := start + page.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

type stubCaseRepo struct {
	nextID int64
	cases  map[int64]*domain.Case
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{nextID: 1, cases: make(map[int64]*domain.Case)}
}

func (r *stubCaseRepo) add(name, status string) *domain.Case {
	c := &domain.Case{ID: r.nextID, Name: name, Status: status}
	r.nextID++
	r.cases[c.ID] = c
	return c
}

func (r *stubCaseRepo) sorted() []domain.Case {
	out := make([]domain.Case, 0, len(r.cases))
	for _, c := range r.cases {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubCaseRepo) Create(_ context.Context, input ports.CaseCreate) (*domain.Case, error) {
	c := r.add(input.Name, input.Status)
	c.Description = input.Description
	clone := *c
	return &clone, nil
}

func (r *stubCaseRepo) GetByID(_ context.Context, id int64) (*domain.Case, error) {
	if c, ok := r.cases[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCaseNotFound
}

func (r *stubCaseRepo) List(_ context.Context, page domain.PageRequest) ([]domain.Case, int64, error) {
	items, total := pageSlice(r.sorted(), page)
	return items, total, nil
}

func (r *stubCaseRepo) Update(_ context.Context, id int64, input ports.CaseUpdate) (*domain.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, domain.ErrCaseNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Status != nil {
		c.Status = *input.Status
	}
	clone := *c
	return &clone, nil
}

func (r *stubCaseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.cases[id]; !ok {
		return domain.ErrCaseNotFound
	}
	delete(r.cases, id)
	return nil
}

func (r *stubCaseRepo) Search(_ context.Context, filter ports.CaseSearch, page domain.PageRequest) ([]domain.Case, int64, error) {
	idSet := make(map[int64]bool, len(filter.IDs))
	for _, id := range filter.IDs {
		idSet[id] = true
	}
	var matched []domain.Case
	for _, c := range r.sorted() {
		if filter.Name != nil && !containsFold(c.Name, *filter.Name) {
			continue
		}
		if filter.Description != nil && !containsFold(c.Description, *filter.Description) {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if len(idSet) > 0 && !idSet[c.ID] {
			continue
		}
		matched = append(matched, c)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

type stubCustomerRepo struct {
	nextID    int64
	customers map[int64]*domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{nextID: 1, customers: make(map[int64]*domain.Customer)}
}

func (r *stubCustomerRepo) add(caseID int64, name string) *domain.Customer {
	c := &domain.Customer{ID: r.nextID, CaseID: caseID, Name: name}
	r.nextID++
	r.customers[c.ID] = c
	return c
}

func (r *stubCustomerRepo) sorted() []domain.Customer {
	out := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubCustomerRepo) Create(_ context.Context, input ports.CustomerCreate) (*domain.Customer, error) {
	c := r.add(input.CaseID, input.Name)
	c.Email, c.Phone, c.Address = input.Email, input.Phone, input.Address
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := r.customers[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *stubCustomerRepo) List(_ context.Context, caseID *int64, page domain.PageRequest) ([]domain.Customer, int64, error) {
	var matched []domain.Customer
	for _, c := range r.sorted() {
		if caseID != nil && c.CaseID != *caseID {
			continue
		}
		matched = append(matched, c)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id int64, input ports.CustomerUpdate) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	if input.CaseID != nil {
		c.CaseID = *input.CaseID
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Address != nil {
		c.Address = *input.Address
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) Search(_ context.Context, filter ports.CustomerSearch, page domain.PageRequest) ([]domain.Customer, int64, error) {
	var matched []domain.Customer
	for _, c := range r.sorted() {
		if filter.Name != nil && !containsFold(c.Name, *filter.Name) {
			continue
		}
		if filter.Email != nil && !containsFold(c.Email, *filter.Email) {
			continue
		}
		if filter.Phone != nil && !containsFold(c.Phone, *filter.Phone) {
			continue
		}
		if filter.Address != nil && !containsFold(c.Address, *filter.Address) {
			continue
		}
		if filter.CaseID != nil && c.CaseID != *filter.CaseID {
			continue
		}
		matched = append(matched, c)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

func (r *stubCustomerRepo) DistinctCaseIDs(_ context.Context, name string) ([]int64, error) {
	seen := make(map[int64]bool)
	var ids []int64
	for _, c := range r.sorted() {
		if containsFold(c.Name, name) && !seen[c.CaseID] {
			seen[c.CaseID] = true
			ids = append(ids, c.CaseID)
		}
	}
	return ids, nil
}

type stubInvestigationRepo struct {
	nextID         int64
	investigations map[int64]*domain.Investigation
}

func newStubInvestigationRepo() *stubInvestigationRepo {
	return &stubInvestigationRepo{nextID: 1, investigations: make(map[int64]*domain.Investigation)}
}

func (r *stubInvestigationRepo) add(caseID int64, title string) *domain.Investigation {
	inv := &domain.Investigation{ID: r.nextID, CaseID: caseID, Title: title}
	r.nextID++
	r.investigations[inv.ID] = inv
	return inv
}

func (r *stubInvestigationRepo) sorted() []domain.Investigation {
	out := make([]domain.Investigation, 0, len(r.investigations))
	for _, inv := range r.investigations {
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubInvestigationRepo) Create(_ context.Context, input ports.InvestigationCreate) (*domain.Investigation, error) {
	inv := r.add(input.CaseID, input.Title)
	inv.Description, inv.Status = input.Description, input.Status
	inv.StartDate, inv.EndDate = input.StartDate, input.EndDate
	clone := *inv
	return &clone, nil
}

func (r *stubInvestigationRepo) GetByID(_ context.Context, id int64) (*domain.Investigation, error) {
	if inv, ok := r.investigations[id]; ok {
		clone := *inv
		return &clone, nil
	}
	return nil, domain.ErrInvestigationNotFound
}

func (r *stubInvestigationRepo) List(_ context.Context, caseID *int64, page domain.PageRequest) ([]domain.Investigation, int64, error) {
	var matched []domain.Investigation
	for _, inv := range r.sorted() {
		if caseID != nil && inv.CaseID != *caseID {
			continue
		}
		matched = append(matched, inv)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

func (r *stubInvestigationRepo) Update(_ context.Context, id int64, input ports.InvestigationUpdate) (*domain.Investigation, error) {
	inv, ok := r.investigations[id]
	if !ok {
		return nil, domain.ErrInvestigationNotFound
	}
	if input.CaseID != nil {
		inv.CaseID = *input.CaseID
	}
	if input.Title != nil {
		inv.Title = *input.Title
	}
	if input.Description != nil {
		inv.Description = *input.Description
	}
	if input.Status != nil {
		inv.Status = *input.Status
	}
	if input.StartDate.Set {
		inv.StartDate = input.StartDate.Value
	}
	if input.EndDate.Set {
		inv.EndDate = input.EndDate.Value
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvestigationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.investigations[id]; !ok {
		return domain.ErrInvestigationNotFound
	}
	delete(r.investigations, id)
	return nil
}

func (r *stubInvestigationRepo) Search(_ context.Context, filter ports.InvestigationSearch, page domain.PageRequest) ([]domain.Investigation, int64, error) {
	idSet := make(map[int64]bool, len(filter.IDs))
	for _, id := range filter.IDs {
		idSet[id] = true
	}
	var matched []domain.Investigation
	for _, inv := range r.sorted() {
		if filter.Title != nil && !containsFold(inv.Title, *filter.Title) {
			continue
		}
		if filter.Description != nil && !containsFold(inv.Description, *filter.Description) {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		if filter.CaseID != nil && inv.CaseID != *filter.CaseID {
			continue
		}
		if len(idSet) > 0 && !idSet[inv.ID] {
			continue
		}
		matched = append(matched, inv)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

type stubTargetRepo struct {
	nextID  int64
	targets map[int64]*domain.Target
}

func newStubTargetRepo() *stubTargetRepo {
	return &stubTargetRepo{nextID: 1, targets: make(map[int64]*domain.Target)}
}

func (r *stubTargetRepo) add(investigationID int64, name string) *domain.Target {
	tgt := &domain.Target{ID: r.nextID, InvestigationID: investigationID, Name: name}
	r.nextID++
	r.targets[tgt.ID] = tgt
	return tgt
}

func (r *stubTargetRepo) sorted() []domain.Target {
	out := make([]domain.Target, 0, len(r.targets))
	for _, tgt := range r.targets {
		out = append(out, *tgt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubTargetRepo) Create(_ context.Context, input ports.TargetCreate) (*domain.Target, error) {
	tgt := r.add(input.InvestigationID, input.Name)
	tgt.Type, tgt.Details, tgt.Status = input.Type, input.Details, input.Status
	clone := *tgt
	return &clone, nil
}

func (r *stubTargetRepo) GetByID(_ context.Context, id int64) (*domain.Target, error) {
	if tgt, ok := r.targets[id]; ok {
		clone := *tgt
		return &clone, nil
	}
	return nil, domain.ErrTargetNotFound
}

func (r *stubTargetRepo) List(_ context.Context, investigationID *int64, page domain.PageRequest) ([]domain.Target, int64, error) {
	var matched []domain.Target
	for _, tgt := range r.sorted() {
		if investigationID != nil && tgt.InvestigationID != *investigationID {
			continue
		}
		matched = append(matched, tgt)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

func (r *stubTargetRepo) Update(_ context.Context, id int64, input ports.TargetUpdate) (*domain.Target, error) {
	tgt, ok := r.targets[id]
	if !ok {
		return nil, domain.ErrTargetNotFound
	}
	if input.InvestigationID != nil {
		tgt.InvestigationID = *input.InvestigationID
	}
	if input.Name != nil {
		tgt.Name = *input.Name
	}
	if input.Type != nil {
		tgt.Type = *input.Type
	}
	if input.Details != nil {
		tgt.Details = *input.Details
	}
	if input.Status != nil {
		tgt.Status = *input.Status
	}
	clone := *tgt
	return &clone, nil
}

func (r *stubTargetRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.targets[id]; !ok {
		return domain.ErrTargetNotFound
	}
	delete(r.targets, id)
	return nil
}

func (r *stubTargetRepo) Search(_ context.Context, filter ports.TargetSearch, page domain.PageRequest) ([]domain.Target, int64, error) {
	var matched []domain.Target
	for _, tgt := range r.sorted() {
		if filter.Name != nil && !containsFold(tgt.Name, *filter.Name) {
			continue
		}
		if filter.Type != nil && !containsFold(tgt.Type, *filter.Type) {
			continue
		}
		if filter.Details != nil && !containsFold(tgt.Details, *filter.Details) {
			continue
		}
		if filter.Status != nil && tgt.Status != *filter.Status {
			continue
		}
		if filter.InvestigationID != nil && tgt.InvestigationID != *filter.InvestigationID {
			continue
		}
		matched = append(matched, tgt)
	}
	items, total := pageSlice(matched, page)
	return items, total, nil
}

func (r *stubTargetRepo) DistinctInvestigationIDs(_ context.Context, name string) ([]int64, error) {
	seen := make(map[int64]bool)
	var ids []int64
	for _, tgt := range r.sorted() {
		if containsFold(tgt.Name, name) && !seen[tgt.InvestigationID] {
			seen[tgt.InvestigationID] = true
			ids = append(ids, tgt.InvestigationID)
		}
	}
	return ids, nil
}
