package domain

import "testing"

func TestNewPageRequest_Clamping(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults", 0, 0, 1, DefaultPerPage},
		{"negative", -3, -1, 1, DefaultPerPage},
		{"over max", 2, 500, 2, MaxPerPage},
		{"in range", 4, 25, 4, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageRequest(tt.page, tt.perPage)
			if got.Page != tt.wantPage || got.PerPage != tt.wantPerPage {
				t.Fatalf("NewPageRequest(%d, %d) = %+v", tt.page, tt.perPage, got)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	if got := NewPageRequest(3, 10).Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := NewPageRequest(1, 10).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(NewPageRequest(2, 10), 25)
	if p.Pages != 3 || p.Total != 25 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("middle page must have both neighbours: %+v", p)
	}

	last := NewPagination(NewPageRequest(3, 10), 25)
	if last.HasNext || !last.HasPrev {
		t.Fatalf("last page flags wrong: %+v", last)
	}

	empty := NewPagination(NewPageRequest(1, 10), 0)
	if empty.Pages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result flags wrong: %+v", empty)
	}
}

func TestNewPagination_PagePastEnd(t *testing.T) {
	p := NewPagination(NewPageRequest(10, 10), 5)
	if p.HasNext {
		t.Fatalf("page past end must not report has_next: %+v", p)
	}
	if !p.HasPrev {
		t.Fatalf("page past end should still report has_prev: %+v", p)
	}
}
