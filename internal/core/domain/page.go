package domain

const (
	DefaultPerPage = 10
	// MaxPerPage bounds page size so a single request cannot drain a table.
	MaxPerPage = 100
)

// PageRequest carries normalized pagination parameters. Construct it with
// NewPageRequest so the bounds are always enforced.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest clamps page to >= 1 and perPage to [1, MaxPerPage],
// substituting DefaultPerPage when perPage is zero or negative.
func NewPageRequest(page, perPage int) PageRequest {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return PageRequest{Page: page, PerPage: perPage}
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pagination is the metadata block attached to every list response.
type Pagination struct {
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewPagination computes metadata for a result set of size total. A page
// past the end is legal and simply yields has_next == false.
func NewPagination(p PageRequest, total int64) Pagination {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return Pagination{
		Total:   total,
		Pages:   pages,
		Page:    p.Page,
		PerPage: p.PerPage,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}
