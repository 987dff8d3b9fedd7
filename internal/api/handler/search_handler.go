package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/casedesk/casedesk/internal/api/metrics"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// SearchHandler handles the cross-entity search endpoint.
type SearchHandler struct {
	service ports.SearchService
}

func NewSearchHandler(service ports.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

type searchRequest struct {
	Entities *[]string `json:"entities"`

	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Description *string `json:"description"`

	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	CaseID  *int64  `json:"case_id"`

	Title *string `json:"title"`

	Type            *string `json:"type"`
	Details         *string `json:"details"`
	InvestigationID *int64  `json:"investigation_id"`

	CrossEntity  bool    `json:"cross_entity"`
	CustomerName *string `json:"customer_name"`
	TargetName   *string `json:"target_name"`
}

// Search handles POST /search.
//
// @Summary      Search across cases, customers, investigations and targets
// @Tags         search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      searchRequest  true  "Search criteria"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]any
// @Router       /search [post]
func (h *SearchHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	criteria := ports.SearchCriteria{
		Entities:        req.Entities,
		Name:            req.Name,
		Status:          req.Status,
		Description:     req.Description,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		CaseID:          req.CaseID,
		Title:           req.Title,
		Type:            req.Type,
		Details:         req.Details,
		InvestigationID: req.InvestigationID,
		CrossEntity:     req.CrossEntity,
		CustomerName:    req.CustomerName,
		TargetName:      req.TargetName,
	}
	if criteria.Empty() {
		return domain.Validation("search criteria are required")
	}

	timer := prometheus.NewTimer(metrics.SearchDuration)
	defer timer.ObserveDuration()
	metrics.SearchesTotal.Inc()

	results, err := h.service.Search(c.Request().Context(), criteria, pageRequest(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "search completed", "results", results)
}
