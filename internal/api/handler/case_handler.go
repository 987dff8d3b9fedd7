package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/api/metrics"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// CaseHandler handles HTTP requests for case operations.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

type createCaseRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// updateCaseRequest applies partial updates: absent fields stay untouched.
type updateCaseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// List handles GET /cases.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int  false  "Page number (1-based)"
// @Param        per_page  query     int  false  "Page size"
// @Success      200       {object}  map[string]any
// @Router       /cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	items, pagination, err := h.service.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "cases retrieved", "cases", orEmpty(items), pagination)
}

// Get handles GET /cases/:id.
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "case retrieved", "case", item)
}

// Create handles POST /cases (admin only).
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CaseCreate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("case").Inc()

	return respond(c, http.StatusCreated, "case created successfully", "case", item)
}

// Update handles PUT /cases/:id (admin only).
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.CaseUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "case updated successfully", "case", item)
}

// Delete handles DELETE /cases/:id (admin only). All customers,
// investigations and targets under the case are removed with it.
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("case").Inc()

	return respondMessage(c, "case deleted successfully")
}
