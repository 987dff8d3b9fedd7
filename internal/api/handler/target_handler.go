package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/api/metrics"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// TargetHandler handles HTTP requests for target operations.
type TargetHandler struct {
	service ports.TargetService
}

func NewTargetHandler(service ports.TargetService) *TargetHandler {
	return &TargetHandler{service: service}
}

type createTargetRequest struct {
	InvestigationID int64  `json:"investigation_id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type"`
	Details         string `json:"details"`
	Status          string `json:"status"`
}

type updateTargetRequest struct {
	InvestigationID *int64  `json:"investigation_id"`
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	Details         *string `json:"details"`
	Status          *string `json:"status"`
}

// List handles GET /targets.
func (h *TargetHandler) List(c echo.Context) error {
	items, pagination, err := h.service.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "targets retrieved", "targets", orEmpty(items), pagination)
}

// ListByInvestigation handles GET /targets/investigation/:investigation_id.
func (h *TargetHandler) ListByInvestigation(c echo.Context) error {
	investigationID, err := idParam(c, "investigation_id")
	if err != nil {
		return err
	}
	items, pagination, err := h.service.ListByInvestigation(c.Request().Context(), investigationID, pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "targets retrieved", "targets", orEmpty(items), pagination)
}

// Get handles GET /targets/:id.
func (h *TargetHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "target retrieved", "target", item)
}

// Create handles POST /targets (admin only).
func (h *TargetHandler) Create(c echo.Context) error {
	var req createTargetRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.TargetCreate{
		InvestigationID: req.InvestigationID,
		Name:            req.Name,
		Type:            req.Type,
		Details:         req.Details,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("target").Inc()

	return respond(c, http.StatusCreated, "target created successfully", "target", item)
}

// Update handles PUT /targets/:id (admin only).
func (h *TargetHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateTargetRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.TargetUpdate{
		InvestigationID: req.InvestigationID,
		Name:            req.Name,
		Type:            req.Type,
		Details:         req.Details,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "target updated successfully", "target", item)
}

// Delete handles DELETE /targets/:id (admin only).
func (h *TargetHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("target").Inc()

	return respondMessage(c, "target deleted successfully")
}
