package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/api/metrics"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// InvestigationHandler handles HTTP requests for investigation operations.
type InvestigationHandler struct {
	service ports.InvestigationService
}

func NewInvestigationHandler(service ports.InvestigationService) *InvestigationHandler {
	return &InvestigationHandler{service: service}
}

type createInvestigationRequest struct {
	CaseID      int64   `json:"case_id" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// updateInvestigationRequest keeps the date fields raw so that an absent
// field, an explicit null and a value can be told apart.
type updateInvestigationRequest struct {
	CaseID      *int64          `json:"case_id"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	StartDate   json.RawMessage `json:"start_date"`
	EndDate     json.RawMessage `json:"end_date"`
}

var jsonNull = []byte("null")

// parseDate turns an optional YYYY-MM-DD string into a domain date. Empty
// strings are treated as absent, matching clients that send "" for unset
// date pickers.
func parseDate(value *string, field string) (*domain.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(*value)
	if err != nil {
		return nil, domain.Validation(field + " must be in YYYY-MM-DD format")
	}
	return &d, nil
}

// parseDateField decodes a raw update field into its tri-state form.
func parseDateField(raw json.RawMessage, field string) (ports.OptionalDate, error) {
	if raw == nil {
		return ports.OptionalDate{}, nil
	}
	if bytes.Equal(raw, jsonNull) {
		return ports.OptionalDate{Set: true}, nil
	}
	s, err := strconv.Unquote(string(raw))
	if err != nil {
		return ports.OptionalDate{}, domain.Validation(field + " must be in YYYY-MM-DD format")
	}
	if s == "" {
		return ports.OptionalDate{Set: true}, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return ports.OptionalDate{}, domain.Validation(field + " must be in YYYY-MM-DD format")
	}
	return ports.OptionalDate{Set: true, Value: &d}, nil
}

// List handles GET /investigations.
func (h *InvestigationHandler) List(c echo.Context) error {
	items, pagination, err := h.service.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "investigations retrieved", "investigations", orEmpty(items), pagination)
}

// ListByCase handles GET /investigations/case/:case_id.
func (h *InvestigationHandler) ListByCase(c echo.Context) error {
	caseID, err := idParam(c, "case_id")
	if err != nil {
		return err
	}
	items, pagination, err := h.service.ListByCase(c.Request().Context(), caseID, pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "investigations retrieved", "investigations", orEmpty(items), pagination)
}

// Get handles GET /investigations/:id.
func (h *InvestigationHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "investigation retrieved", "investigation", item)
}

// Create handles POST /investigations (admin only).
func (h *InvestigationHandler) Create(c echo.Context) error {
	var req createInvestigationRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate, "end_date")
	if err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.InvestigationCreate{
		CaseID:      req.CaseID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("investigation").Inc()

	return respond(c, http.StatusCreated, "investigation created successfully", "investigation", item)
}

// Update handles PUT /investigations/:id (admin only).
func (h *InvestigationHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateInvestigationRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	startDate, err := parseDateField(req.StartDate, "start_date")
	if err != nil {
		return err
	}
	endDate, err := parseDateField(req.EndDate, "end_date")
	if err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.InvestigationUpdate{
		CaseID:      req.CaseID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "investigation updated successfully", "investigation", item)
}

// Delete handles DELETE /investigations/:id (admin only). Targets under the
// investigation are removed with it.
func (h *InvestigationHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("investigation").Inc()

	return respondMessage(c, "investigation deleted successfully")
}
