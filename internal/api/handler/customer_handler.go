package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/api/metrics"
	"github.com/casedesk/casedesk/internal/core/domain"
	"github.com/casedesk/casedesk/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type createCustomerRequest struct {
	CaseID  int64  `json:"case_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type updateCustomerRequest struct {
	CaseID  *int64  `json:"case_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// List handles GET /customers.
func (h *CustomerHandler) List(c echo.Context) error {
	items, pagination, err := h.service.List(c.Request().Context(), pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "customers retrieved", "customers", orEmpty(items), pagination)
}

// ListByCase handles GET /customers/case/:case_id.
func (h *CustomerHandler) ListByCase(c echo.Context) error {
	caseID, err := idParam(c, "case_id")
	if err != nil {
		return err
	}
	items, pagination, err := h.service.ListByCase(c.Request().Context(), caseID, pageRequest(c))
	if err != nil {
		return err
	}
	return respondList(c, "customers retrieved", "customers", orEmpty(items), pagination)
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "customer retrieved", "customer", item)
}

// Create handles POST /customers (admin only).
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CustomerCreate{
		CaseID:  req.CaseID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues("customer").Inc()

	return respond(c, http.StatusCreated, "customer created successfully", "customer", item)
}

// Update handles PUT /customers/:id (admin only).
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.CustomerUpdate{
		CaseID:  req.CaseID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "customer updated successfully", "customer", item)
}

// Delete handles DELETE /customers/:id (admin only).
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues("customer").Inc()

	return respondMessage(c, "customer deleted successfully")
}
