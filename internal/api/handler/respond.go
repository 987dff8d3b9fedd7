package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// respond renders the uniform success envelope with the resource under its
// own key: {"status": "success", "message": ..., "<key>": ...}.
func respond(c echo.Context, code int, message, key string, payload any) error {
	return c.JSON(code, echo.Map{
		"status":  "success",
		"message": message,
		key:       payload,
	})
}

// respondList renders a paginated list response.
func respondList(c echo.Context, message, key string, payload any, pagination domain.Pagination) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "success",
		"message":    message,
		key:          payload,
		"pagination": pagination,
	})
}

// respondMessage renders an envelope with no resource payload (deletes).
func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": message,
	})
}

// pageRequest reads page/per_page query parameters; defaults and bounds are
// applied by NewPageRequest.
func pageRequest(c echo.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	return domain.NewPageRequest(page, perPage)
}

// idParam parses the named path parameter as a positive integer id. A
// non-numeric id cannot address any row, so it renders as 404.
func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return id, nil
}

// orEmpty guarantees lists serialize as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
