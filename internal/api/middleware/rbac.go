package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth; an
// authenticated caller whose role is not in the allowed set gets a 403.
// Every admin-gated route, customers included, goes through this one path.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
