package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// RequireRoles lets the request through when the authenticated caller holds at
// least one of the given roles. It must run after Auth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get(ContextRoles).([]string)
			for _, role := range granted {
				if _, ok := allowed[role]; ok {
					return next(c)
				}
			}
			return domain.ErrAccessDenied
		}
	}
}
