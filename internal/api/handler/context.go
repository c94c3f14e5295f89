package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storecore/catalog-api/internal/api/middleware"
)

// ctxUsername extracts the authenticated subject injected by the Auth
// middleware. An empty value means the middleware never ran on this route,
// which is a wiring mistake; fail closed with 401.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.ContextUsername).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
