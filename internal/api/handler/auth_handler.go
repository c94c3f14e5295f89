package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storecore/catalog-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token            string `json:"token"`
	Type             string `json:"type"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
}

// Token handles POST /api/auth/token.
//
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]interface{}
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Token:            result.Token,
		Type:             "Bearer",
		ExpiresInSeconds: result.ExpiresInSeconds,
	})
}
