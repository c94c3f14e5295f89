package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storecore/catalog-api/internal/api/handler"
	"github.com/storecore/catalog-api/internal/core/domain"
)

// Machine-readable error codes carried in the envelope.
const (
	codeBadRequest           = "BAD_REQUEST"
	codeValidationError      = "VALIDATION_ERROR"
	codeAuthenticationFailed = "AUTHENTICATION_FAILED"
	codeAccessDenied         = "ACCESS_DENIED"
	codeProductNotFound      = "PRODUCT_NOT_FOUND"
	codeProductExists        = "PRODUCT_ALREADY_EXISTS"
	codeIdempotencyReused    = "IDEMPOTENCY_KEY_REUSED"
	codeInternalError        = "INTERNAL_SERVER_ERROR"
)

// errorResponse is the canonical error envelope for all API errors. Details is
// always present, empty unless the error carries field-level messages.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	ErrorCode string    `json:"errorCode"`
	Details   []string  `json:"details"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and error code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the same JSON envelope for every failure.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, errCode, msg, details := resolveError(err, log, c)
		if details == nil {
			details = []string{}
		}

		resp := errorResponse{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Error:     http.StatusText(status),
			Message:   msg,
			Path:      c.Request().URL.Path,
			ErrorCode: errCode,
			Details:   details,
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string, []string) {
	// Field-level validation failures carry their own details list.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, codeValidationError, "Validation failed", ve.Details
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidIdempotencyKey):
		return http.StatusBadRequest, codeBadRequest, err.Error(), nil
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, codeProductNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict, codeProductExists, err.Error(), nil
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		return http.StatusConflict, codeIdempotencyReused, err.Error(), nil
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusUnauthorized, codeAuthenticationFailed, "Authentication failed", nil
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, codeAccessDenied, "Access is denied", nil
	}

	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, codeInternalError, "An unexpected error occurred", nil
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return codeAuthenticationFailed
	case status == http.StatusForbidden:
		return codeAccessDenied
	case status >= 400 && status < 500:
		return codeBadRequest
	default:
		return codeInternalError
	}
}
