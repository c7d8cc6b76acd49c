// Package handler holds the JSON response envelope and the error mapping
// shared by the storefront and admin route groups.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wicaksana/atelier/internal/domain"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler builds the echo error handler: domain errors map to their
// status and safe message, validation errors carry per-field detail, and
// anything else becomes an opaque 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := ErrorResponse{
			Error: domain.ErrorMessage(err),
			Code:  domain.ErrorCode(err),
		}
		status := statusForCode(resp.Code)

		if fields := domain.GetValidationFields(err); fields != nil {
			status = http.StatusBadRequest
			resp.Code = domain.EINVALID
			resp.Error = "Validation failed"
			resp.Fields = fields
		}

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				resp.Error = msg
			}
			resp.Code = domain.EINVALID
			if status >= 500 {
				resp.Code = domain.EINTERNAL
			}
		}

		if status >= 500 {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
