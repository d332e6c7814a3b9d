package routes

import (
	"errors"
	"fmt"
	"net/http"

	"ImpactFlow/internal/auth"
	"ImpactFlow/internal/store"
	"ImpactFlow/pkg/middleware"
	"ImpactFlow/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler renders handler errors as {"error": "..."} with a status
// derived from the error kind.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := StatusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		if status == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, map[string]string{"error": msg})
		}
		if werr != nil {
			logger.Warn("could not write error response", zap.Error(werr))
		}
	}
}

// StatusFor maps an error to its HTTP status and client-facing message.
// Unclassified errors become a generic 500.
func StatusFor(err error) (int, string) {
	var verr *validation.ValidationError
	var herr *echo.HTTPError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, auth.ErrDuplicateIdentity):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, auth.ErrInactiveAccount):
		return http.StatusForbidden, "User is inactive"
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, middleware.ErrForbidden):
		return http.StatusForbidden, "Forbidden: insufficient permissions"
	case errors.Is(err, store.ErrDuplicateKey):
		return http.StatusBadRequest, "Duplicate record"
	case errors.Is(err, store.ErrStoreUnavailable):
		return http.StatusInternalServerError, "Database not available"
	case errors.As(err, &herr):
		return herr.Code, fmt.Sprint(herr.Message)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
