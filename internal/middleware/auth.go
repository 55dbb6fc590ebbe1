package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"redirector/internal/auth"
)

type Authorizer interface {
	Authorize(header string) error
}

var (
	errEndpointDisabled = map[string]string{"error": "endpoint disabled"}
	errInvalidToken     = map[string]string{"error": "invalid token"}
)

// RequireToken rejects requests whose Authorization header does not carry
// the configured bearer token.
func RequireToken(authorizer Authorizer, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := authorizer.Authorize(c.Request().Header.Get(echo.HeaderAuthorization))
			switch {
			case err == nil:
				return next(c)
			case errors.Is(err, auth.ErrServiceDisabled):
				return c.JSON(http.StatusForbidden, errEndpointDisabled)
			default:
				logger.Warn("rejected privileged request",
					slog.String("ip", ClientIP(c)),
					slog.String("method", c.Request().Method),
					slog.String("path", c.Path()),
				)
				return c.JSON(http.StatusUnauthorized, errInvalidToken)
			}
		}
	}
}

const headerCFConnectingIP = "CF-Connecting-IP"

// ClientIP checks CF-Connecting-IP, then X-Real-IP, then X-Forwarded-For
// and the remote address.
func ClientIP(c echo.Context) string {
	header := c.Request().Header
	for _, name := range []string{headerCFConnectingIP, echo.HeaderXRealIP} {
		if ip := header.Get(name); ip != "" {
			return ip
		}
	}
	return c.RealIP()
}
