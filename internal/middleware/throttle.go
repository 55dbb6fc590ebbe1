package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"redirector/internal/config"
)

type throttleResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

const (
	BypassHeader       = "X-Throttle-Bypass"
	retryAfterHeader   = "1"
	submitBucket       = "submit"
	submitBucketExpiry = time.Hour
)

var (
	throttleExceededResp = throttleResponse{
		Error:      "too many submissions",
		RetryAfter: 1,
	}
	throttleInternalErr = map[string]string{
		"error": "internal server error",
	}
)

// SubmitThrottle caps the overall submission rate with one shared token
// bucket. Requests presenting the bypass secret are not counted.
func SubmitThrottle(cfg *config.SubmitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: submitBucketExpiry,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if len(secret) == 0 {
				return false
			}
			provided := c.Request().Header.Get(BypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(echo.Context) (string, error) {
			return submitBucket, nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			logger.Warn("submission throttled",
				slog.String("ip", ClientIP(c)),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, throttleExceededResp)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("submit throttle error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, throttleInternalErr)
		},
	})
}
