package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redirector/internal/config"
	"redirector/internal/middleware"
)

func newThrottledEcho(cfg *config.SubmitConfig) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	e := echo.New()
	e.POST("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, middleware.SubmitThrottle(cfg, logger))
	return e
}

func submit(e *echo.Echo, remote, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remote
	if bypass != "" {
		req.Header.Set(middleware.BypassHeader, bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitThrottle_AllowsRequestsUnderLimit(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 10, Burst: 5})

	for i := 0; i < 5; i++ {
		rec := submit(e, "192.168.1.1:12345", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}
}

func TestSubmitThrottle_Returns429WithRetryAfter(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 0.1, Burst: 1})

	submit(e, "192.168.1.3:12345", "")
	rec := submit(e, "192.168.1.3:12345", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "too many submissions", resp.Error)
	assert.Equal(t, 1, resp.RetryAfter)
}

func TestSubmitThrottle_SharedAcrossClients(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 0.1, Burst: 1})

	first := submit(e, "192.168.1.4:12345", "")
	assert.Equal(t, http.StatusOK, first.Code)

	second := submit(e, "192.168.1.5:12345", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code, "limit is global, not per client")
}

func TestSubmitThrottle_BypassWithCorrectSecret(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 0.1, Burst: 1, BypassSecret: "test_secret"})

	for i := 0; i < 10; i++ {
		rec := submit(e, "192.168.1.6:12345", "test_secret")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d with bypass should succeed", i)
	}
}

func TestSubmitThrottle_BypassWithWrongSecret(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 0.1, Burst: 1, BypassSecret: "test_secret"})

	submit(e, "192.168.1.7:12345", "wrong_secret")
	rec := submit(e, "192.168.1.7:12345", "wrong_secret")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "wrong secret should not bypass throttle")
}

func TestSubmitThrottle_BypassDisabledWhenSecretEmpty(t *testing.T) {
	e := newThrottledEcho(&config.SubmitConfig{RPS: 0.1, Burst: 1})

	submit(e, "192.168.1.8:12345", "any_value")
	rec := submit(e, "192.168.1.8:12345", "any_value")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "bypass should be disabled when secret is empty")
}
