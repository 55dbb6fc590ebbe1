package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"redirector/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// unmeteredPrefix covers the profiling routes, whose long-running captures
// would swamp the latency series.
const unmeteredPrefix = "/debug/pprof"

// Metrics records one HTTPMetric per request, keyed by the route template so
// that ids do not blow up cardinality.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if strings.HasPrefix(c.Path(), unmeteredPrefix) {
				return err
			}

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				Error:      errStr,
				RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
			})

			return err
		}
	}
}
