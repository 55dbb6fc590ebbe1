package middleware

import (
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/labstack/echo/v4"

	"redirector/internal/config"
)

var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// RegisterPprof mounts the runtime profiling handlers on g. Callers are
// expected to guard g with RequireToken. Block and mutex profiles stay empty
// unless the configured sampling rates are positive.
func RegisterPprof(g *echo.Group, cfg *config.PprofConfig) {
	if cfg.BlockProfileRate > 0 {
		runtime.SetBlockProfileRate(cfg.BlockProfileRate)
	}
	if cfg.MutexProfileFraction > 0 {
		runtime.SetMutexProfileFraction(cfg.MutexProfileFraction)
	}

	routes := map[string]http.HandlerFunc{
		"/":        pprof.Index,
		"/cmdline": pprof.Cmdline,
		"/profile": pprof.Profile,
		"/symbol":  pprof.Symbol,
		"/trace":   pprof.Trace,
	}
	for path, fn := range routes {
		g.GET(path, echo.WrapHandler(fn))
	}
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))

	for _, name := range profiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
