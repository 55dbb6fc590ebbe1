package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"redirector/internal/auth"
	"redirector/internal/cache"
	"redirector/internal/config"
	"redirector/internal/handler"
	"redirector/internal/metrics"
	custommiddleware "redirector/internal/middleware"
	"redirector/internal/repository"
	"redirector/internal/service"
	"redirector/internal/shortener"
	"redirector/internal/validation"
)

const infraSampleInterval = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := repository.Connect(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	defer pool.Close()

	redirectCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer redirectCache.Close()

	recorder := metrics.NewRecorder(pool, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	if cfg.Metrics.Enabled {
		go metrics.CollectInfra(ctx, recorder, pool, redirectCache, infraSampleInterval)
	}

	access := auth.New(cfg.App.Token)
	if !access.Enabled() {
		logger.Warn("TOKEN is not set, privileged endpoints are disabled")
	}

	svc := service.NewRedirectService(
		repository.NewRedirectRepository(pool),
		repository.NewBlacklistRepository(pool),
		shortener.New(),
		redirectCache,
		validation.New(validation.DefaultMaxURLLength),
		recorder,
		&cfg.App,
		logger,
	)
	h := handler.New(svc, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.CORS())
	e.Use(custommiddleware.Metrics(recorder))

	guard := custommiddleware.RequireToken(access, logger)
	h.Register(e, guard, custommiddleware.SubmitThrottle(&cfg.Submit, logger))

	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e.Group("/debug/pprof", guard), &cfg.Pprof)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("base_url", cfg.App.BaseURL),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newServer(e)
	go serve(httpServer, httpListener, "http", logger)

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		})

		httpsServer = newServer(e)
		go serve(httpsServer, tlsListener, "https", logger)
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener, name string, logger *slog.Logger) {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("server", name), slog.String("error", err.Error()))
	}
}
