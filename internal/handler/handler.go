package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"redirector/internal/domain"
	"redirector/internal/middleware"
	"redirector/internal/service"
)

const (
	typeEnabled  = "enabled"
	typeDisabled = "disabled"
	typeDomains  = "domains"
	typeWords    = "words"
	typeToggle   = "toggle"

	stateDeleted = "deleted"
)

var (
	errInvalidBody = map[string]string{"error": "invalid request body"}
	errUnknownType = map[string]string{"error": "unknown type"}
	errInternal    = map[string]string{"error": "internal server error"}
	errUnavailable = map[string]string{"error": "could not allocate an identifier, try again later"}
	respHealthOK   = map[string]string{"status": "ok"}
)

type Handler struct {
	service RedirectService
	logger  *slog.Logger
}

func New(service RedirectService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts all routes. guard protects privileged routes and throttle
// is applied to submissions.
func (h *Handler) Register(e *echo.Echo, guard, throttle echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.POST("/", h.Submit, throttle)
	e.GET("/", h.ListAll, guard)
	e.GET("/blacklist/:type", h.ListByType, guard)
	e.POST("/blacklist/:type", h.Toggle, guard)
	e.GET("/:id", h.Resolve)
	e.DELETE("/:id", h.Delete, guard)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Submit(c echo.Context) error {
	var req domain.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	ip := middleware.ClientIP(c)
	resp, err := h.service.Submit(c.Request().Context(), req.Link, ip)
	if err != nil {
		return h.fail(c, "submit", err)
	}

	h.logger.Info("redirect submitted",
		slog.String("id", resp.ID),
		slog.String("url", resp.URL),
		slog.String("ip", ip))
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Resolve(c echo.Context) error {
	target, err := h.service.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "resolve", err)
	}
	return c.Redirect(http.StatusFound, target)
}

func (h *Handler) ListAll(c echo.Context) error {
	list, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) ListByType(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		list any
		err  error
	)
	switch c.Param("type") {
	case typeEnabled:
		list, err = h.service.ListEnabled(ctx)
	case typeDisabled:
		list, err = h.service.ListDisabled(ctx)
	case typeDomains:
		list, err = h.service.ListBlacklistedDomains(ctx)
	case typeWords:
		list, err = h.service.ListBlacklistedWords(ctx)
	default:
		return c.JSON(http.StatusBadRequest, errUnknownType)
	}
	if err != nil {
		return h.fail(c, "list", err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) Toggle(c echo.Context) error {
	kind := c.Param("type")
	if kind != typeToggle && kind != typeDomains && kind != typeWords {
		return c.JSON(http.StatusBadRequest, errUnknownType)
	}

	var req domain.ModerationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	ctx := c.Request().Context()
	var (
		state string
		err   error
	)
	switch kind {
	case typeToggle:
		var s domain.RedirectState
		s, err = h.service.ToggleEnabled(ctx, req.Value)
		state = string(s)
	case typeDomains:
		var s domain.BlacklistChange
		s, err = h.service.ToggleDomainBlacklist(ctx, req.Value)
		state = string(s)
	case typeWords:
		var s domain.BlacklistChange
		s, err = h.service.ToggleWordBlacklist(ctx, req.Value)
		state = string(s)
	}
	if err != nil {
		return h.fail(c, "toggle "+kind, err)
	}

	h.logger.Info("moderation change",
		slog.String("type", kind),
		slog.String("value", req.Value),
		slog.String("state", state),
		slog.String("ip", middleware.ClientIP(c)))
	return c.JSON(http.StatusOK, domain.ModerationResponse{Value: req.Value, State: state})
}

func (h *Handler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "delete", err)
	}

	h.logger.Info("redirect deleted",
		slog.String("id", id),
		slog.String("ip", middleware.ClientIP(c)))
	return c.JSON(http.StatusOK, domain.ModerationResponse{Value: id, State: stateDeleted})
}

// fail writes the response for err. Client errors carry their own message;
// server faults are logged and answered generically.
func (h *Handler) fail(c echo.Context, op string, err error) error {
	var svcErr *service.Error
	switch {
	case errors.Is(err, service.ErrExhausted):
		h.logFailure(c, op, err)
		return c.JSON(http.StatusServiceUnavailable, errUnavailable)
	case errors.Is(err, service.ErrPersistence), !errors.As(err, &svcErr):
		h.logFailure(c, op, err)
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
	return c.JSON(statusFor(svcErr.Kind), map[string]string{"error": svcErr.Message})
}

func (h *Handler) logFailure(c echo.Context, op string, err error) {
	h.logger.Error("request failed",
		slog.String("op", op),
		slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		slog.String("error", err.Error()))
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
