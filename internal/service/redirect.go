package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"redirector/internal/config"
	"redirector/internal/domain"
	"redirector/internal/repository"
	"redirector/internal/shortener"
)

const defaultMaxAllocationAttempts = 16

type RedirectService struct {
	redirects   RedirectStore
	moderation  ModerationStore
	generator   IdentifierGenerator
	cache       Cache
	validator   URLValidator
	recorder    BusinessRecorder
	logger      *slog.Logger
	baseURL     string
	maxAttempts int
}

func NewRedirectService(
	redirects RedirectStore,
	moderation ModerationStore,
	generator IdentifierGenerator,
	cache Cache,
	validator URLValidator,
	recorder BusinessRecorder,
	cfg *config.AppConfig,
	logger *slog.Logger,
) *RedirectService {
	maxAttempts := cfg.MaxAllocationAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAllocationAttempts
	}
	return &RedirectService{
		redirects:   redirects,
		moderation:  moderation,
		generator:   generator,
		cache:       cache,
		validator:   validator,
		recorder:    recorder,
		logger:      logger,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		maxAttempts: maxAttempts,
	}
}

// Submit returns the short URL for rawURL, creating a redirect the first time
// a URL is seen. Re-submitting a known enabled URL returns the existing id.
func (s *RedirectService) Submit(ctx context.Context, rawURL, ip string) (*domain.SubmitResponse, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, s.rejectSubmit("empty", ErrNoURL)
	}

	decoded, err := url.PathUnescape(trimmed)
	if err != nil || !utf8.ValidString(decoded) {
		return nil, s.rejectSubmit("malformed", ErrMalformedURL)
	}

	if err := s.validator.ValidateURL(decoded); err != nil {
		return nil, s.rejectSubmit("invalid", fmt.Errorf("%w: %w", ErrInvalidURL, err))
	}

	blocked, err := s.moderation.IsDomainBlacklisted(ctx, Hostname(decoded))
	if err != nil {
		return nil, persistence("check domain blacklist", err)
	}
	if blocked {
		return nil, s.rejectSubmit("domain_blacklisted", ErrDomainBlacklisted)
	}

	rd, err := s.redirects.FindByURL(ctx, decoded)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		rd, err = s.allocate(ctx, decoded, ip)
		if err != nil {
			return nil, err
		}
	default:
		return nil, persistence("find redirect by url", err)
	}

	if !rd.Enabled {
		return nil, s.rejectSubmit("url_blacklisted", ErrURLBlacklisted)
	}

	return &domain.SubmitResponse{
		ID:       rd.ID,
		ShortURL: s.shortURL(rd.ID),
		URL:      rd.URL,
	}, nil
}

// allocate draws candidates until one is free and not blacklisted, then
// stores it. Losing an insert race is retried; if the race was on the URL the
// winning redirect is returned instead.
func (s *RedirectService) allocate(ctx context.Context, target, ip string) (*domain.Redirect, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		candidate := s.generator.Generate()

		_, err := s.redirects.FindByID(ctx, candidate)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, persistence("check identifier", err)
		}

		banned, err := s.moderation.ContainsBlacklistedWord(ctx, candidate)
		if err != nil {
			return nil, persistence("check word blacklist", err)
		}
		if banned {
			continue
		}

		created, err := s.redirects.Create(ctx, candidate, target, ip)
		if err == nil {
			s.recorder.RecordBusiness("redirect_created", 1, nil)
			return created, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) && !errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, persistence("create redirect", err)
		}

		s.logger.Warn("redirect insert collided, retrying",
			slog.String("id", candidate),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		winner, err := s.redirects.FindByURL(ctx, target)
		if err == nil {
			return winner, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, persistence("find redirect by url", err)
		}
	}

	s.logger.Error("identifier allocation exhausted", slog.Int("attempts", s.maxAttempts))
	return nil, ErrIDSpaceExhausted
}

// Resolve returns the target of id and counts the access. Disabled redirects
// and redirects whose domain is blacklisted are not counted.
func (s *RedirectService) Resolve(ctx context.Context, id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}

	rd, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}

	if !rd.Enabled {
		s.recorder.RecordBusiness("resolve_blocked", 1, map[string]string{"reason": "disabled"})
		return "", ErrRedirectDisabled
	}

	blocked, err := s.moderation.IsDomainBlacklisted(ctx, Hostname(rd.URL))
	if err != nil {
		return "", persistence("check domain blacklist", err)
	}
	if blocked {
		s.recorder.RecordBusiness("resolve_blocked", 1, map[string]string{"reason": "domain_blacklisted"})
		return "", ErrDomainBlocked
	}

	// The increment only matches enabled rows, so a summary cached before a
	// concurrent disable or delete can never be counted or served.
	if err := s.redirects.IncrementAccess(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			s.cache.Delete(id)
			return "", s.missedAccess(ctx, id)
		}
		return "", persistence("increment access count", err)
	}

	s.recorder.RecordBusiness("redirect_resolved", 1, nil)
	return rd.URL, nil
}

// missedAccess explains an increment that matched no row: the redirect was
// deleted or disabled after it was read.
func (s *RedirectService) missedAccess(ctx context.Context, id string) error {
	rd, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if rd.Enabled {
		s.logger.Warn("redirect re-enabled during resolution", slog.String("id", id))
	}
	s.recorder.RecordBusiness("resolve_blocked", 1, map[string]string{"reason": "disabled"})
	return ErrRedirectDisabled
}

func (s *RedirectService) lookup(ctx context.Context, id string) (domain.RedirectSummary, error) {
	if cached, ok := s.cache.Get(id); ok {
		s.recorder.RecordBusiness("cache_hit", 1, nil)
		return cached, nil
	}
	s.recorder.RecordBusiness("cache_miss", 1, nil)

	rd, err := s.redirects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.RedirectSummary{}, ErrRedirectNotFound
		}
		return domain.RedirectSummary{}, persistence("find redirect", err)
	}

	summary := rd.Summary()
	s.cache.Set(summary)
	return summary, nil
}

func (s *RedirectService) ToggleEnabled(ctx context.Context, id string) (domain.RedirectState, error) {
	rd, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}

	state := domain.StateEnabled
	if rd.Enabled {
		state = domain.StateDisabled
		err = s.redirects.Disable(ctx, id)
	} else {
		err = s.redirects.Enable(ctx, id)
	}
	if err != nil {
		return "", persistence("set redirect state", err)
	}

	s.cache.Delete(id)
	return state, nil
}

func (s *RedirectService) ToggleDomainBlacklist(ctx context.Context, raw string) (domain.BlacklistChange, error) {
	d := normalizeHost(strings.TrimSpace(raw))
	if d == "" {
		return "", ErrNoValue
	}
	if err := s.validator.ValidateDomain(d); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}

	listed, err := s.moderation.IsDomainBlacklisted(ctx, d)
	if err != nil {
		return "", persistence("check domain blacklist", err)
	}

	if listed {
		if err := s.moderation.RemoveDomain(ctx, d); err != nil {
			return "", persistence("remove blacklisted domain", err)
		}
		return domain.BlacklistRemoved, nil
	}

	if err := s.moderation.AddDomain(ctx, d); err != nil {
		return "", persistence("blacklist domain", err)
	}
	return domain.BlacklistAdded, nil
}

// ToggleWordBlacklist flips exact membership of word. Containment only
// applies when screening identifiers.
func (s *RedirectService) ToggleWordBlacklist(ctx context.Context, raw string) (domain.BlacklistChange, error) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", ErrNoValue
	}

	listed, err := s.moderation.IsWordBlacklisted(ctx, word)
	if err != nil {
		return "", persistence("check word blacklist", err)
	}

	if listed {
		if err := s.moderation.RemoveWord(ctx, word); err != nil {
			return "", persistence("remove blacklisted word", err)
		}
		return domain.BlacklistRemoved, nil
	}

	if err := s.moderation.AddWord(ctx, word); err != nil {
		return "", persistence("blacklist word", err)
	}
	return domain.BlacklistAdded, nil
}

func (s *RedirectService) Delete(ctx context.Context, id string) error {
	rd, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.redirects.Delete(ctx, rd.ID); err != nil {
		return persistence("delete redirect", err)
	}

	s.cache.Delete(rd.ID)
	return nil
}

func (s *RedirectService) ListAll(ctx context.Context) ([]domain.RedirectSummary, error) {
	list, err := s.redirects.ListAll(ctx)
	if err != nil {
		return nil, persistence("list redirects", err)
	}
	return list, nil
}

func (s *RedirectService) ListEnabled(ctx context.Context) ([]domain.RedirectSummary, error) {
	list, err := s.redirects.ListEnabled(ctx)
	if err != nil {
		return nil, persistence("list enabled redirects", err)
	}
	return list, nil
}

func (s *RedirectService) ListDisabled(ctx context.Context) ([]domain.RedirectSummary, error) {
	list, err := s.redirects.ListDisabled(ctx)
	if err != nil {
		return nil, persistence("list disabled redirects", err)
	}
	return list, nil
}

func (s *RedirectService) ListBlacklistedDomains(ctx context.Context) ([]string, error) {
	list, err := s.moderation.ListDomains(ctx)
	if err != nil {
		return nil, persistence("list blacklisted domains", err)
	}
	return list, nil
}

func (s *RedirectService) ListBlacklistedWords(ctx context.Context) ([]string, error) {
	list, err := s.moderation.ListWords(ctx)
	if err != nil {
		return nil, persistence("list blacklisted words", err)
	}
	return list, nil
}

// find validates id and loads the full record, bypassing the cache.
func (s *RedirectService) find(ctx context.Context, id string) (*domain.Redirect, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	rd, err := s.redirects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRedirectNotFound
		}
		return nil, persistence("find redirect", err)
	}
	return rd, nil
}

func (s *RedirectService) shortURL(id string) string {
	return s.baseURL + "/" + id
}

func (s *RedirectService) rejectSubmit(reason string, err error) error {
	s.recorder.RecordBusiness("submit_rejected", 1, map[string]string{"reason": reason})
	return err
}

func checkID(id string) error {
	if id == "" {
		return ErrNoID
	}
	if !shortener.ValidID(id) {
		return ErrInvalidID
	}
	return nil
}

// Hostname extracts the host of rawURL as it is matched against the domain
// blacklist: lower-cased, port dropped and one leading "www." removed.
// Unparseable input yields "".
func Hostname(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return normalizeHost(parsed.Hostname())
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
