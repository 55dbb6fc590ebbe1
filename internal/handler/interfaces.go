package handler

//go:generate go tool mockery

import (
	"context"

	"redirector/internal/domain"
)

type RedirectService interface {
	Submit(ctx context.Context, rawURL, ip string) (*domain.SubmitResponse, error)
	Resolve(ctx context.Context, id string) (string, error)
	ToggleEnabled(ctx context.Context, id string) (domain.RedirectState, error)
	ToggleDomainBlacklist(ctx context.Context, domain string) (domain.BlacklistChange, error)
	ToggleWordBlacklist(ctx context.Context, word string) (domain.BlacklistChange, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.RedirectSummary, error)
	ListEnabled(ctx context.Context) ([]domain.RedirectSummary, error)
	ListDisabled(ctx context.Context) ([]domain.RedirectSummary, error)
	ListBlacklistedDomains(ctx context.Context) ([]string, error)
	ListBlacklistedWords(ctx context.Context) ([]string, error)
}
