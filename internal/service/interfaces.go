package service

//go:generate go tool mockery

import (
	"context"

	"redirector/internal/domain"
)

type RedirectStore interface {
	FindByID(ctx context.Context, id string) (*domain.Redirect, error)
	FindByURL(ctx context.Context, url string) (*domain.Redirect, error)
	Create(ctx context.Context, id, url, ip string) (*domain.Redirect, error)
	Delete(ctx context.Context, id string) error
	IncrementAccess(ctx context.Context, id string) error
	Enable(ctx context.Context, id string) error
	Disable(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.RedirectSummary, error)
	ListEnabled(ctx context.Context) ([]domain.RedirectSummary, error)
	ListDisabled(ctx context.Context) ([]domain.RedirectSummary, error)
}

type ModerationStore interface {
	IsDomainBlacklisted(ctx context.Context, domain string) (bool, error)
	IsWordBlacklisted(ctx context.Context, word string) (bool, error)
	ContainsBlacklistedWord(ctx context.Context, candidate string) (bool, error)
	AddDomain(ctx context.Context, domain string) error
	RemoveDomain(ctx context.Context, domain string) error
	AddWord(ctx context.Context, word string) error
	RemoveWord(ctx context.Context, word string) error
	ListDomains(ctx context.Context) ([]string, error)
	ListWords(ctx context.Context) ([]string, error)
}

type IdentifierGenerator interface {
	Generate() string
}

type Cache interface {
	Get(id string) (domain.RedirectSummary, bool)
	Set(r domain.RedirectSummary)
	Delete(id string)
}

type URLValidator interface {
	ValidateURL(url string) error
	ValidateDomain(domain string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
