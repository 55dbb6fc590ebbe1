package service_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"redirector/internal/config"
	"redirector/internal/domain"
	"redirector/internal/repository"
	"redirector/internal/service"
	"redirector/internal/shortener"
	"redirector/internal/validation"
)

// memStore is an in-memory RedirectStore and ModerationStore with the same
// uniqueness and rows-affected contract as the PostgreSQL repositories.
type memStore struct {
	mu        sync.Mutex
	redirects map[string]*domain.Redirect
	order     []string
	domains   map[string]bool
	words     map[string]bool
	creates   int
	// failCreates makes the next n Create calls report a duplicate id.
	failCreates int
}

func newMemStore() *memStore {
	return &memStore{
		redirects: make(map[string]*domain.Redirect),
		domains:   make(map[string]bool),
		words:     make(map[string]bool),
	}
}

func (m *memStore) FindByID(_ context.Context, id string) (*domain.Redirect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rd, ok := m.redirects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *rd
	return &cp, nil
}

func (m *memStore) FindByURL(_ context.Context, url string) (*domain.Redirect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rd := range m.redirects {
		if rd.URL == url {
			cp := *rd
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) Create(_ context.Context, id, url, ip string) (*domain.Redirect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreates > 0 {
		m.failCreates--
		return nil, repository.ErrDuplicate
	}
	if _, ok := m.redirects[id]; ok {
		return nil, repository.ErrDuplicate
	}
	for _, rd := range m.redirects {
		if rd.URL == url {
			return nil, repository.ErrDuplicate
		}
	}
	rd := &domain.Redirect{
		ID:                id,
		URL:               url,
		Enabled:           true,
		IP:                ip,
		CreationTimestamp: time.Now().UnixMilli(),
	}
	m.redirects[id] = rd
	m.order = append(m.order, id)
	m.creates++
	cp := *rd
	return &cp, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.redirects[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(m.redirects, id)
	m.order = slices.DeleteFunc(m.order, func(o string) bool { return o == id })
	return nil
}

func (m *memStore) IncrementAccess(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rd, ok := m.redirects[id]
	if !ok || !rd.Enabled {
		return repository.ErrNoRowsAffected
	}
	now := time.Now().UnixMilli()
	rd.AccessCount++
	rd.LastAccessTimestamp = &now
	return nil
}

func (m *memStore) Enable(_ context.Context, id string) error {
	return m.setEnabled(id, true)
}

func (m *memStore) Disable(_ context.Context, id string) error {
	return m.setEnabled(id, false)
}

func (m *memStore) setEnabled(id string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rd, ok := m.redirects[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	rd.Enabled = enabled
	return nil
}

func (m *memStore) ListAll(context.Context) ([]domain.RedirectSummary, error) {
	return m.list(func(*domain.Redirect) bool { return true }), nil
}

func (m *memStore) ListEnabled(context.Context) ([]domain.RedirectSummary, error) {
	return m.list(func(rd *domain.Redirect) bool { return rd.Enabled }), nil
}

func (m *memStore) ListDisabled(context.Context) ([]domain.RedirectSummary, error) {
	return m.list(func(rd *domain.Redirect) bool { return !rd.Enabled }), nil
}

func (m *memStore) list(keep func(*domain.Redirect) bool) []domain.RedirectSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.RedirectSummary, 0)
	for _, id := range m.order {
		if rd := m.redirects[id]; keep(rd) {
			out = append(out, rd.Summary())
		}
	}
	return out
}

func (m *memStore) IsDomainBlacklisted(_ context.Context, d string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.domains[d], nil
}

func (m *memStore) IsWordBlacklisted(_ context.Context, word string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words[word], nil
}

func (m *memStore) ContainsBlacklistedWord(_ context.Context, candidate string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for w := range m.words {
		if strings.Contains(candidate, w) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) AddDomain(_ context.Context, d string) error {
	return m.add(m.domains, d)
}

func (m *memStore) RemoveDomain(_ context.Context, d string) error {
	return m.remove(m.domains, d)
}

func (m *memStore) AddWord(_ context.Context, word string) error {
	return m.add(m.words, word)
}

func (m *memStore) RemoveWord(_ context.Context, word string) error {
	return m.remove(m.words, word)
}

func (m *memStore) add(set map[string]bool, v string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if set[v] {
		return repository.ErrDuplicate
	}
	set[v] = true
	return nil
}

func (m *memStore) remove(set map[string]bool, v string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !set[v] {
		return repository.ErrNoRowsAffected
	}
	delete(set, v)
	return nil
}

func (m *memStore) ListDomains(context.Context) ([]string, error) {
	return m.sorted(m.domains), nil
}

func (m *memStore) ListWords(context.Context) ([]string, error) {
	return m.sorted(m.words), nil
}

func (m *memStore) sorted(set map[string]bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (m *memStore) accessCount(id string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rd, ok := m.redirects[id]; ok {
		return rd.AccessCount
	}
	return -1
}

func (m *memStore) createCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates
}

// seqGenerator hands out ids in order and then repeats the last one.
type seqGenerator struct {
	mu  sync.Mutex
	ids []string
	n   int
}

func (g *seqGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.ids[min(g.n, len(g.ids)-1)]
	g.n++
	return id
}

func (g *seqGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string]domain.RedirectSummary
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]domain.RedirectSummary)}
}

func (c *mapCache) Get(id string) (domain.RedirectSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.entries[id]
	return r, ok
}

func (c *mapCache) Set(r domain.RedirectSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[r.ID] = r
}

func (c *mapCache) Delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

type nopRecorder struct{}

func (nopRecorder) RecordBusiness(string, float64, map[string]string) {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	svc   *service.RedirectService
	store *memStore
	cache *mapCache
}

func newFixture(gen service.IdentifierGenerator) *fixture {
	if gen == nil {
		gen = shortener.New()
	}
	store := newMemStore()
	cache := newMapCache()
	cfg := &config.AppConfig{BaseURL: "http://sho.rt/", MaxAllocationAttempts: 8}
	svc := service.NewRedirectService(store, store, gen, cache, validation.New(0), nopRecorder{}, cfg, discardLogger())
	return &fixture{svc: svc, store: store, cache: cache}
}
