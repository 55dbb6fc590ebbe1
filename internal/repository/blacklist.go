package repository

import (
	"context"
	"fmt"
)

// BlacklistRepository owns the domain and word blacklists.
type BlacklistRepository struct {
	db DB
}

func NewBlacklistRepository(db DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

func (r *BlacklistRepository) IsDomainBlacklisted(ctx context.Context, domain string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM domains_blacklist WHERE domain = $1)", domain)
}

func (r *BlacklistRepository) IsWordBlacklisted(ctx context.Context, word string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM words_blacklist WHERE word = $1)", word)
}

// ContainsBlacklistedWord reports whether any blacklisted word occurs inside
// candidate. Matching is case-sensitive.
func (r *BlacklistRepository) ContainsBlacklistedWord(ctx context.Context, candidate string) (bool, error) {
	return r.exists(ctx, "SELECT EXISTS (SELECT 1 FROM words_blacklist WHERE strpos($1, word) > 0)", candidate)
}

func (r *BlacklistRepository) AddDomain(ctx context.Context, domain string) error {
	err := expectOne(r.db.Exec(ctx,
		"INSERT INTO domains_blacklist (domain, blacklisted_timestamp) VALUES ($1, $2)",
		domain, nowMillis(),
	))
	if err != nil {
		return fmt.Errorf("failed to blacklist domain %q: %w", domain, err)
	}
	return nil
}

func (r *BlacklistRepository) RemoveDomain(ctx context.Context, domain string) error {
	if err := expectOne(r.db.Exec(ctx, "DELETE FROM domains_blacklist WHERE domain = $1", domain)); err != nil {
		return fmt.Errorf("failed to remove domain %q from blacklist: %w", domain, err)
	}
	return nil
}

func (r *BlacklistRepository) AddWord(ctx context.Context, word string) error {
	err := expectOne(r.db.Exec(ctx,
		"INSERT INTO words_blacklist (word, blacklisted_timestamp) VALUES ($1, $2)",
		word, nowMillis(),
	))
	if err != nil {
		return fmt.Errorf("failed to blacklist word %q: %w", word, err)
	}
	return nil
}

func (r *BlacklistRepository) RemoveWord(ctx context.Context, word string) error {
	if err := expectOne(r.db.Exec(ctx, "DELETE FROM words_blacklist WHERE word = $1", word)); err != nil {
		return fmt.Errorf("failed to remove word %q from blacklist: %w", word, err)
	}
	return nil
}

func (r *BlacklistRepository) ListDomains(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, "SELECT domain FROM domains_blacklist ORDER BY domain")
}

func (r *BlacklistRepository) ListWords(ctx context.Context) ([]string, error) {
	return r.listStrings(ctx, "SELECT word FROM words_blacklist ORDER BY word")
}

func (r *BlacklistRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var found bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to query blacklist: %w", err)
	}
	return found, nil
}

func (r *BlacklistRepository) listStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blacklist: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan blacklist entry: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list blacklist: %w", err)
	}
	return values, nil
}
