package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"redirector/internal/domain"
)

const redirectColumns = "id, url, enabled, ip, creation_timestamp, access_count, last_access_timestamp"

type RedirectRepository struct {
	db DB
}

func NewRedirectRepository(db DB) *RedirectRepository {
	return &RedirectRepository{db: db}
}

func (r *RedirectRepository) FindByID(ctx context.Context, id string) (*domain.Redirect, error) {
	row := r.db.QueryRow(ctx, "SELECT "+redirectColumns+" FROM redirects WHERE id = $1", id)
	return scanRedirect(row)
}

// FindByURL matches the stored URL string exactly.
func (r *RedirectRepository) FindByURL(ctx context.Context, url string) (*domain.Redirect, error) {
	row := r.db.QueryRow(ctx, "SELECT "+redirectColumns+" FROM redirects WHERE url = $1", url)
	return scanRedirect(row)
}

func (r *RedirectRepository) Create(ctx context.Context, id, url, ip string) (*domain.Redirect, error) {
	created := nowMillis()
	err := expectOne(r.db.Exec(ctx,
		"INSERT INTO redirects (id, url, ip, creation_timestamp) VALUES ($1, $2, $3, $4)",
		id, url, ip, created,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert redirect %q: %w", id, err)
	}

	return &domain.Redirect{
		ID:                id,
		URL:               url,
		Enabled:           true,
		IP:                ip,
		CreationTimestamp: created,
	}, nil
}

func (r *RedirectRepository) Delete(ctx context.Context, id string) error {
	if err := expectOne(r.db.Exec(ctx, "DELETE FROM redirects WHERE id = $1", id)); err != nil {
		return fmt.Errorf("failed to delete redirect %q: %w", id, err)
	}
	return nil
}

// IncrementAccess counts one resolution. Disabled or missing redirects
// report ErrNoRowsAffected.
func (r *RedirectRepository) IncrementAccess(ctx context.Context, id string) error {
	err := expectOne(r.db.Exec(ctx,
		"UPDATE redirects SET access_count = access_count + 1, last_access_timestamp = $1 WHERE id = $2 AND enabled",
		nowMillis(), id,
	))
	if err != nil {
		return fmt.Errorf("failed to increment access count for %q: %w", id, err)
	}
	return nil
}

func (r *RedirectRepository) Enable(ctx context.Context, id string) error {
	return r.setEnabled(ctx, id, true)
}

func (r *RedirectRepository) Disable(ctx context.Context, id string) error {
	return r.setEnabled(ctx, id, false)
}

func (r *RedirectRepository) setEnabled(ctx context.Context, id string, enabled bool) error {
	err := expectOne(r.db.Exec(ctx, "UPDATE redirects SET enabled = $1 WHERE id = $2", enabled, id))
	if err != nil {
		return fmt.Errorf("failed to set enabled=%t for %q: %w", enabled, id, err)
	}
	return nil
}

func (r *RedirectRepository) ListAll(ctx context.Context) ([]domain.RedirectSummary, error) {
	return r.listSummaries(ctx,
		"SELECT id, url, enabled FROM redirects ORDER BY creation_timestamp, id")
}

func (r *RedirectRepository) ListEnabled(ctx context.Context) ([]domain.RedirectSummary, error) {
	return r.listSummaries(ctx,
		"SELECT id, url, enabled FROM redirects WHERE enabled = TRUE ORDER BY creation_timestamp, id")
}

func (r *RedirectRepository) ListDisabled(ctx context.Context) ([]domain.RedirectSummary, error) {
	return r.listSummaries(ctx,
		"SELECT id, url, enabled FROM redirects WHERE enabled = FALSE ORDER BY creation_timestamp, id")
}

func (r *RedirectRepository) listSummaries(ctx context.Context, query string) ([]domain.RedirectSummary, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list redirects: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.RedirectSummary, 0)
	for rows.Next() {
		var s domain.RedirectSummary
		if err := rows.Scan(&s.ID, &s.URL, &s.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan redirect: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list redirects: %w", err)
	}
	return summaries, nil
}

func scanRedirect(row pgx.Row) (*domain.Redirect, error) {
	var rd domain.Redirect
	err := row.Scan(
		&rd.ID, &rd.URL, &rd.Enabled, &rd.IP,
		&rd.CreationTimestamp, &rd.AccessCount, &rd.LastAccessTimestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan redirect: %w", err)
	}
	return &rd, nil
}
