package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redirector/internal/domain"
	"redirector/internal/repository"
)

var redirectCols = []string{
	"id", "url", "enabled", "ip", "creation_timestamp", "access_count", "last_access_timestamp",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, pool.ExpectationsWereMet())
	})
	return pool
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestMigrate(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec("CREATE TABLE IF NOT EXISTS redirects").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, repository.Migrate(context.Background(), pool))
}

func TestMigrate_Error(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec("CREATE TABLE IF NOT EXISTS redirects").
		WillReturnError(errors.New("permission denied"))

	err := repository.Migrate(context.Background(), pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run migrations")
}

func TestFindByID_Found(t *testing.T) {
	pool := newMockPool(t)
	lastAccess := int64(1700000001000)
	pool.ExpectQuery(q("FROM redirects WHERE id = $1")).
		WithArgs("abcde").
		WillReturnRows(pool.NewRows(redirectCols).
			AddRow("abcde", "https://example.com/page", true, "203.0.113.7", int64(1700000000000), int64(3), &lastAccess))

	repo := repository.NewRedirectRepository(pool)
	rd, err := repo.FindByID(context.Background(), "abcde")
	require.NoError(t, err)

	assert.Equal(t, "abcde", rd.ID)
	assert.Equal(t, "https://example.com/page", rd.URL)
	assert.True(t, rd.Enabled)
	assert.Equal(t, "203.0.113.7", rd.IP)
	assert.Equal(t, int64(1700000000000), rd.CreationTimestamp)
	assert.Equal(t, int64(3), rd.AccessCount)
	require.NotNil(t, rd.LastAccessTimestamp)
	assert.Equal(t, lastAccess, *rd.LastAccessTimestamp)
}

func TestFindByID_NeverAccessed(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("FROM redirects WHERE id = $1")).
		WithArgs("abcde").
		WillReturnRows(pool.NewRows(redirectCols).
			AddRow("abcde", "https://example.com", false, "unknown", int64(1), int64(0), nil))

	repo := repository.NewRedirectRepository(pool)
	rd, err := repo.FindByID(context.Background(), "abcde")
	require.NoError(t, err)
	assert.False(t, rd.Enabled)
	assert.Nil(t, rd.LastAccessTimestamp)
}

func TestFindByID_NotFound(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("FROM redirects WHERE id = $1")).
		WithArgs("zzzzz").
		WillReturnRows(pool.NewRows(redirectCols))

	repo := repository.NewRedirectRepository(pool)
	_, err := repo.FindByID(context.Background(), "zzzzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFindByURL_ExactMatch(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("FROM redirects WHERE url = $1")).
		WithArgs("https://example.com/a b").
		WillReturnRows(pool.NewRows(redirectCols).
			AddRow("q1w2e", "https://example.com/a b", true, "unknown", int64(1), int64(0), nil))

	repo := repository.NewRedirectRepository(pool)
	rd, err := repo.FindByURL(context.Background(), "https://example.com/a b")
	require.NoError(t, err)
	assert.Equal(t, "q1w2e", rd.ID)
}

func TestFindByURL_QueryError(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("FROM redirects WHERE url = $1")).
		WithArgs("https://example.com").
		WillReturnError(errors.New("connection reset"))

	repo := repository.NewRedirectRepository(pool)
	_, err := repo.FindByURL(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestCreate_Success(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("INSERT INTO redirects (id, url, ip, creation_timestamp) VALUES ($1, $2, $3, $4)")).
		WithArgs("abcde", "https://example.com", "198.51.100.1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := repository.NewRedirectRepository(pool)
	rd, err := repo.Create(context.Background(), "abcde", "https://example.com", "198.51.100.1")
	require.NoError(t, err)

	assert.Equal(t, "abcde", rd.ID)
	assert.True(t, rd.Enabled)
	assert.Zero(t, rd.AccessCount)
	assert.Nil(t, rd.LastAccessTimestamp)
	assert.Positive(t, rd.CreationTimestamp)
}

func TestCreate_UniqueViolation(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("INSERT INTO redirects")).
		WithArgs("abcde", "https://example.com", "unknown", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "redirects_pkey"})

	repo := repository.NewRedirectRepository(pool)
	_, err := repo.Create(context.Background(), "abcde", "https://example.com", "unknown")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCreate_NoRowsAffected(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("INSERT INTO redirects")).
		WithArgs("abcde", "https://example.com", "unknown", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := repository.NewRedirectRepository(pool)
	_, err := repo.Create(context.Background(), "abcde", "https://example.com", "unknown")
	assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"deleted", 1, nil},
		{"missing", 0, repository.ErrNoRowsAffected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newMockPool(t)
			pool.ExpectExec(q("DELETE FROM redirects WHERE id = $1")).
				WithArgs("abcde").
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			repo := repository.NewRedirectRepository(pool)
			err := repo.Delete(context.Background(), "abcde")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIncrementAccess(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("UPDATE redirects SET access_count = access_count + 1, last_access_timestamp = $1 WHERE id = $2 AND enabled")).
		WithArgs(pgxmock.AnyArg(), "abcde").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := repository.NewRedirectRepository(pool)
	assert.NoError(t, repo.IncrementAccess(context.Background(), "abcde"))
}

func TestIncrementAccess_Missing(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("UPDATE redirects SET access_count")).
		WithArgs(pgxmock.AnyArg(), "abcde").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repository.NewRedirectRepository(pool)
	assert.ErrorIs(t, repo.IncrementAccess(context.Background(), "abcde"), repository.ErrNoRowsAffected)
}

func TestEnableDisable(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectExec(q("UPDATE redirects SET enabled = $1 WHERE id = $2")).
		WithArgs(false, "abcde").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectExec(q("UPDATE redirects SET enabled = $1 WHERE id = $2")).
		WithArgs(true, "abcde").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	pool.ExpectExec(q("UPDATE redirects SET enabled = $1 WHERE id = $2")).
		WithArgs(true, "zzzzz").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repository.NewRedirectRepository(pool)
	require.NoError(t, repo.Disable(context.Background(), "abcde"))
	require.NoError(t, repo.Enable(context.Background(), "abcde"))
	assert.ErrorIs(t, repo.Enable(context.Background(), "zzzzz"), repository.ErrNoRowsAffected)
}

func TestListAll(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("SELECT id, url, enabled FROM redirects ORDER BY")).
		WillReturnRows(pool.NewRows([]string{"id", "url", "enabled"}).
			AddRow("aaaaa", "https://a.example.com", true).
			AddRow("bbbbb", "https://b.example.com", false))

	repo := repository.NewRedirectRepository(pool)
	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.RedirectSummary{
		{ID: "aaaaa", URL: "https://a.example.com", Enabled: true},
		{ID: "bbbbb", URL: "https://b.example.com", Enabled: false},
	}, list)
}

func TestListEnabled_Empty(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("WHERE enabled = TRUE")).
		WillReturnRows(pool.NewRows([]string{"id", "url", "enabled"}))

	repo := repository.NewRedirectRepository(pool)
	list, err := repo.ListEnabled(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListDisabled_QueryError(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(q("WHERE enabled = FALSE")).
		WillReturnError(errors.New("timeout"))

	repo := repository.NewRedirectRepository(pool)
	_, err := repo.ListDisabled(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list redirects")
}
