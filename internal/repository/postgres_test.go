package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: true},
		{name: "deadlock", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "other", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestWithRetry_StopsOnPermanentError(t *testing.T) {
	r := &PostgresRepository{}
	calls := 0
	permanent := errors.New("boom")

	err := r.withRetry(context.Background(), func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_CanceledContext(t *testing.T) {
	r := &PostgresRepository{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := r.withRetry(ctx, func() error {
		calls++
		return &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func newTestPostgresRepository(t *testing.T) *PostgresRepository {
	t.Helper()

	dsn := os.Getenv("DATABASE_URI")
	if dsn == "" {
		t.Skip("DATABASE_URI is not set")
	}

	repo, err := NewPostgresRepository(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestPostgresRepository_RoundTrip(t *testing.T) {
	repo := newTestPostgresRepository(t)
	ctx := context.Background()
	id := fmt.Sprintf("%s-%d", t.Name(), os.Getpid())

	t.Cleanup(func() {
		_, _ = repo.pool.Exec(context.Background(), `DELETE FROM receipt_points WHERE id = $1`, id)
	})

	require.NoError(t, repo.SavePoints(ctx, id, 42))

	points, err := repo.GetPoints(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 42, points)

	require.NoError(t, repo.SavePoints(ctx, id, 7))

	points, err = repo.GetPoints(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, points)
}

func TestPostgresRepository_NotFound(t *testing.T) {
	repo := newTestPostgresRepository(t)

	_, err := repo.GetPoints(context.Background(), fmt.Sprintf("missing-%d", os.Getpid()))
	assert.ErrorIs(t, err, ErrNotFound)
}
