package integration_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func truncateLessonPayments(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE TABLE lesson_payments RESTART IDENTITY")
	require.NoError(t, err)
}

func flushCache(t testing.TB, client *redis.Client) {
	t.Helper()

	require.NoError(t, client.FlushDB(context.Background()).Err())
}
