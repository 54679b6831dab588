package idempotency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/service/idempotency"
	"github.com/vladislavdragonenkov/marketplace/internal/storage/memory"
)

func TestCleanupWorker_MemoryRepositoryRemovesOnlyExpired(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	now := time.Now().UTC()

	for _, key := range []string{"create-1", "create-2", "delete-1"} {
		_, err := repo.CreateProcessing(ctx, key, "hash-"+key, now.Add(-time.Minute))
		require.NoError(t, err)
	}
	_, err := repo.CreateProcessing(ctx, "fresh", "hash-fresh", now.Add(time.Hour))
	require.NoError(t, err)

	worker := idempotency.NewCleanupWorker(repo, idempotency.WithBatchSize(2))
	deleted, err := worker.DeleteExpired(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 3, deleted)

	_, err = repo.Get(ctx, "create-1")
	require.True(t, errors.Is(err, domain.ErrIdempotencyKeyNotFound))
	_, err = repo.Get(ctx, "fresh")
	require.NoError(t, err)
}
