package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

func TestInferenceLogRepository_RoundTrip(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx := context.Background()
	log := entity.NewInferenceLog("hello", "low-risk")

	require.NoError(t, repo.Write(ctx, log))

	got, err := repo.Get(ctx, log.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, log.ID, got.ID)
	assert.True(t, log.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, "hello", got.Input())
	assert.Equal(t, "low-risk", got.Prediction())
}

func TestInferenceLogRepository_Idempotent(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx := context.Background()
	log := entity.NewInferenceLog("retry me", "low-risk")

	require.NoError(t, repo.Write(ctx, log))
	require.NoError(t, repo.Write(ctx, log))

	assert.Equal(t, 1, repo.Len())
}

func TestInferenceLogRepository_StoresCopy(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx := context.Background()
	log := entity.NewInferenceLog("original", "low-risk")

	require.NoError(t, repo.Write(ctx, log))
	*log.InputData = "mutated"

	got, err := repo.Get(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Input())
}

func TestInferenceLogRepository_NilFields(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx := context.Background()
	log := &entity.InferenceLog{ID: "no-payload"}

	require.NoError(t, repo.Write(ctx, log))

	got, err := repo.Get(ctx, "no-payload")
	require.NoError(t, err)
	assert.Nil(t, got.InputData)
	assert.Nil(t, got.PredictedOutput)
}

func TestInferenceLogRepository_GetMissing(t *testing.T) {
	repo := NewInferenceLogRepository()

	got, err := repo.Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInferenceLogRepository_CancelledContext(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Write(ctx, entity.NewInferenceLog("late", "low-risk"))

	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.Len())
}

func TestInferenceLogRepository_Concurrent(t *testing.T) {
	repo := NewInferenceLogRepository()
	ctx := context.Background()

	const goroutines = 100
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Write(ctx, entity.NewInferenceLog("concurrent", "low-risk")))
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, repo.Len())
}
