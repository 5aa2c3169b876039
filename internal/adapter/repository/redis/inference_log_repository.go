package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

const storeName = "redis"

// InferenceLogRepository stores each audit record as a JSON string under prefix+ID
type InferenceLogRepository struct {
	client redis.UniversalClient
	prefix string
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewInferenceLogRepository creates a repository using the given key prefix
func NewInferenceLogRepository(client redis.UniversalClient, prefix string) *InferenceLogRepository {
	return &InferenceLogRepository{client: client, prefix: prefix}
}

// Write sets the record's key without expiry; a second write replaces the value
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal inference log: %w", err)
	}

	if err := r.client.Set(ctx, r.key(log.ID), payload, 0).Err(); err != nil {
		return repository.Unavailable(storeName, err)
	}
	return nil
}

// Get reads the record stored under id, or nil when absent
func (r *InferenceLogRepository) Get(ctx context.Context, id string) (*entity.InferenceLog, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var log entity.InferenceLog
	if err := json.Unmarshal(payload, &log); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inference log: %w", err)
	}
	return &log, nil
}

// Ping checks the Redis connection
func (r *InferenceLogRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *InferenceLogRepository) key(id string) string {
	return r.prefix + id
}
