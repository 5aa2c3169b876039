package memory

import (
	"context"
	"sync"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

// InferenceLogRepository keeps audit records in a map keyed by ID
type InferenceLogRepository struct {
	mu   sync.RWMutex
	logs map[string]entity.InferenceLog
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewInferenceLogRepository creates an empty in-memory repository
func NewInferenceLogRepository() *InferenceLogRepository {
	return &InferenceLogRepository{
		logs: make(map[string]entity.InferenceLog),
	}
}

// Write stores a copy of the record, replacing any record with the same ID
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	if err := ctx.Err(); err != nil {
		return repository.Unavailable("memory", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[log.ID] = cloneLog(log)
	return nil
}

// Get returns the record stored under id, or nil
func (r *InferenceLogRepository) Get(_ context.Context, id string) (*entity.InferenceLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.logs[id]
	if !ok {
		return nil, nil
	}
	out := cloneLog(&log)
	return &out, nil
}

// Len returns the number of stored records
func (r *InferenceLogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs)
}

func cloneLog(log *entity.InferenceLog) entity.InferenceLog {
	out := entity.InferenceLog{
		ID:        log.ID,
		Timestamp: log.Timestamp,
	}
	if log.InputData != nil {
		input := *log.InputData
		out.InputData = &input
	}
	if log.PredictedOutput != nil {
		prediction := *log.PredictedOutput
		out.PredictedOutput = &prediction
	}
	return out
}
