package instrumented

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
	"github.com/keodevspace/CloudProject/internal/infrastructure/metrics"
)

// InferenceLogRepository decorates a store with a write deadline, logging and metrics
type InferenceLogRepository struct {
	next    repository.InferenceLogRepository
	store   string
	timeout time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewInferenceLogRepository wraps next. A zero timeout leaves the caller's deadline untouched.
func NewInferenceLogRepository(next repository.InferenceLogRepository, store string, timeout time.Duration, m *metrics.Metrics, logger *zap.Logger) *InferenceLogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InferenceLogRepository{
		next:    next,
		store:   store,
		timeout: timeout,
		metrics: m,
		logger:  logger.With(zap.String("store", store)),
	}
}

// Write delegates to the wrapped store exactly once
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := r.next.Write(ctx, log)
	elapsed := time.Since(start)

	if r.metrics != nil {
		r.metrics.ObserveStoreWrite(r.store, elapsed, err)
	}

	if err != nil {
		r.logger.Error("Failed to write inference log",
			zap.String("inference_id", log.ID),
			zap.Duration("duration", elapsed),
			zap.Error(err),
		)
		return err
	}

	r.logger.Debug("Inference log written",
		zap.String("inference_id", log.ID),
		zap.Duration("duration", elapsed),
	)
	return nil
}
