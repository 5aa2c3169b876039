package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
	"github.com/keodevspace/CloudProject/internal/domain/service"
	"github.com/keodevspace/CloudProject/internal/infrastructure/metrics"
)

// StatusLogged is reported once the audit record has been acknowledged by the store
const StatusLogged = "Logged and Inferred"

// RunInferenceOutput is returned to the caller after a logged inference.
// Field names are part of the public wire format.
type RunInferenceOutput struct {
	Input      string `json:"Input"`
	Prediction string `json:"Prediction"`
	Status     string `json:"Status"`
}

// InferenceUsecase defines the interface for the inference pipeline
type InferenceUsecase interface {
	// Run classifies input, persists the audit record and returns the result.
	// Store errors are returned as-is and no output is produced.
	Run(ctx context.Context, input string) (*RunInferenceOutput, error)
}

type inferenceUsecase struct {
	classifier service.Classifier
	logRepo    repository.InferenceLogRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewInferenceUsecase creates a new inference usecase
func NewInferenceUsecase(classifier service.Classifier, logRepo repository.InferenceLogRepository, m *metrics.Metrics, logger *zap.Logger) InferenceUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inferenceUsecase{
		classifier: classifier,
		logRepo:    logRepo,
		metrics:    m,
		logger:     logger,
	}
}

func (u *inferenceUsecase) Run(ctx context.Context, input string) (*RunInferenceOutput, error) {
	prediction := u.classifier.Classify(input)

	log := entity.NewInferenceLog(input, prediction)

	if err := u.logRepo.Write(ctx, log); err != nil {
		u.logger.Warn("Inference not logged, rejecting request",
			zap.String("inference_id", log.ID),
			zap.String("prediction", prediction),
			zap.Error(err),
		)
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.ObserveInference(prediction)
	}

	u.logger.Info("Inference logged",
		zap.String("inference_id", log.ID),
		zap.String("prediction", prediction),
		zap.Int("input_bytes", len(input)),
	)

	return &RunInferenceOutput{
		Input:      input,
		Prediction: prediction,
		Status:     StatusLogged,
	}, nil
}
