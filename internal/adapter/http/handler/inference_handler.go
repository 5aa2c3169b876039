package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/usecase"
)

// InferenceHandler handles inference HTTP requests
type InferenceHandler struct {
	inferenceUC usecase.InferenceUsecase
	logger      *zap.Logger
}

// NewInferenceHandler creates a new inference handler
func NewInferenceHandler(inferenceUC usecase.InferenceUsecase, logger *zap.Logger) *InferenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InferenceHandler{inferenceUC: inferenceUC, logger: logger}
}

// Run handles POST /inference/run
func (h *InferenceHandler) Run(c *gin.Context) {
	input, err := ReadInput(c)
	if err != nil {
		// An unreadable body is classified as empty input rather than rejected.
		h.logger.Warn("Treating unreadable request body as empty input",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		input = ""
	}

	output, err := h.inferenceUC.Run(c.Request.Context(), input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondResult(c, http.StatusOK, output)
}
