package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/adapter/http/handler"
	"github.com/keodevspace/CloudProject/internal/adapter/http/middleware"
	"github.com/keodevspace/CloudProject/internal/usecase"
)

// Dependencies are the collaborators the HTTP layer is built from
type Dependencies struct {
	InferenceUsecase usecase.InferenceUsecase
	HealthChecks     map[string]handler.Checker
	Gatherer         prometheus.Gatherer
	Logger           *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.HealthChecks)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Inference routes
	inferenceHandler := handler.NewInferenceHandler(deps.InferenceUsecase, logger)
	inference := router.Group("/inference")
	{
		inference.POST("/run", inferenceHandler.Run)
	}

	return router
}
