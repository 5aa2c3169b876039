package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// None of the mappings is a 2xx: an inference that was not logged is never reported as served.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		return ErrorResponse{
			StatusCode: http.StatusServiceUnavailable,
			Code:       "STORE_UNAVAILABLE",
			Message:    "inference could not be logged",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorResponse{
			StatusCode: http.StatusGatewayTimeout,
			Code:       "TIMEOUT",
			Message:    "inference log write timed out",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       "INTERNAL_ERROR",
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	_ = c.Error(err)
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}
