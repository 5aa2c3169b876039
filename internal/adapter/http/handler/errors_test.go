package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "store unavailable",
			err:                repository.ErrStoreUnavailable,
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "STORE_UNAVAILABLE",
			expectedMessage:    "inference could not be logged",
		},
		{
			name:               "wrapped store error",
			err:                repository.Unavailable("redis", errors.New("connection refused")),
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "STORE_UNAVAILABLE",
			expectedMessage:    "inference could not be logged",
		},
		{
			name:               "store timeout is still a store failure",
			err:                repository.Unavailable("postgres", context.DeadlineExceeded),
			expectedStatusCode: http.StatusServiceUnavailable,
			expectedCode:       "STORE_UNAVAILABLE",
			expectedMessage:    "inference could not be logged",
		},
		{
			name:               "bare deadline",
			err:                fmt.Errorf("write: %w", context.DeadlineExceeded),
			expectedStatusCode: http.StatusGatewayTimeout,
			expectedCode:       "TIMEOUT",
			expectedMessage:    "inference log write timed out",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
			assert.NotEqual(t, http.StatusOK, result.StatusCode)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	err := repository.Unavailable("dynamodb", errors.New("access denied"))

	HandleUsecaseError(c, err)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)

	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "STORE_UNAVAILABLE", response.Error.Code)
	assert.NotContains(t, w.Body.String(), "access denied")
}
