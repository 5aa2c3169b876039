package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	t.Run("wraps cause and sentinel", func(t *testing.T) {
		cause := errors.New("connection refused")

		err := Unavailable("redis", cause)

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "redis")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("keeps context errors matchable", func(t *testing.T) {
		err := Unavailable("postgres", context.DeadlineExceeded)

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Unavailable("memory", nil))
	})
}
