package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
)

// ErrStoreUnavailable is returned when the backing store is unreachable or
// rejects a write (network failure, throttling, permission denial, timeout).
var ErrStoreUnavailable = errors.New("store unavailable")

// InferenceLogRepository defines the write side of the audit store
type InferenceLogRepository interface {
	// Write persists the record keyed by its ID. Writing the same ID twice
	// overwrites the first copy. Implementations do not retry internally.
	Write(ctx context.Context, log *entity.InferenceLog) error
}

// Unavailable wraps a backend error so it matches ErrStoreUnavailable
// while keeping the original cause in the chain.
func Unavailable(store string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", store, ErrStoreUnavailable, err)
}
