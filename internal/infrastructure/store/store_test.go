package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/infrastructure/config"
	"github.com/keodevspace/CloudProject/internal/infrastructure/metrics"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Driver:       driver,
			Table:        entity.DefaultTableName,
			WriteTimeout: time.Second,
		},
	}
}

func TestNew_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, testConfig(config.StoreDriverMemory), metrics.New(prometheus.NewRegistry()), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.StoreDriverMemory, s.Driver)
	assert.NoError(t, s.Ping(ctx))
	assert.NoError(t, s.Repository.Write(ctx, entity.NewInferenceLog("hello", "low-risk")))
}

func TestNew_UnknownDriver(t *testing.T) {
	s, err := New(context.Background(), testConfig("cassandra"), nil, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestStore_Close(t *testing.T) {
	var order []int
	s := &Store{
		closers: []func() error{
			func() error { order = append(order, 1); return nil },
			func() error { order = append(order, 2); return errors.New("close failed") },
		},
	}

	err := s.Close()

	assert.Error(t, err)
	assert.Equal(t, []int{2, 1}, order)
	assert.NoError(t, s.Close())
}
