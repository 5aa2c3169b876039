package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/keodevspace/CloudProject/internal/adapter/repository/dynamodb"
	"github.com/keodevspace/CloudProject/internal/adapter/repository/instrumented"
	"github.com/keodevspace/CloudProject/internal/adapter/repository/kafka"
	"github.com/keodevspace/CloudProject/internal/adapter/repository/memory"
	"github.com/keodevspace/CloudProject/internal/adapter/repository/postgres"
	redisrepo "github.com/keodevspace/CloudProject/internal/adapter/repository/redis"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
	"github.com/keodevspace/CloudProject/internal/infrastructure/cache"
	"github.com/keodevspace/CloudProject/internal/infrastructure/config"
	"github.com/keodevspace/CloudProject/internal/infrastructure/database"
	"github.com/keodevspace/CloudProject/internal/infrastructure/metrics"
)

// Pinger reports whether a backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the audit store selected at startup
type Store struct {
	Driver     string
	Repository repository.InferenceLogRepository

	pinger  Pinger
	closers []func() error
}

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

// New builds the repository for cfg.Store.Driver and wraps it with the
// configured write timeout, logging and metrics.
func New(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) (*Store, error) {
	s := &Store{Driver: cfg.Store.Driver}

	var repo repository.InferenceLogRepository

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		repo = memory.NewInferenceLogRepository()
		s.pinger = nopPinger{}

	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			s.closers = append(s.closers, sqlDB.Close)
		}
		if err := database.AutoMigrate(db, cfg.Store.Table); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		pg := postgres.NewInferenceLogRepository(db, cfg.Store.Table)
		repo, s.pinger = pg, pg

	case config.StoreDriverRedis:
		client, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		rr := redisrepo.NewInferenceLogRepository(client, cfg.Redis.KeyPrefix)
		repo, s.pinger = rr, rr

	case config.StoreDriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, &cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		dr := dynamodb.NewInferenceLogRepository(client, cfg.Store.Table)
		repo, s.pinger = dr, dr

	case config.StoreDriverKafka:
		client, err := kafka.NewClient(&cfg.Kafka)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() error {
			client.Close()
			return nil
		})
		if err := kafka.EnsureTopic(ctx, client, cfg.Kafka.Topic, 1, -1); err != nil {
			_ = s.Close()
			return nil, err
		}
		kr := kafka.NewInferenceLogRepository(client, cfg.Kafka.Topic)
		repo, s.pinger = kr, kr

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	s.Repository = instrumented.NewInferenceLogRepository(repo, cfg.Store.Driver, cfg.Store.WriteTimeout, m, logger)
	return s, nil
}

// Ping checks the selected backend
func (s *Store) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.Ping(ctx)
}

// Close releases backend connections
func (s *Store) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
