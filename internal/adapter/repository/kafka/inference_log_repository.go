package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
	"github.com/keodevspace/CloudProject/internal/infrastructure/config"
)

const storeName = "kafka"

// Producer is the subset of kgo.Client used by the repository
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Ping(ctx context.Context) error
}

// InferenceLogRepository appends audit records to a log-compacted topic keyed by ID,
// so the latest record per ID is what the topic retains.
type InferenceLogRepository struct {
	producer Producer
	topic    string
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewClient creates a franz-go client that acknowledges on all in-sync replicas
// and fails a record on its first produce error.
func NewClient(cfg *config.KafkaConfig) (*kgo.Client, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.RecordRetries(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return client, nil
}

// EnsureTopic creates the compacted audit topic if it does not exist
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32, replicationFactor int16) error {
	compact := "compact"
	resp, err := kadm.NewClient(client).CreateTopic(ctx, partitions, replicationFactor,
		map[string]*string{"cleanup.policy": &compact}, topic)
	if err == nil {
		err = resp.Err
	}
	if err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}
	return nil
}

// NewInferenceLogRepository creates a repository producing to topic
func NewInferenceLogRepository(producer Producer, topic string) *InferenceLogRepository {
	return &InferenceLogRepository{producer: producer, topic: topic}
}

// Write produces the record and waits for the broker acknowledgement
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to marshal inference log: %w", err)
	}

	record := &kgo.Record{
		Topic: r.topic,
		Key:   []byte(log.ID),
		Value: payload,
	}

	if err := r.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return repository.Unavailable(storeName, err)
	}
	return nil
}

// Ping checks broker connectivity
func (r *InferenceLogRepository) Ping(ctx context.Context) error {
	return r.producer.Ping(ctx)
}
