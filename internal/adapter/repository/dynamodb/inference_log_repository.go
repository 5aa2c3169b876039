package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
	"github.com/keodevspace/CloudProject/internal/infrastructure/config"
)

const storeName = "dynamodb"

// API is the subset of the DynamoDB client used by the repository
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// InferenceLogRepository writes audit records to a DynamoDB table whose hash key is "id"
type InferenceLogRepository struct {
	api   API
	table string
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewClient builds a DynamoDB client from the default AWS credential chain.
// The SDK retryer is disabled so throttling and network errors reach the caller.
func NewClient(ctx context.Context, cfg *config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

// NewInferenceLogRepository creates a repository writing to table
func NewInferenceLogRepository(api API, table string) *InferenceLogRepository {
	if table == "" {
		table = entity.DefaultTableName
	}
	return &InferenceLogRepository{api: api, table: table}
}

// Write puts the item; PutItem replaces an existing item with the same id
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	item, err := attributevalue.MarshalMap(log)
	if err != nil {
		return fmt.Errorf("failed to marshal inference log: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return repository.Unavailable(storeName, err)
}

// Ping checks that the table is reachable
func (r *InferenceLogRepository) Ping(ctx context.Context) error {
	_, err := r.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	return err
}
