package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/keodevspace/CloudProject/internal/domain/entity"
	"github.com/keodevspace/CloudProject/internal/domain/repository"
)

const storeName = "postgres"

// InferenceLogRepository writes audit records to a PostgreSQL table via GORM
type InferenceLogRepository struct {
	db    *gorm.DB
	table string
}

var _ repository.InferenceLogRepository = (*InferenceLogRepository)(nil)

// NewInferenceLogRepository creates a repository writing to table
func NewInferenceLogRepository(db *gorm.DB, table string) *InferenceLogRepository {
	if table == "" {
		table = entity.DefaultTableName
	}
	return &InferenceLogRepository{db: db, table: table}
}

// Write upserts the record on its primary key
func (r *InferenceLogRepository) Write(ctx context.Context, log *entity.InferenceLog) error {
	err := r.db.WithContext(ctx).
		Table(r.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(log).Error
	return repository.Unavailable(storeName, err)
}

// Get retrieves a record by ID, or nil when absent
func (r *InferenceLogRepository) Get(ctx context.Context, id string) (*entity.InferenceLog, error) {
	var log entity.InferenceLog
	err := r.db.WithContext(ctx).Table(r.table).First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// Count returns the number of records stored under id
func (r *InferenceLogRepository) Count(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Count(&count).Error
	return count, err
}

// Ping checks the database connection
func (r *InferenceLogRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
