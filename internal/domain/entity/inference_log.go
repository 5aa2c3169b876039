package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTableName is the table (or key space) audit records are written to
const DefaultTableName = "InferenceLog"

// InferenceLog is the audit record persisted once per accepted inference request.
// Records are write-once: nothing in the service updates or deletes them.
type InferenceLog struct {
	ID              string    `json:"id" dynamodbav:"id" gorm:"column:id;type:varchar(36);primaryKey"`
	Timestamp       time.Time `json:"timestamp" dynamodbav:"timestamp" gorm:"column:timestamp;not null"`
	InputData       *string   `json:"inputData" dynamodbav:"inputData" gorm:"column:inputData;type:text"`
	PredictedOutput *string   `json:"predictedOutput" dynamodbav:"predictedOutput" gorm:"column:predictedOutput;type:text"`
}

// TableName returns the table name for GORM
func (InferenceLog) TableName() string {
	return DefaultTableName
}

// NewInferenceLog creates a record for the given input and prediction.
// The ID and timestamp are fixed here, not when the record is written.
func NewInferenceLog(input, prediction string) *InferenceLog {
	return &InferenceLog{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		InputData:       &input,
		PredictedOutput: &prediction,
	}
}

// Input returns the logged input, or an empty string when none was recorded
func (l *InferenceLog) Input() string {
	if l.InputData == nil {
		return ""
	}
	return *l.InputData
}

// Prediction returns the logged prediction, or an empty string when none was recorded
func (l *InferenceLog) Prediction() string {
	if l.PredictedOutput == nil {
		return ""
	}
	return *l.PredictedOutput
}
