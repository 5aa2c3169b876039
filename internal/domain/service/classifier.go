package service

import "unicode/utf8"

// Risk labels produced by RiskClassifier
const (
	LabelHighRisk = "high-risk"
	LabelLowRisk  = "low-risk"
)

// RiskThreshold is the input length, in characters, above which input is high risk
const RiskThreshold = 15

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify maps input text to a label. It never fails.
	Classify(text string) string
}

// RiskClassifier is the placeholder decision rule: long inputs are risky.
type RiskClassifier struct{}

// NewRiskClassifier creates a new RiskClassifier
func NewRiskClassifier() Classifier {
	return RiskClassifier{}
}

// Classify returns LabelHighRisk when text is longer than RiskThreshold characters
func (RiskClassifier) Classify(text string) string {
	if utf8.RuneCountInString(text) > RiskThreshold {
		return LabelHighRisk
	}
	return LabelLowRisk
}
