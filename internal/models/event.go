package models

import "time"

// Comparison event types.
const (
	ComparisonAdded         = "comparison.added"
	ComparisonAmountUpdated = "comparison.amount_updated"
	ComparisonRefreshed     = "comparison.refreshed"
	ComparisonClosed        = "comparison.closed"
)

// ComparisonEvent is published to Kafka whenever the comparison list changes.
type ComparisonEvent struct {
	Type           string    `json:"type"`
	ComparisonID   int64     `json:"comparison_id"`
	SourceCurrency string    `json:"source_currency"`
	TargetCurrency string    `json:"target_currency"`
	SourceAmount   string    `json:"source_amount"`
	OccurredAt     time.Time `json:"occurred_at"`
}
