package services

import (
	"context"

	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=dependencies.go -destination=mock_dependencies.go -package=services

// RatesFetcher fetches rate tables from the rate provider.
type RatesFetcher interface {
	GetExchangeRates(ctx context.Context, base string) (models.RateTable, error) // Empty base requests the default table
}

// RateSnapshotWriter publishes fetched tables for other readers.
type RateSnapshotWriter interface {
	SaveRates(ctx context.Context, table models.RateTable) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}
