package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrComparisonNotFound is returned for operations on an unknown comparison ID.
	ErrComparisonNotFound = errors.New("comparison not found")
	// ErrUnknownCurrency is returned when a loaded rate table has no entry for a requested code.
	ErrUnknownCurrency = errors.New("unknown currency")
)

// ComparisonRepository stores comparisons in creation order.
type ComparisonRepository interface {
	Save(sourceCurrency, targetCurrency, sourceAmount string, at time.Time) models.Comparison
	List() []models.Comparison
	Get(id int64) (models.Comparison, bool)
	UpdateAmount(id int64, amount string) (models.Comparison, bool)
	UpdateLastUpdated(id int64, at time.Time) (models.Comparison, bool)
	Delete(id int64) bool
	Count() int
}

// RateTableRepository holds the table used to derive comparison values.
type RateTableRepository interface {
	Get() models.RateTable
	Replace(table models.RateTable)
	SetRate(currency string, rate float64)
}

// ComparisonService manages comparisons and the rate table they are priced with.
type ComparisonService struct {
	comparisons ComparisonRepository
	rates       RateTableRepository
	fetcher     RatesFetcher
	snapshots   RateSnapshotWriter
	kafkaWriter KafkaWriter
}

// NewComparisonService creates a new ComparisonService.
// snapshots and kafkaWriter may be nil.
func NewComparisonService(
	comparisons ComparisonRepository,
	rates RateTableRepository,
	fetcher RatesFetcher,
	snapshots RateSnapshotWriter,
	kafkaWriter KafkaWriter,
) *ComparisonService {
	return &ComparisonService{
		comparisons: comparisons,
		rates:       rates,
		fetcher:     fetcher,
		snapshots:   snapshots,
		kafkaWriter: kafkaWriter,
	}
}

// LoadRates fetches the default rate table and replaces the current one.
// On failure the table is left as it was; there is no retry.
func (s *ComparisonService) LoadRates(ctx context.Context) error {
	start := time.Now()
	table, err := s.fetcher.GetExchangeRates(ctx, "")
	observeRateFetch("load", time.Since(start), err != nil)
	if err != nil {
		logger.Log.Errorw("failed to load exchange rates", "error", err)
		return err
	}

	s.rates.Replace(table)
	s.saveSnapshot(ctx, table)

	logger.Log.Infow("exchange rates loaded", "base", table.Base, "currencies", len(table.Rates))
	return nil
}

// Rates returns the current rate table.
func (s *ComparisonService) Rates(ctx context.Context) models.RateTable {
	return s.rates.Get()
}

// Currencies returns the codes that can be used in a comparison.
func (s *ComparisonService) Currencies(ctx context.Context) []string {
	return s.rates.Get().Currencies()
}

// ListComparisons returns every comparison with its derived values.
func (s *ComparisonService) ListComparisons(ctx context.Context) []models.ComparisonView {
	table := s.rates.Get()
	list := s.comparisons.List()

	views := make([]models.ComparisonView, 0, len(list))
	for _, c := range list {
		views = append(views, toView(c, table))
	}
	return views
}

// AddComparison appends a comparison with the default amount.
// Empty codes fall back to USD and INR.
func (s *ComparisonService) AddComparison(ctx context.Context, sourceCurrency, targetCurrency string) (models.ComparisonView, error) {
	sourceCurrency = normalizeCurrency(sourceCurrency, models.USD)
	targetCurrency = normalizeCurrency(targetCurrency, models.INR)

	table := s.rates.Get()
	if table.Loaded() {
		for _, code := range []string{sourceCurrency, targetCurrency} {
			if _, ok := table.Rate(code); !ok {
				logger.Log.Warnw("rejected comparison with unknown currency", "currency", code)
				return models.ComparisonView{}, fmt.Errorf("%s: %w", code, ErrUnknownCurrency)
			}
		}
	}

	c := s.comparisons.Save(sourceCurrency, targetCurrency, models.DefaultSourceAmount, time.Now())
	gaugeComparisons.Set(float64(s.comparisons.Count()))
	logger.Log.Infow("comparison added", "id", c.ID, "source", c.SourceCurrency, "target", c.TargetCurrency)

	s.publishEvent(ctx, models.ComparisonAdded, c)
	return toView(c, table), nil
}

// UpdateAmount stores a new source amount as given.
func (s *ComparisonService) UpdateAmount(ctx context.Context, id int64, amount string) (models.ComparisonView, error) {
	c, ok := s.comparisons.UpdateAmount(id, amount)
	if !ok {
		return models.ComparisonView{}, ErrComparisonNotFound
	}

	s.publishEvent(ctx, models.ComparisonAmountUpdated, c)
	return toView(c, s.rates.Get()), nil
}

// RefreshComparison fetches rates based on the comparison's source currency,
// bumps its timestamp and merges its target rate into the current table.
// A failed fetch is logged and leaves everything unchanged.
func (s *ComparisonService) RefreshComparison(ctx context.Context, id int64) (models.ComparisonView, error) {
	c, ok := s.comparisons.Get(id)
	if !ok {
		return models.ComparisonView{}, ErrComparisonNotFound
	}

	start := time.Now()
	fetched, err := s.fetcher.GetExchangeRates(ctx, c.SourceCurrency)
	observeRateFetch("refresh", time.Since(start), err != nil)
	if err != nil {
		logger.Log.Errorw("failed to refresh comparison", "id", id, "source", c.SourceCurrency, "error", err)
		return toView(c, s.rates.Get()), nil
	}
	s.saveSnapshot(ctx, fetched)

	c, ok = s.comparisons.UpdateLastUpdated(id, time.Now())
	if !ok {
		logger.Log.Infow("comparison closed while refreshing", "id", id)
		return models.ComparisonView{}, ErrComparisonNotFound
	}
	s.mergeRate(c, fetched)

	s.publishEvent(ctx, models.ComparisonRefreshed, c)
	return toView(c, s.rates.Get()), nil
}

// CloseComparison removes the comparison.
func (s *ComparisonService) CloseComparison(ctx context.Context, id int64) error {
	c, ok := s.comparisons.Get(id)
	if !ok || !s.comparisons.Delete(id) {
		return ErrComparisonNotFound
	}
	gaugeComparisons.Set(float64(s.comparisons.Count()))
	logger.Log.Infow("comparison closed", "id", id)

	s.publishEvent(ctx, models.ComparisonClosed, c)
	return nil
}

// mergeRate writes one entry of fetched (based on c's source) into the current table,
// re-expressed in the current table's base so c's rate equals the fetched one.
func (s *ComparisonService) mergeRate(c models.Comparison, fetched models.RateTable) {
	fetchedRate, ok := fetched.Rate(c.TargetCurrency)
	if !ok || fetchedRate == 0 {
		logger.Log.Warnw("refreshed table has no rate for target",
			"id", c.ID, "source", c.SourceCurrency, "target", c.TargetCurrency)
		return
	}

	current := s.rates.Get()
	sourceRate, ok := current.Rate(c.SourceCurrency)
	if !current.Loaded() || !ok {
		s.rates.Replace(fetched)
		return
	}

	// The base entry stays at 1; adjust the source side instead.
	if c.TargetCurrency == current.Base && c.SourceCurrency != current.Base {
		s.rates.SetRate(c.SourceCurrency, 1/fetchedRate)
		return
	}
	s.rates.SetRate(c.TargetCurrency, fetchedRate*sourceRate)
}

func (s *ComparisonService) saveSnapshot(ctx context.Context, table models.RateTable) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SaveRates(ctx, table); err != nil {
		logger.Log.Errorw("failed to save rate snapshot", "base", table.Base, "error", err)
	}
}

// publishEvent publishes a comparison change to Kafka.
func (s *ComparisonService) publishEvent(ctx context.Context, eventType string, c models.Comparison) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", eventType, "id", c.ID)
		return
	}

	event := models.ComparisonEvent{
		Type:           eventType,
		ComparisonID:   c.ID,
		SourceCurrency: c.SourceCurrency,
		TargetCurrency: c.TargetCurrency,
		SourceAmount:   c.SourceAmount,
		OccurredAt:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal comparison event for Kafka", "event", eventType, "id", c.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(c.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish comparison event to Kafka", "event", eventType, "id", c.ID, "error", err)
	}
}

func normalizeCurrency(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}
