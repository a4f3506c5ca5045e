package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
)

// ErrSnapshotNotFound is returned when no snapshot is cached for a base currency.
var ErrSnapshotNotFound = errors.New("rate snapshot not found")

const updatedAtField = "_updated_at"

// RateSnapshotCacheRepository publishes fetched rate tables to Redis hashes.
type RateSnapshotCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewRateSnapshotCacheRepository creates a new repository instance with the given TTL.
func NewRateSnapshotCacheRepository(client *redis.Client, expiration time.Duration) *RateSnapshotCacheRepository {
	return &RateSnapshotCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func snapshotKey(base string) string {
	return fmt.Sprintf("rate_table:%s", strings.ToUpper(base))
}

// SaveRates stores the table under its base currency, replacing any previous snapshot.
func (r *RateSnapshotCacheRepository) SaveRates(ctx context.Context, table models.RateTable) error {
	key := snapshotKey(table.Base)

	fields := make(map[string]interface{}, len(table.Rates)+1)
	for currency, rate := range table.Rates {
		fields[currency] = strconv.FormatFloat(rate, 'f', -1, 64)
	}
	fields[updatedAtField] = table.UpdatedAt.UTC().Format(time.RFC3339Nano)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if r.exp > 0 {
			pipe.Expire(ctx, key, r.exp)
		}
		return nil
	})

	logger.Log.Infow("rate snapshot saved",
		"key", key,
		"currencies", len(table.Rates),
		"error", err,
	)

	return err
}

// GetRates reads the snapshot stored for base.
func (r *RateSnapshotCacheRepository) GetRates(ctx context.Context, base string) (models.RateTable, error) {
	key := snapshotKey(base)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("failed to read rate snapshot", "key", key, "error", err)
		return models.RateTable{}, err
	}
	if len(vals) == 0 {
		return models.RateTable{}, fmt.Errorf("%s: %w", key, ErrSnapshotNotFound)
	}

	table := models.RateTable{
		Base:  strings.ToUpper(base),
		Rates: make(map[string]float64, len(vals)),
	}
	for field, val := range vals {
		if field == updatedAtField {
			if ts, err := time.Parse(time.RFC3339Nano, val); err == nil {
				table.UpdatedAt = ts
			}
			continue
		}
		rate, err := strconv.ParseFloat(val, 64)
		if err != nil {
			logger.Log.Warnw("skipping malformed snapshot rate", "key", key, "currency", field, "value", val)
			continue
		}
		table.Rates[field] = rate
	}

	return table, nil
}
