package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRateSnapshotCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewRateSnapshotCacheRepository(rdb, 2*time.Second)

	t.Run("Save and Get snapshot", func(t *testing.T) {
		updatedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		table := models.RateTable{
			Base:      "USD",
			Rates:     map[string]float64{"USD": 1, "INR": 83.25},
			UpdatedAt: updatedAt,
		}

		require.NoError(t, repo.SaveRates(ctx, table))

		got, err := repo.GetRates(ctx, "usd")
		require.NoError(t, err)
		assert.Equal(t, "USD", got.Base)
		assert.Equal(t, table.Rates, got.Rates)
		assert.True(t, updatedAt.Equal(got.UpdatedAt))
	})

	t.Run("Save replaces previous snapshot", func(t *testing.T) {
		require.NoError(t, repo.SaveRates(ctx, models.RateTable{
			Base:  "EUR",
			Rates: map[string]float64{"EUR": 1, "GBP": 0.85},
		}))
		require.NoError(t, repo.SaveRates(ctx, models.RateTable{
			Base:  "EUR",
			Rates: map[string]float64{"EUR": 1},
		}))

		got, err := repo.GetRates(ctx, "EUR")
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"EUR": 1}, got.Rates)
	})

	t.Run("Get missing snapshot returns error", func(t *testing.T) {
		_, err := repo.GetRates(ctx, "XYZ")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Snapshot expires", func(t *testing.T) {
		require.NoError(t, repo.SaveRates(ctx, models.RateTable{
			Base:  "GBP",
			Rates: map[string]float64{"GBP": 1},
		}))

		time.Sleep(3 * time.Second)

		_, err := repo.GetRates(ctx, "GBP")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})
}
