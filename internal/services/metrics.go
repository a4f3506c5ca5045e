package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	histogramRateFetchTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gw",
			Subsystem: "comparator",
			Name:      "rate_fetch_duration_seconds",
			Help:      "Duration of rate table fetches from the provider",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"operation", "error"},
	)

	gaugeComparisons = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gw",
			Subsystem: "comparator",
			Name:      "comparisons",
			Help:      "Number of open comparisons",
		},
	)
)

func observeRateFetch(operation string, elapsed time.Duration, err bool) {
	histogramRateFetchTime.
		WithLabelValues(operation, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
