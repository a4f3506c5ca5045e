package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/sbilibin2017/gw-currency-comparator/internal/repositories"
)

//go:generate mockgen -source=rates.go -destination=mock_rates.go -package=handlers

// RatesGetter defines the interface that the service must implement.
type RatesGetter interface {
	Rates(ctx context.Context) models.RateTable
}

// CurrenciesGetter defines the interface that the service must implement.
type CurrenciesGetter interface {
	Currencies(ctx context.Context) []string
}

// RateSnapshotReader reads cached rate tables by base currency.
type RateSnapshotReader interface {
	GetRates(ctx context.Context, base string) (models.RateTable, error)
}

// NewGetRatesHandler returns an HTTP handler for the rate table currently in use.
// @Summary Get exchange rates
// @Description Returns the current rate table. loaded is false until the initial fetch completes.
// @Tags rates
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Router /rates [get]
func NewGetRatesHandler(svc RatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.NewRatesResponse(svc.Rates(r.Context())))
	}
}

// NewGetCurrenciesHandler returns an HTTP handler listing selectable currency codes.
// @Summary List currencies
// @Tags rates
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewGetCurrenciesHandler(svc CurrenciesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.CurrenciesResponse{
			Currencies: svc.Currencies(r.Context()),
		})
	}
}

// NewGetRateSnapshotHandler returns an HTTP handler for the last cached table fetched with the given base.
// @Summary Get rate snapshot
// @Tags rates
// @Produce json
// @Param base path string true "Base currency"
// @Success 200 {object} models.RatesResponse
// @Failure 404 {object} models.RatesErrorResponse "Snapshot not found"
// @Failure 500 {object} models.RatesErrorResponse "Failed to read snapshot"
// @Router /rates/snapshots/{base} [get]
func NewGetRateSnapshotHandler(reader RateSnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := strings.ToUpper(chi.URLParam(r, "base"))

		table, err := reader.GetRates(r.Context(), base)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, repositories.ErrSnapshotNotFound) {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(models.RatesErrorResponse{Error: "Snapshot not found"})
				return
			}
			logger.Log.Errorw("failed to read rate snapshot", "base", base, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(models.RatesErrorResponse{Error: "Failed to read snapshot"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.NewRatesResponse(table))
	}
}

// RegisterGetRatesHandler registers routes for the rate table.
func RegisterGetRatesHandler(r chi.Router, rates, currencies http.HandlerFunc) {
	r.Get("/rates", rates)
	r.Get("/currencies", currencies)
}

// RegisterGetRateSnapshotHandler registers the snapshot route.
func RegisterGetRateSnapshotHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates/snapshots/{base}", h)
}
