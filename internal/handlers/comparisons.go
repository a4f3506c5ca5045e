package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/sbilibin2017/gw-currency-comparator/internal/services"
)

//go:generate mockgen -source=comparisons.go -destination=mock_comparisons.go -package=handlers

// ComparisonLister defines the interface that the service must implement.
type ComparisonLister interface {
	ListComparisons(ctx context.Context) []models.ComparisonView
}

// ComparisonAdder defines the interface that the service must implement.
type ComparisonAdder interface {
	AddComparison(ctx context.Context, sourceCurrency, targetCurrency string) (models.ComparisonView, error)
}

// AmountUpdater defines the interface that the service must implement.
type AmountUpdater interface {
	UpdateAmount(ctx context.Context, id int64, amount string) (models.ComparisonView, error)
}

// ComparisonRefresher defines the interface that the service must implement.
type ComparisonRefresher interface {
	RefreshComparison(ctx context.Context, id int64) (models.ComparisonView, error)
}

// ComparisonCloser defines the interface that the service must implement.
type ComparisonCloser interface {
	CloseComparison(ctx context.Context, id int64) error
}

// NewListComparisonsHandler returns an HTTP handler listing all comparisons.
// @Summary List comparisons
// @Description Returns comparisons in creation order with their current rate and converted amount
// @Tags comparisons
// @Produce json
// @Success 200 {object} models.ComparisonsResponse "Comparisons"
// @Router /comparisons [get]
func NewListComparisonsHandler(svc ComparisonLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := models.ComparisonsResponse{
			Comparisons: svc.ListComparisons(r.Context()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// NewAddComparisonHandler returns an HTTP handler creating a comparison.
// @Summary Add comparison
// @Description Creates a comparison with amount 1. Missing currencies default to USD and INR.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body models.AddComparisonRequest false "Currency pair"
// @Success 201 {object} models.ComparisonView "Created comparison"
// @Failure 400 {object} models.ComparisonErrorResponse "Invalid request body or unknown currency"
// @Failure 500 {object} models.ComparisonErrorResponse "Internal server error"
// @Router /comparisons [post]
func NewAddComparisonHandler(svc ComparisonAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Log.Errorw("failed to decode add comparison request", "error", err)
			writeComparisonError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		view, err := svc.AddComparison(r.Context(), req.SourceCurrency, req.TargetCurrency)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(view)
	}
}

// NewUpdateAmountHandler returns an HTTP handler editing a comparison amount.
// @Summary Update amount
// @Description Stores the amount as entered. A non-numeric amount yields an empty converted amount.
// @Tags comparisons
// @Accept json
// @Produce json
// @Param id path int true "Comparison ID"
// @Param request body models.UpdateAmountRequest true "New amount"
// @Success 200 {object} models.ComparisonView "Updated comparison"
// @Failure 400 {object} models.ComparisonErrorResponse "Invalid id or request body"
// @Failure 404 {object} models.ComparisonErrorResponse "Comparison not found"
// @Router /comparisons/{id} [patch]
func NewUpdateAmountHandler(svc AmountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := comparisonID(w, r)
		if !ok {
			return
		}

		var req models.UpdateAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SourceAmount == nil {
			logger.Log.Errorw("failed to decode update amount request", "id", id, "error", err)
			writeComparisonError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		view, err := svc.UpdateAmount(r.Context(), id, *req.SourceAmount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(view)
	}
}

// NewRefreshComparisonHandler returns an HTTP handler refreshing one comparison's rate.
// @Summary Refresh comparison
// @Description Fetches rates based on the comparison's source currency and merges its target rate.
// @Description A failed fetch leaves the comparison unchanged.
// @Tags comparisons
// @Produce json
// @Param id path int true "Comparison ID"
// @Success 200 {object} models.ComparisonView "Comparison"
// @Failure 400 {object} models.ComparisonErrorResponse "Invalid id"
// @Failure 404 {object} models.ComparisonErrorResponse "Comparison not found"
// @Router /comparisons/{id}/refresh [post]
func NewRefreshComparisonHandler(svc ComparisonRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := comparisonID(w, r)
		if !ok {
			return
		}

		view, err := svc.RefreshComparison(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(view)
	}
}

// NewCloseComparisonHandler returns an HTTP handler removing a comparison.
// @Summary Close comparison
// @Tags comparisons
// @Param id path int true "Comparison ID"
// @Success 204 "Closed"
// @Failure 400 {object} models.ComparisonErrorResponse "Invalid id"
// @Failure 404 {object} models.ComparisonErrorResponse "Comparison not found"
// @Router /comparisons/{id} [delete]
func NewCloseComparisonHandler(svc ComparisonCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := comparisonID(w, r)
		if !ok {
			return
		}

		if err := svc.CloseComparison(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterComparisonRoutes registers the comparison endpoints on r.
func RegisterComparisonRoutes(
	r chi.Router,
	list, add, update, refresh, remove http.HandlerFunc,
) {
	r.Route("/comparisons", func(r chi.Router) {
		r.Get("/", list)
		r.Post("/", add)
		r.Patch("/{id}", update)
		r.Delete("/{id}", remove)
		r.Post("/{id}/refresh", refresh)
	})
}

// comparisonID parses the {id} URL parameter, answering 400 when it is invalid.
func comparisonID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Log.Warnw("invalid comparison id", "id", raw)
		writeComparisonError(w, http.StatusBadRequest, "Invalid comparison id")
		return 0, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrComparisonNotFound):
		writeComparisonError(w, http.StatusNotFound, "Comparison not found")
	case errors.Is(err, services.ErrUnknownCurrency):
		writeComparisonError(w, http.StatusBadRequest, "Unknown currency")
	default:
		logger.Log.Errorw("comparison request failed", "error", err)
		writeComparisonError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeComparisonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ComparisonErrorResponse{Error: msg})
}
