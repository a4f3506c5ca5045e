package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/sbilibin2017/gw-currency-comparator/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type comparisonMocks struct {
	lister    *MockComparisonLister
	adder     *MockComparisonAdder
	updater   *MockAmountUpdater
	refresher *MockComparisonRefresher
	closer    *MockComparisonCloser
}

func newComparisonRouter(ctrl *gomock.Controller) (http.Handler, comparisonMocks) {
	m := comparisonMocks{
		lister:    NewMockComparisonLister(ctrl),
		adder:     NewMockComparisonAdder(ctrl),
		updater:   NewMockAmountUpdater(ctrl),
		refresher: NewMockComparisonRefresher(ctrl),
		closer:    NewMockComparisonCloser(ctrl),
	}

	r := chi.NewRouter()
	RegisterComparisonRoutes(r,
		NewListComparisonsHandler(m.lister),
		NewAddComparisonHandler(m.adder),
		NewUpdateAmountHandler(m.updater),
		NewRefreshComparisonHandler(m.refresher),
		NewCloseComparisonHandler(m.closer),
	)
	return r, m
}

func sampleView() models.ComparisonView {
	return models.ComparisonView{
		ID:             1,
		SourceCurrency: models.USD,
		TargetCurrency: models.INR,
		SourceAmount:   "10",
		TargetAmount:   "800.00",
		Rate:           "80.0000",
		LastUpdated:    time.Date(2025, 9, 26, 12, 0, 0, 0, time.UTC),
	}
}

func TestComparisonHandlers(t *testing.T) {
	view := sampleView()

	tests := []struct {
		name               string
		method             string
		target             string
		body               string
		setupMocks         func(m comparisonMocks)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "list comparisons",
			method: http.MethodGet,
			target: "/comparisons",
			setupMocks: func(m comparisonMocks) {
				m.lister.EXPECT().ListComparisons(gomock.Any()).Return([]models.ComparisonView{view})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "comparisons",
		},
		{
			name:   "add comparison",
			method: http.MethodPost,
			target: "/comparisons",
			body:   `{"source_currency":"USD","target_currency":"INR"}`,
			setupMocks: func(m comparisonMocks) {
				m.adder.EXPECT().AddComparison(gomock.Any(), models.USD, models.INR).Return(view, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "rate",
		},
		{
			name:   "add comparison with empty body uses defaults",
			method: http.MethodPost,
			target: "/comparisons",
			setupMocks: func(m comparisonMocks) {
				m.adder.EXPECT().AddComparison(gomock.Any(), "", "").Return(view, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "id",
		},
		{
			name:               "add comparison invalid body",
			method:             http.MethodPost,
			target:             "/comparisons",
			body:               `invalid-json`,
			setupMocks:         func(m comparisonMocks) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "add comparison unknown currency",
			method: http.MethodPost,
			target: "/comparisons",
			body:   `{"source_currency":"USD","target_currency":"ZZZ"}`,
			setupMocks: func(m comparisonMocks) {
				m.adder.EXPECT().AddComparison(gomock.Any(), models.USD, "ZZZ").
					Return(models.ComparisonView{}, services.ErrUnknownCurrency)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "add comparison internal error",
			method: http.MethodPost,
			target: "/comparisons",
			body:   `{}`,
			setupMocks: func(m comparisonMocks) {
				m.adder.EXPECT().AddComparison(gomock.Any(), "", "").
					Return(models.ComparisonView{}, errors.New("boom"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
		{
			name:   "update amount",
			method: http.MethodPatch,
			target: "/comparisons/1",
			body:   `{"source_amount":"10"}`,
			setupMocks: func(m comparisonMocks) {
				m.updater.EXPECT().UpdateAmount(gomock.Any(), int64(1), "10").Return(view, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "target_amount",
		},
		{
			name:   "update amount accepts empty string",
			method: http.MethodPatch,
			target: "/comparisons/1",
			body:   `{"source_amount":""}`,
			setupMocks: func(m comparisonMocks) {
				m.updater.EXPECT().UpdateAmount(gomock.Any(), int64(1), "").Return(view, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "source_amount",
		},
		{
			name:               "update amount missing field",
			method:             http.MethodPatch,
			target:             "/comparisons/1",
			body:               `{}`,
			setupMocks:         func(m comparisonMocks) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "update amount invalid id",
			method:             http.MethodPatch,
			target:             "/comparisons/abc",
			body:               `{"source_amount":"10"}`,
			setupMocks:         func(m comparisonMocks) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "update amount not found",
			method: http.MethodPatch,
			target: "/comparisons/9",
			body:   `{"source_amount":"10"}`,
			setupMocks: func(m comparisonMocks) {
				m.updater.EXPECT().UpdateAmount(gomock.Any(), int64(9), "10").
					Return(models.ComparisonView{}, services.ErrComparisonNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:   "refresh comparison",
			method: http.MethodPost,
			target: "/comparisons/1/refresh",
			setupMocks: func(m comparisonMocks) {
				m.refresher.EXPECT().RefreshComparison(gomock.Any(), int64(1)).Return(view, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "last_updated",
		},
		{
			name:   "refresh comparison not found",
			method: http.MethodPost,
			target: "/comparisons/2/refresh",
			setupMocks: func(m comparisonMocks) {
				m.refresher.EXPECT().RefreshComparison(gomock.Any(), int64(2)).
					Return(models.ComparisonView{}, services.ErrComparisonNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:               "refresh comparison invalid id",
			method:             http.MethodPost,
			target:             "/comparisons/0/refresh",
			setupMocks:         func(m comparisonMocks) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:   "close comparison not found",
			method: http.MethodDelete,
			target: "/comparisons/3",
			setupMocks: func(m comparisonMocks) {
				m.closer.EXPECT().CloseComparison(gomock.Any(), int64(3)).Return(services.ErrComparisonNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, m := newComparisonRouter(ctrl)
			tt.setupMocks(m)

			req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}

func TestCloseComparisonHandler_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newComparisonRouter(ctrl)
	m.closer.EXPECT().CloseComparison(gomock.Any(), int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/comparisons/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestAddComparisonHandler_ResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newComparisonRouter(ctrl)
	m.adder.EXPECT().AddComparison(gomock.Any(), models.USD, models.INR).Return(sampleView(), nil)

	req := httptest.NewRequest(http.MethodPost, "/comparisons",
		bytes.NewBufferString(`{"source_currency":"USD","target_currency":"INR"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.ComparisonView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, sampleView(), got)
}
