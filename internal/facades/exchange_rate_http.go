package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
)

// DefaultRatesAPIURL is the public exchange-rate service.
const DefaultRatesAPIURL = "https://open.er-api.com"

const (
	latestRatesPath  = "/v6/latest"
	resultError      = "error"
	defaultUserAgent = "gw-currency-comparator"
)

var (
	// ErrStatusCode is returned when the provider answers with a non-200 status.
	ErrStatusCode = errors.New("http status != 200")
	// ErrProviderResult is returned when the provider reports a failed lookup.
	ErrProviderResult = errors.New("rate provider returned an error")
)

type latestRatesResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	Rates              map[string]float64 `json:"rates"`
}

// ExchangeRatesHTTPFacade fetches rate tables from the open exchange-rate API.
type ExchangeRatesHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewExchangeRatesHTTPFacade creates a facade for the API rooted at baseURL.
func NewExchangeRatesHTTPFacade(client *http.Client, baseURL string) *ExchangeRatesHTTPFacade {
	if baseURL == "" {
		baseURL = DefaultRatesAPIURL
	}
	return &ExchangeRatesHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetExchangeRates fetches the latest table relative to base.
// An empty base requests the provider's default table.
func (f *ExchangeRatesHTTPFacade) GetExchangeRates(ctx context.Context, base string) (models.RateTable, error) {
	u := f.latestURL(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.RateTable{}, fmt.Errorf("build rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via HTTP", "url", u, "error", err)
		return models.RateTable{}, fmt.Errorf("make rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Log.Errorw("rate provider returned unexpected status", "url", u, "status", resp.StatusCode)
		return models.RateTable{}, fmt.Errorf("http status: %d, %s: %w", resp.StatusCode, resp.Status, ErrStatusCode)
	}

	var body latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.RateTable{}, fmt.Errorf("decode rates response: %w", err)
	}

	if body.Result == resultError {
		logger.Log.Errorw("rate provider rejected request", "url", u, "error_type", body.ErrorType)
		return models.RateTable{}, fmt.Errorf("%s: %w", body.ErrorType, ErrProviderResult)
	}

	tableBase := body.BaseCode
	if tableBase == "" {
		tableBase = base
	}
	if tableBase == "" {
		tableBase = models.DefaultBaseCurrency
	}

	logger.Log.Debugw("fetched exchange rates",
		"base", tableBase,
		"currencies", len(body.Rates),
		"provider_updated_at", time.Unix(body.TimeLastUpdateUnix, 0).UTC(),
	)

	return models.RateTable{
		Base:      tableBase,
		Rates:     body.Rates,
		UpdatedAt: time.Now(),
	}, nil
}

func (f *ExchangeRatesHTTPFacade) latestURL(base string) string {
	if base == "" {
		return f.baseURL + latestRatesPath
	}
	return f.baseURL + latestRatesPath + "/" + url.PathEscape(base)
}
