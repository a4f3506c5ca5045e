package models

import (
	"sort"
	"time"
)

// Currency codes used as defaults across the service.
const (
	USD = "USD"
	INR = "INR"
)

// DefaultBaseCurrency is the base the provider uses when no base is requested.
const DefaultBaseCurrency = USD

// RateTable maps currency codes to rates relative to Base.
// A table without rates is still loading.
type RateTable struct {
	Base      string
	Rates     map[string]float64
	UpdatedAt time.Time
}

// Loaded reports whether the table holds any rates.
func (t RateTable) Loaded() bool {
	return len(t.Rates) > 0
}

// Rate returns the rate for code and whether it is present.
func (t RateTable) Rate(code string) (float64, bool) {
	rate, ok := t.Rates[code]
	return rate, ok
}

// Clone returns a deep copy of the table.
func (t RateTable) Clone() RateTable {
	rates := make(map[string]float64, len(t.Rates))
	for code, rate := range t.Rates {
		rates[code] = rate
	}
	return RateTable{
		Base:      t.Base,
		Rates:     rates,
		UpdatedAt: t.UpdatedAt,
	}
}

// Currencies returns the table's codes in ascending order.
func (t RateTable) Currencies() []string {
	codes := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// RatesResponse represents the current rate table
// swagger:model RatesResponse
type RatesResponse struct {
	// Base currency of the table
	// example: USD
	Base string `json:"base"`

	// False while the initial load has not completed
	// example: true
	Loaded bool `json:"loaded"`

	// Rates keyed by currency code
	Rates map[string]float64 `json:"rates"`

	// Time the table was fetched
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewRatesResponse builds the API representation of a table.
func NewRatesResponse(t RateTable) RatesResponse {
	resp := RatesResponse{
		Base:   t.Base,
		Loaded: t.Loaded(),
		Rates:  t.Rates,
	}
	if resp.Rates == nil {
		resp.Rates = map[string]float64{}
	}
	if !t.UpdatedAt.IsZero() {
		updatedAt := t.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// CurrenciesResponse lists the currencies that can be compared
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Sorted currency codes
	// example: ["EUR","INR","USD"]
	Currencies []string `json:"currencies"`
}

// RatesErrorResponse represents an error response for rate endpoints
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// example: Snapshot not found
	Error string `json:"error"`
}
