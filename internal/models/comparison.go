package models

import "time"

// DefaultSourceAmount is the amount every new comparison starts with.
const DefaultSourceAmount = "1"

// Comparison is a user-defined currency pair with an editable amount.
type Comparison struct {
	ID             int64     `json:"id"`
	SourceCurrency string    `json:"source_currency"`
	TargetCurrency string    `json:"target_currency"`
	SourceAmount   string    `json:"source_amount"`
	LastUpdated    time.Time `json:"last_updated"`
}

// ComparisonView is a comparison together with the values derived from the rate table
// swagger:model ComparisonView
type ComparisonView struct {
	// Comparison identifier
	// example: 1
	ID int64 `json:"id"`

	// Source currency
	// example: USD
	SourceCurrency string `json:"source_currency"`

	// Target currency
	// example: INR
	TargetCurrency string `json:"target_currency"`

	// Amount entered by the user
	// example: 10
	SourceAmount string `json:"source_amount"`

	// Converted amount, empty when it cannot be computed
	// example: 800.00
	TargetAmount string `json:"target_amount"`

	// Conversion rate, "Loading..." until both rates are known
	// example: 80.0000
	Rate string `json:"rate"`

	// Time of creation or last refresh
	LastUpdated time.Time `json:"last_updated"`
}

// AddComparisonRequest represents the JSON body for creating a comparison
// swagger:model AddComparisonRequest
type AddComparisonRequest struct {
	// Source currency
	// example: USD
	SourceCurrency string `json:"source_currency"`

	// Target currency
	// example: INR
	TargetCurrency string `json:"target_currency"`
}

// UpdateAmountRequest represents the JSON body for editing a comparison amount
// swagger:model UpdateAmountRequest
type UpdateAmountRequest struct {
	// New amount
	// required: true
	// example: 10
	SourceAmount *string `json:"source_amount"`
}

// ComparisonsResponse lists comparisons in creation order
// swagger:model ComparisonsResponse
type ComparisonsResponse struct {
	Comparisons []ComparisonView `json:"comparisons"`
}

// ComparisonErrorResponse represents an error response for comparison endpoints
// swagger:model ComparisonErrorResponse
type ComparisonErrorResponse struct {
	// Error message
	// example: Comparison not found
	Error string `json:"error"`
}
