package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	"github.com/shopspring/decimal"
)

// LoadingRate is shown instead of a rate the table cannot provide yet.
const LoadingRate = "Loading..."

const (
	amountPlaces = 2
	ratePlaces   = 4
)

var amountPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// parseAmount reads the longest leading decimal literal of s, so "10abc" is 10.
func parseAmount(s string) (float64, bool) {
	literal := amountPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if literal == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// crossRate returns rate[target] / rate[source].
func crossRate(table models.RateTable, sourceCurrency, targetCurrency string) (float64, bool) {
	sourceRate, ok := table.Rate(sourceCurrency)
	if !ok {
		return 0, false
	}
	targetRate, ok := table.Rate(targetCurrency)
	if !ok {
		return 0, false
	}
	rate := targetRate / sourceRate
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, false
	}
	return rate, true
}

// ConvertAmount computes amount * (rate[target] / rate[source]) rounded to two decimals.
// It returns "" when the amount is not numeric or the table cannot price the pair.
func ConvertAmount(table models.RateTable, sourceAmount, sourceCurrency, targetCurrency string) string {
	amount, ok := parseAmount(sourceAmount)
	if !ok {
		return ""
	}
	rate, ok := crossRate(table, sourceCurrency, targetCurrency)
	if !ok {
		return ""
	}
	converted := amount * rate
	if math.IsNaN(converted) || math.IsInf(converted, 0) {
		return ""
	}
	return decimal.NewFromFloat(converted).StringFixed(amountPlaces)
}

// DisplayRate formats rate[target] / rate[source] with four decimals, or LoadingRate.
func DisplayRate(table models.RateTable, sourceCurrency, targetCurrency string) string {
	if r, ok := table.Rate(targetCurrency); !ok || r == 0 {
		return LoadingRate
	}
	rate, ok := crossRate(table, sourceCurrency, targetCurrency)
	if !ok {
		return LoadingRate
	}
	return decimal.NewFromFloat(rate).StringFixed(ratePlaces)
}

func toView(c models.Comparison, table models.RateTable) models.ComparisonView {
	return models.ComparisonView{
		ID:             c.ID,
		SourceCurrency: c.SourceCurrency,
		TargetCurrency: c.TargetCurrency,
		SourceAmount:   c.SourceAmount,
		TargetAmount:   ConvertAmount(table, c.SourceAmount, c.SourceCurrency, c.TargetCurrency),
		Rate:           DisplayRate(table, c.SourceCurrency, c.TargetCurrency),
		LastUpdated:    c.LastUpdated,
	}
}
