package facades

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-currency-comparator/internal/logger"
	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ErrCurrencyNotFound is returned when the requested base is missing from the exchanger table.
var ErrCurrencyNotFound = errors.New("currency not found in exchanger rates")

// ExchangeRatesGRPCFacade reads rate tables from the gw-exchanger service over gRPC.
// The exchanger quotes every currency against USD.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRates fetches all rates and re-bases them onto base when it is set.
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(ctx context.Context, base string) (models.RateTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "base", base, "error", err)
		return models.RateTable{}, err
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate)
	}

	table := models.RateTable{
		Base:      models.DefaultBaseCurrency,
		Rates:     rates,
		UpdatedAt: time.Now(),
	}
	if base == "" || base == table.Base {
		return table, nil
	}

	baseRate, ok := rates[base]
	if !ok || baseRate == 0 {
		return models.RateTable{}, fmt.Errorf("%s: %w", base, ErrCurrencyNotFound)
	}
	for currency, rate := range rates {
		rates[currency] = rate / baseRate
	}
	table.Base = base

	return table, nil
}
