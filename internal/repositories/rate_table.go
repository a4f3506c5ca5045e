package repositories

import (
	"sync"

	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
)

// RateTableMemoryRepository holds the rate table currently used for display.
type RateTableMemoryRepository struct {
	mu    sync.RWMutex
	table models.RateTable
}

// NewRateTableMemoryRepository creates a repository with an empty (loading) table.
func NewRateTableMemoryRepository() *RateTableMemoryRepository {
	return &RateTableMemoryRepository{
		table: models.RateTable{Rates: map[string]float64{}},
	}
}

// Get returns a copy of the current table.
func (r *RateTableMemoryRepository) Get() models.RateTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table.Clone()
}

// Replace swaps the whole table.
func (r *RateTableMemoryRepository) Replace(table models.RateTable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = table.Clone()
}

// SetRate overwrites a single entry, leaving the rest of the table untouched.
func (r *RateTableMemoryRepository) SetRate(currency string, rate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.table.Rates == nil {
		r.table.Rates = map[string]float64{}
	}
	r.table.Rates[currency] = rate
}
