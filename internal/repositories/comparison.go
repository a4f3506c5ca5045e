package repositories

import (
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-comparator/internal/models"
)

// ComparisonMemoryRepository keeps comparisons in insertion order.
// IDs come from a counter and are never reused.
type ComparisonMemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	items  []models.Comparison
}

// NewComparisonMemoryRepository creates an empty repository.
func NewComparisonMemoryRepository() *ComparisonMemoryRepository {
	return &ComparisonMemoryRepository{}
}

// Save appends a new comparison and returns it with its assigned ID.
func (r *ComparisonMemoryRepository) Save(sourceCurrency, targetCurrency, sourceAmount string, at time.Time) models.Comparison {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	c := models.Comparison{
		ID:             r.lastID,
		SourceCurrency: sourceCurrency,
		TargetCurrency: targetCurrency,
		SourceAmount:   sourceAmount,
		LastUpdated:    at,
	}
	r.items = append(r.items, c)
	return c
}

// List returns a copy of all comparisons.
func (r *ComparisonMemoryRepository) List() []models.Comparison {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Comparison, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the comparison with the given ID.
func (r *ComparisonMemoryRepository) Get(id int64) (models.Comparison, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Comparison{}, false
	}
	return r.items[i], true
}

// UpdateAmount replaces the stored source amount.
func (r *ComparisonMemoryRepository) UpdateAmount(id int64, amount string) (models.Comparison, bool) {
	return r.update(id, func(c *models.Comparison) {
		c.SourceAmount = amount
	})
}

// UpdateLastUpdated sets the refresh timestamp.
func (r *ComparisonMemoryRepository) UpdateLastUpdated(id int64, at time.Time) (models.Comparison, bool) {
	return r.update(id, func(c *models.Comparison) {
		c.LastUpdated = at
	})
}

// Delete removes the comparison, keeping the order of the rest.
func (r *ComparisonMemoryRepository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true
}

// Count returns the number of stored comparisons.
func (r *ComparisonMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *ComparisonMemoryRepository) update(id int64, fn func(c *models.Comparison)) (models.Comparison, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Comparison{}, false
	}
	fn(&r.items[i])
	return r.items[i], true
}

// indexOf must be called with mu held.
func (r *ComparisonMemoryRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
