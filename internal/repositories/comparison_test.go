package repositories

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonMemoryRepository_SaveAssignsIncreasingIDs(t *testing.T) {
	repo := NewComparisonMemoryRepository()
	now := time.Now()

	first := repo.Save("USD", "INR", "1", now)
	second := repo.Save("EUR", "GBP", "1", now)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestComparisonMemoryRepository_IDsNotReusedAfterDelete(t *testing.T) {
	repo := NewComparisonMemoryRepository()
	now := time.Now()

	repo.Save("USD", "INR", "1", now)
	second := repo.Save("USD", "EUR", "1", now)
	require.True(t, repo.Delete(second.ID))

	third := repo.Save("USD", "GBP", "1", now)
	assert.Equal(t, int64(3), third.ID)
}

func TestComparisonMemoryRepository_DeleteKeepsOrder(t *testing.T) {
	repo := NewComparisonMemoryRepository()
	now := time.Now()

	a := repo.Save("USD", "INR", "1", now)
	b := repo.Save("USD", "EUR", "1", now)
	c := repo.Save("USD", "GBP", "1", now)

	assert.True(t, repo.Delete(b.ID))
	assert.False(t, repo.Delete(b.ID))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
}

func TestComparisonMemoryRepository_Updates(t *testing.T) {
	repo := NewComparisonMemoryRepository()
	created := time.Now().Add(-time.Hour)
	c := repo.Save("USD", "INR", "1", created)

	updated, ok := repo.UpdateAmount(c.ID, "25.5")
	require.True(t, ok)
	assert.Equal(t, "25.5", updated.SourceAmount)
	assert.Equal(t, created, updated.LastUpdated)

	refreshedAt := time.Now()
	updated, ok = repo.UpdateLastUpdated(c.ID, refreshedAt)
	require.True(t, ok)
	assert.Equal(t, refreshedAt, updated.LastUpdated)
	assert.Equal(t, "25.5", updated.SourceAmount)

	_, ok = repo.UpdateAmount(42, "1")
	assert.False(t, ok)
	_, ok = repo.UpdateLastUpdated(42, refreshedAt)
	assert.False(t, ok)
}

func TestComparisonMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewComparisonMemoryRepository()
	c := repo.Save("USD", "INR", "1", time.Now())

	list := repo.List()
	list[0].SourceAmount = "999"

	got, ok := repo.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, "1", got.SourceAmount)
}

func TestComparisonMemoryRepository_ConcurrentSave(t *testing.T) {
	repo := NewComparisonMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Save("USD", "INR", "1", time.Now())
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, c := range repo.List() {
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, seen, 50)
}
