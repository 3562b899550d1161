package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
)

func TestComputeStats(t *testing.T) {
	inventory := []models.Item{
		{Status: models.StatusAvailable},
		{Status: models.StatusSold},
		{Status: models.StatusSold},
		{Status: models.StatusSpoiled},
	}
	transactions := []models.Transaction{
		{TotalPrice: 4000},
		{TotalPrice: 0},
		{TotalPrice: 1500},
	}

	stats := ComputeStats(inventory, transactions)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.SoldItems)
	assert.Equal(t, 1, stats.SpoiledItems)
	assert.Equal(t, 5500.0, stats.TotalRevenue)
}

func TestComputeStatsIsPure(t *testing.T) {
	inventory := []models.Item{{Status: models.StatusSold}}
	transactions := []models.Transaction{{TotalPrice: 42}}

	first := ComputeStats(inventory, transactions)
	second := ComputeStats(inventory, transactions)

	assert.Equal(t, first, second)
}

func TestComputeStatsEmptyInputs(t *testing.T) {
	stats := ComputeStats(nil, nil)
	assert.Equal(t, models.Stats{}, stats)
}

func TestMissingTotalPriceCountsAsZero(t *testing.T) {
	store := records.NewMemoryStore()
	ctx := context.Background()

	// Entries persisted without a total_price field decode to zero revenue.
	raw := `[{"id":1,"type":"addition","product_name":"Rice"},{"id":2,"type":"sale","total_price":4000}]`
	require.NoError(t, store.Write(ctx, records.KeyTransactions, []byte(raw)))

	svc := NewService(store, zap.NewNop())
	snapshot, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, snapshot.Stats.TotalRevenue)
}

func TestLoadCapsRecentActivity(t *testing.T) {
	store := records.NewMemoryStore()
	ctx := context.Background()

	transactions := make([]models.Transaction, 8)
	for i := range transactions {
		transactions[i] = models.Transaction{ID: models.FlexID(i + 1), TotalPrice: 10}
	}
	require.NoError(t, records.WriteList(ctx, store, records.KeyTransactions, transactions))

	svc := NewService(store, zap.NewNop())
	snapshot, err := svc.Load(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot.RecentActivity, 5)
	assert.Equal(t, models.FlexID(1), snapshot.RecentActivity[0].ID)
	assert.Equal(t, 80.0, snapshot.Stats.TotalRevenue)
}

func TestRefreshCachesSnapshot(t *testing.T) {
	store := records.NewMemoryStore()
	ctx := context.Background()

	svc := NewService(store, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	_, ok := svc.Cached()
	assert.False(t, ok)

	require.NoError(t, records.WriteList(ctx, store, records.KeyInventory, []models.Item{{Status: models.StatusSold}}))

	refreshed, err := svc.Refresh(ctx)
	require.NoError(t, err)

	cached, ok := svc.Cached()
	require.True(t, ok)
	assert.Equal(t, refreshed, cached)
	assert.Equal(t, 1, cached.Stats.SoldItems)
}
