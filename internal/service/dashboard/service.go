// Package dashboard derives summary statistics from the inventory and
// transaction lists.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
)

// recentLimit is how many ledger entries the activity feed shows.
const recentLimit = 5

// ComputeStats derives the dashboard summary from already-loaded data. It is
// a pure function: the same inputs always produce the same output.
func ComputeStats(inventory []models.Item, transactions []models.Transaction) models.Stats {
	stats := models.Stats{TotalItems: len(inventory)}

	for _, item := range inventory {
		switch item.Status {
		case models.StatusSold:
			stats.SoldItems++
		case models.StatusSpoiled:
			stats.SpoiledItems++
		}
	}

	for _, tx := range transactions {
		stats.TotalRevenue += tx.TotalPrice
	}

	return stats
}

// Snapshot is one full load→aggregate result.
type Snapshot struct {
	Stats          models.Stats         `json:"stats"`
	RecentActivity []models.Transaction `json:"recent_activity"`
	RefreshedAt    time.Time            `json:"refreshed_at"`
}

// Service runs the load→aggregate pipeline over the record store and keeps
// the latest snapshot for periodic-refresh consumers.
type Service struct {
	store  records.Store
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewService wires a new dashboard service instance.
func NewService(store records.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Load reads both lists and aggregates them into a fresh snapshot.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	inventory, err := records.ReadList[models.Item](ctx, s.store, records.KeyInventory, s.logger)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load inventory: %w", err)
	}

	transactions, err := records.ReadList[models.Transaction](ctx, s.store, records.KeyTransactions, s.logger)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load transactions: %w", err)
	}

	recent := transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return Snapshot{
		Stats:          ComputeStats(inventory, transactions),
		RecentActivity: recent,
		RefreshedAt:    s.now(),
	}, nil
}

// Refresh runs the pipeline and caches the result.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()

	s.logger.Debug("dashboard refreshed",
		zap.Int("total_items", snapshot.Stats.TotalItems),
		zap.Float64("total_revenue", snapshot.Stats.TotalRevenue))

	return snapshot, nil
}

// Cached returns the last refreshed snapshot, if any.
func (s *Service) Cached() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return Snapshot{}, false
	}
	return *s.snapshot, true
}
