// Package inventory implements CRUD and filtering for the warehouse
// inventory list. Mutations that create or sell stock append matching
// entries to the transaction ledger as a side effect.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
)

// ErrNotFound indicates that no inventory item matches the requested id.
var ErrNotFound = errors.New("item not found")

// Simulated latencies, matching the round trips the original portal faked.
const (
	addDelay  = time.Second
	listDelay = 500 * time.Millisecond
)

// Ledger notes attached to generated transactions.
const (
	noteNewStock  = "new stock added"
	noteStockSold = "stock sold"
)

// Recorder is the ledger dependency, satisfied by ledger.Service.
type Recorder interface {
	Record(ctx context.Context, entry models.Transaction) (models.Transaction, error)
}

// Service implements the inventory operations over the record store.
type Service struct {
	cfg    config.DemoConfig
	store  records.Store
	ledger Recorder
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new inventory service instance.
func NewService(cfg config.DemoConfig, store records.Store, ledger Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:    cfg,
		store:  store,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// Add creates a new available item from the draft, inserts it at the front of
// the list and records an addition transaction with total price zero.
func (s *Service) Add(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	if err := s.pause(ctx, addDelay); err != nil {
		return models.Item{}, err
	}

	list, err := records.ReadList[models.Item](ctx, s.store, records.KeyInventory, s.logger)
	if err != nil {
		return models.Item{}, fmt.Errorf("load inventory: %w", err)
	}

	item := models.Item{
		ID:          nextID(s.now(), list),
		ProductName: draft.ProductName,
		FarmerName:  draft.FarmerName,
		FarmerPhone: draft.FarmerPhone,
		Quantity:    draft.Quantity,
		PricePerKg:  draft.PricePerKg,
		Quality:     draft.Quality,
		Warehouse:   draft.Warehouse,
		Status:      models.StatusAvailable,
		CreatedAt:   s.now(),
	}

	list = append([]models.Item{item}, list...)
	if err := records.WriteList(ctx, s.store, records.KeyInventory, list); err != nil {
		return models.Item{}, fmt.Errorf("persist inventory: %w", err)
	}

	s.record(ctx, models.Transaction{
		Type:        models.TxTypeAddition,
		ProductName: item.ProductName,
		FarmerName:  item.FarmerName,
		Quantity:    item.Quantity,
		PricePerKg:  item.PricePerKg,
		TotalPrice:  0,
		Date:        s.now(),
		Note:        noteNewStock,
	})

	s.logger.Info("item added", zap.String("product", item.ProductName), zap.Int64("id", int64(item.ID)))
	return item, nil
}

// List returns the inventory filtered conjunctively and sorted newest first.
// An empty store is seeded with the built-in demo items and the seed is
// persisted, so a second call sees the same data without re-seeding.
func (s *Service) List(ctx context.Context, filters models.InventoryFilters) ([]models.Item, error) {
	if err := s.pause(ctx, listDelay); err != nil {
		return nil, err
	}

	list, err := records.ReadList[models.Item](ctx, s.store, records.KeyInventory, s.logger)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	if len(list) == 0 {
		list = models.SeedInventory()
		if err := records.WriteList(ctx, s.store, records.KeyInventory, list); err != nil {
			s.logger.Warn("failed to persist seed inventory", zap.Error(err))
		} else {
			s.logger.Info("inventory seeded with demo data", zap.Int("items", len(list)))
		}
	}

	list = applyFilters(list, filters)

	slices.SortStableFunc(list, func(a, b models.Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return list, nil
}

// Update merges the patch over the matching item and persists the list.
// When the patch sets the status to sold, a sale transaction is recorded from
// the post-merge item.
func (s *Service) Update(ctx context.Context, id models.FlexID, patch models.ItemPatch) (models.Item, error) {
	list, err := records.ReadList[models.Item](ctx, s.store, records.KeyInventory, s.logger)
	if err != nil {
		return models.Item{}, fmt.Errorf("load inventory: %w", err)
	}

	idx := slices.IndexFunc(list, func(item models.Item) bool { return item.ID == id })
	if idx == -1 {
		return models.Item{}, ErrNotFound
	}

	patch.Apply(&list[idx])
	if err := records.WriteList(ctx, s.store, records.KeyInventory, list); err != nil {
		return models.Item{}, fmt.Errorf("persist inventory: %w", err)
	}

	if patch.Status != nil && *patch.Status == models.StatusSold {
		item := list[idx]
		s.record(ctx, models.Transaction{
			Type:        models.TxTypeSale,
			ProductName: item.ProductName,
			FarmerName:  item.FarmerName,
			Quantity:    item.Quantity,
			PricePerKg:  item.PricePerKg,
			TotalPrice:  item.Quantity * item.PricePerKg,
			Date:        s.now(),
			Note:        noteStockSold,
		})
	}

	s.logger.Info("item updated", zap.Int64("id", int64(id)))
	return list[idx], nil
}

// Delete removes the matching item. It fails with ErrNotFound when nothing
// was removed, leaving the list untouched.
func (s *Service) Delete(ctx context.Context, id models.FlexID) error {
	list, err := records.ReadList[models.Item](ctx, s.store, records.KeyInventory, s.logger)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}

	filtered := slices.DeleteFunc(slices.Clone(list), func(item models.Item) bool {
		return item.ID == id
	})
	if len(filtered) == len(list) {
		return ErrNotFound
	}

	if err := records.WriteList(ctx, s.store, records.KeyInventory, filtered); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}

	s.logger.Info("item deleted", zap.Int64("id", int64(id)))
	return nil
}

// record appends a transaction to the ledger. Ledger failures are logged and
// swallowed so the originating inventory mutation still succeeds.
func (s *Service) record(ctx context.Context, entry models.Transaction) {
	if _, err := s.ledger.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record transaction", zap.String("type", entry.Type), zap.Error(err))
	}
}

// pause sleeps for the configured simulated latency, honoring cancellation.
func (s *Service) pause(ctx context.Context, d time.Duration) error {
	if !s.cfg.SimulateLatency {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// applyFilters narrows the list conjunctively: status, product name and
// warehouse by equality, then a case-insensitive substring search across
// farmer name, product name and warehouse.
func applyFilters(list []models.Item, filters models.InventoryFilters) []models.Item {
	if filters.Status != "" {
		list = keep(list, func(item models.Item) bool { return item.Status == filters.Status })
	}
	if filters.ProductName != "" {
		list = keep(list, func(item models.Item) bool { return item.ProductName == filters.ProductName })
	}
	if filters.Warehouse != "" {
		list = keep(list, func(item models.Item) bool { return item.Warehouse == filters.Warehouse })
	}
	if filters.Search != "" {
		term := strings.ToLower(filters.Search)
		list = keep(list, func(item models.Item) bool {
			return strings.Contains(strings.ToLower(item.FarmerName), term) ||
				strings.Contains(strings.ToLower(item.ProductName), term) ||
				strings.Contains(strings.ToLower(item.Warehouse), term)
		})
	}
	return list
}

func keep(list []models.Item, match func(models.Item) bool) []models.Item {
	out := make([]models.Item, 0, len(list))
	for _, item := range list {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// nextID derives a millisecond-timestamp id, bumped until unique within the
// list.
func nextID(at time.Time, existing []models.Item) models.FlexID {
	id := models.FlexID(at.UnixMilli())
	for {
		taken := false
		for _, item := range existing {
			if item.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}
