// Package ledger maintains the append-only transaction log. Entries are
// recorded when inventory is added or sold and are never updated or deleted.
package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
)

// Exporter mirrors recorded transactions to an external sink, e.g. a
// spreadsheet. Export failures never fail the recording itself.
type Exporter interface {
	AppendTransaction(ctx context.Context, tx models.Transaction) error
}

// Notifier announces recorded transactions to an external endpoint.
type Notifier interface {
	TransactionRecorded(ctx context.Context, tx models.Transaction) error
}

// Service implements the transaction ledger over the record store.
type Service struct {
	store    records.Store
	exporter Exporter
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new ledger instance. Exporter and notifier are optional
// and may be nil.
func NewService(store records.Store, exporter Exporter, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		exporter: exporter,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Record assigns a time-based id to the entry, prepends it to the ledger and
// persists the result. The recorded entry is returned.
func (s *Service) Record(ctx context.Context, entry models.Transaction) (models.Transaction, error) {
	list, err := records.ReadList[models.Transaction](ctx, s.store, records.KeyTransactions, s.logger)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("load ledger: %w", err)
	}

	entry.ID = nextID(s.now(), list)
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}

	list = append([]models.Transaction{entry}, list...)
	if err := records.WriteList(ctx, s.store, records.KeyTransactions, list); err != nil {
		return models.Transaction{}, fmt.Errorf("persist ledger: %w", err)
	}

	s.logger.Info("transaction recorded",
		zap.String("type", entry.Type),
		zap.String("product", entry.ProductName),
		zap.Float64("total_price", entry.TotalPrice))

	s.fanOut(ctx, entry)
	return entry, nil
}

// fanOut delivers the entry to the optional export/notify sinks, best effort.
func (s *Service) fanOut(ctx context.Context, entry models.Transaction) {
	if s.exporter != nil {
		if err := s.exporter.AppendTransaction(ctx, entry); err != nil {
			s.logger.Warn("ledger export failed", zap.Error(err))
		}
	}
	if s.notifier != nil {
		if err := s.notifier.TransactionRecorded(ctx, entry); err != nil {
			s.logger.Warn("transaction notification failed", zap.Error(err))
		}
	}
}

// List returns the full ledger, most recent first.
func (s *Service) List(ctx context.Context) ([]models.Transaction, error) {
	list, err := records.ReadList[models.Transaction](ctx, s.store, records.KeyTransactions, s.logger)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return list, nil
}

// Recent returns the first n ledger entries, used by the activity feed.
func (s *Service) Recent(ctx context.Context, n int) ([]models.Transaction, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if n < len(list) {
		list = list[:n]
	}
	return list, nil
}

// nextID derives a millisecond-timestamp id, bumped until it does not collide
// with an existing entry. Two records within the same millisecond would
// otherwise share an id.
func nextID(at time.Time, existing []models.Transaction) models.FlexID {
	id := models.FlexID(at.UnixMilli())
	for {
		taken := false
		for _, tx := range existing {
			if tx.ID == id {
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
