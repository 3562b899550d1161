package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/domain/models"
)

const dateLayout = "2006-01-02 15:04:05"

// LedgerExporter appends recorded transactions to a Google Sheets spreadsheet
// using the official Sheets API. Export is best effort: the ledger keeps the
// authoritative copy and callers only log append failures.
type LedgerExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	logger        *zap.Logger
}

// NewLedgerExporter builds a Sheets-backed exporter instance.
func NewLedgerExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*LedgerExporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &LedgerExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.LedgerRange,
		logger:        logger,
	}, nil
}

// AppendTransaction appends one transaction as a spreadsheet row.
func (e *LedgerExporter) AppendTransaction(ctx context.Context, tx models.Transaction) error {
	row := []interface{}{
		tx.Date.Format(dateLayout),
		tx.Type,
		tx.ProductName,
		tx.FarmerName,
		tx.Quantity,
		tx.PricePerKg,
		tx.TotalPrice,
		tx.Buyer,
		tx.Note,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append ledger row into range %s: %w", e.sheetRange, err)
	}

	e.logger.Debug("transaction exported to sheet",
		zap.String("range", e.sheetRange), zap.String("type", tx.Type))
	return nil
}
