package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/service/ledger"
)

// LedgerHandler serves the transaction log. The ledger is append-only, so
// reads are the only endpoints here.
type LedgerHandler struct {
	svc    *ledger.Service
	logger *zap.Logger
}

// NewLedgerHandler constructs the HTTP handler adapter.
func NewLedgerHandler(svc *ledger.Service, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{svc: svc, logger: logger}
}

// List handles GET /api/transactions. An optional limit query caps the
// result to the most recent entries.
func (h *LedgerHandler) List(c *gin.Context) {
	var (
		transactions []models.Transaction
		err          error
	)

	if raw := c.Query("limit"); raw != "" {
		limit, parseErr := strconv.Atoi(raw)
		if parseErr != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		transactions, err = h.svc.Recent(c.Request.Context(), limit)
	} else {
		transactions, err = h.svc.List(c.Request.Context())
	}

	if err != nil {
		h.logger.Error("failed listing transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	c.JSON(http.StatusOK, transactions)
}
