package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/server/viewmodel"
	"github.com/agriverse/warehouse/internal/service/inventory"
)

// InventoryHandler handles inventory CRUD endpoints.
type InventoryHandler struct {
	svc    *inventory.Service
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(svc *inventory.Service, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{svc: svc, logger: logger}
}

func filtersFromQuery(c *gin.Context) models.InventoryFilters {
	return models.InventoryFilters{
		Status:      c.Query("status"),
		ProductName: c.Query("product_name"),
		Warehouse:   c.Query("warehouse"),
		Search:      c.Query("search"),
	}
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.logger.Error("failed listing inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	c.JSON(http.StatusOK, items)
}

// Table handles GET /api/inventory/table, returning display rows.
func (h *InventoryHandler) Table(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		h.logger.Error("failed listing inventory", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}

	rows := viewmodel.ItemRows(items)
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total_records": len(rows)})
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	var draft models.ItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.logger.Warn("invalid item draft", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if draft.ProductName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name required"})
		return
	}

	item, err := h.svc.Add(c.Request.Context(), draft)
	if err != nil {
		h.logger.Error("failed adding item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /api/inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var patch models.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid item patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, patch)
	if errors.Is(err, inventory.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed updating item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, inventory.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func itemID(c *gin.Context) (models.FlexID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return models.FlexID(id), true
}
