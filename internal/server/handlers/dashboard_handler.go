package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/server/viewmodel"
	"github.com/agriverse/warehouse/internal/service/dashboard"
)

// DashboardHandler serves the aggregated dashboard summary.
type DashboardHandler struct {
	svc    *dashboard.Service
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Summary handles GET /api/dashboard. Each request re-runs the
// load→aggregate pipeline so the response never lags behind a mutation,
// refreshing the cached snapshot as a side effect.
func (h *DashboardHandler) Summary(c *gin.Context) {
	snapshot, err := h.svc.Refresh(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":             snapshot.Stats,
		"recent_activities": viewmodel.Activities(snapshot.RecentActivity),
		"refreshed_at":      snapshot.RefreshedAt,
	})
}
