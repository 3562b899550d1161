package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
	"github.com/agriverse/warehouse/internal/server/handlers"
	dashboardsvc "github.com/agriverse/warehouse/internal/service/dashboard"
	inventorysvc "github.com/agriverse/warehouse/internal/service/inventory"
	ledgersvc "github.com/agriverse/warehouse/internal/service/ledger"
	sessionsvc "github.com/agriverse/warehouse/internal/service/session"
)

const testSecret = "router-test-secret"

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	store := records.NewMemoryStore()
	logger := zap.NewNop()

	ledgerSvc := ledgersvc.NewService(store, nil, nil, logger)
	inventorySvc := inventorysvc.NewService(config.DemoConfig{}, store, ledgerSvc, logger)
	dashboardSvc := dashboardsvc.NewService(store, logger)
	sessionSvc := sessionsvc.NewService(
		config.SessionConfig{Secret: testSecret, TokenTTL: time.Hour},
		config.DemoConfig{}, store, logger)

	return New(Handlers{
		Session:   handlers.NewSessionHandler(sessionSvc, logger),
		Inventory: handlers.NewInventoryHandler(inventorySvc, logger),
		Ledger:    handlers.NewLedgerHandler(ledgerSvc, logger),
		Dashboard: handlers.NewDashboardHandler(dashboardSvc, logger),
	}, testSecret, logger)
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, engine *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, engine, http.MethodPost, "/api/login", "", gin.H{"email": "manager@farm.pk", "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDataRoutesRequireSession(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/inventory", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/inventory", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInventoryLifecycleOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	// Login seeded two items.
	rec := doJSON(t, engine, http.MethodGet, "/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)

	// Add a new item.
	rec = doJSON(t, engine, http.MethodPost, "/api/inventory", token, gin.H{
		"product_name": "Rice",
		"farmer_name":  "Zafar Iqbal",
		"quantity":     10,
		"price_per_kg": 100,
		"warehouse":    "Lahore",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.StatusAvailable, created.Status)

	// Newest first: the new item leads the listing.
	rec = doJSON(t, engine, http.MethodGet, "/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "Rice", items[0].ProductName)

	// Mark it sold.
	rec = doJSON(t, engine, http.MethodPatch, "/api/inventory/"+created.ID.String(), token, gin.H{"status": models.StatusSold})
	require.Equal(t, http.StatusOK, rec.Code)

	// The sale landed in the ledger alongside the addition and the seed sale.
	rec = doJSON(t, engine, http.MethodGet, "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var transactions []models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
	require.Len(t, transactions, 3)
	assert.Equal(t, models.TxTypeSale, transactions[0].Type)
	assert.Equal(t, 1000.0, transactions[0].TotalPrice)

	// Delete it.
	rec = doJSON(t, engine, http.MethodDelete, "/api/inventory/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/inventory/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingItemReturns404(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodPatch, "/api/inventory/999", token, gin.H{"status": models.StatusSold})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRejectsMissingProductName(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/inventory", token, gin.H{"farmer_name": "Ahmed Ali"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidItemIDReturns400(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodDelete, "/api/inventory/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardSummary(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Stats            models.Stats      `json:"stats"`
		RecentActivities []json.RawMessage `json:"recent_activities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Two seeded items, one seeded sale worth 4000.
	assert.Equal(t, 2, resp.Stats.TotalItems)
	assert.Equal(t, 4000.0, resp.Stats.TotalRevenue)
	assert.Len(t, resp.RecentActivities, 1)
}

func TestInventoryTableRows(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/inventory/table", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows         []json.RawMessage `json:"rows"`
		TotalRecords int               `json:"total_records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalRecords)
	assert.Len(t, resp.Rows, 2)
}

func TestTransactionsLimit(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/transactions?limit=0", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var transactions []models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
	assert.Empty(t, transactions)

	rec = doJSON(t, engine, http.MethodGet, "/api/transactions?limit=-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutResetsDemoData(t *testing.T) {
	engine := newTestEngine(t)
	token := login(t, engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/logout", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The token is still cryptographically valid, but the data is gone and
	// the inventory listing self-heals with the seed items.
	rec = doJSON(t, engine, http.MethodGet, "/api/inventory", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)

	rec = doJSON(t, engine, http.MethodGet, "/api/session", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
