package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TokenTTL)
	assert.Equal(t, "@every 30s", cfg.Demo.RefreshSchedule)
	assert.False(t, cfg.Demo.SimulateLatency)
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.Notify.Enabled())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("DEMO_SIMULATE_LATENCY", "true")
	t.Setenv("NOTIFY_WEBHOOK_URL", "https://hooks.example.com/tx")

	cfg, err := Load("testdata/nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, BackendMongo, cfg.Storage.Backend)
	assert.True(t, cfg.Demo.SimulateLatency)
	assert.True(t, cfg.Notify.Enabled())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := Load("testdata/nonexistent.env")
	assert.Error(t, err)
}

func TestValidateRequiresBothSheetsSettings(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_LEDGER_ID", "sheet-id")

	_, err := Load("testdata/nonexistent.env")
	assert.Error(t, err)
}

func TestValidateRejectsBadTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	_, err := Load("testdata/nonexistent.env")
	assert.Error(t, err)
}
