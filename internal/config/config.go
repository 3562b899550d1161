package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Sheets  SheetsConfig
	Notify  NotifyConfig
	Session SessionConfig
	Demo    DemoConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// StorageConfig selects and configures the record store backend.
type StorageConfig struct {
	Backend     string
	MongoURI    string
	MongoDBName string
}

// SheetsConfig configures the optional transaction ledger export to Google
// Sheets. Export is enabled only when both credentials and spreadsheet are set.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
	LedgerRange     string
}

// Enabled reports whether the Sheets export should be wired.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// NotifyConfig configures the optional transaction webhook notifier.
type NotifyConfig struct {
	WebhookURL string
	AuthToken  string
}

// Enabled reports whether the webhook notifier should be wired.
func (c NotifyConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// SessionConfig holds session token settings.
type SessionConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// DemoConfig holds demo-behavior toggles.
type DemoConfig struct {
	// SimulateLatency makes the services pause before resolving, mimicking
	// the network round trips the real backend would incur.
	SimulateLatency bool
	// RefreshSchedule is the cron expression for the periodic dashboard refresh.
	RefreshSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	simulateLatency, err := strconv.ParseBool(getenvWithDefault("DEMO_SIMULATE_LATENCY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEMO_SIMULATE_LATENCY: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Storage: StorageConfig{
			Backend:     getenvWithDefault("STORAGE_BACKEND", BackendMemory),
			MongoURI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDBName: getenvWithDefault("MONGODB_DB_NAME", "agriverse"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
			LedgerRange:     getenvWithDefault("GOOGLE_SHEET_LEDGER_RANGE", "Ledger!A:I"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
			AuthToken:  os.Getenv("NOTIFY_AUTH_TOKEN"),
		},
		Session: SessionConfig{
			Secret:   getenvWithDefault("SESSION_SECRET", "agriverse-demo-secret"),
			TokenTTL: ttl,
		},
		Demo: DemoConfig{
			SimulateLatency: simulateLatency,
			RefreshSchedule: getenvWithDefault("DASHBOARD_REFRESH_SCHEDULE", "@every 30s"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendMongo:
		if c.Storage.MongoURI == "" {
			return errors.New("MONGODB_URI must be provided for the mongo backend")
		}
		if c.Storage.MongoDBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Sheets.CredentialsPath != "" || c.Sheets.SpreadsheetID != "" {
		switch {
		case c.Sheets.CredentialsPath == "":
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when ledger export is configured")
		case c.Sheets.SpreadsheetID == "":
			return errors.New("GOOGLE_SHEET_LEDGER_ID must be provided when ledger export is configured")
		case c.Sheets.LedgerRange == "":
			return errors.New("GOOGLE_SHEET_LEDGER_RANGE must not be empty")
		}
	}

	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.Session.TokenTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	if c.Demo.RefreshSchedule == "" {
		return errors.New("DASHBOARD_REFRESH_SCHEDULE must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
