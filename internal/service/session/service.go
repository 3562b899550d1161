// Package session implements the demo login boundary. Login always succeeds,
// writes the session user and seeds demo data; logout wipes every stored
// document. The full wipe is observed behavior carried over deliberately:
// signing out doubles as a demo-data reset.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agriverse/warehouse/internal/auth"
	"github.com/agriverse/warehouse/internal/config"
	"github.com/agriverse/warehouse/internal/domain/models"
	"github.com/agriverse/warehouse/internal/repository/records"
)

// loginDelay matches the round trip the original login faked.
const loginDelay = 1500 * time.Millisecond

var loggedInValue = []byte("true")

// Service implements login, logout and session lookup.
type Service struct {
	cfg    config.SessionConfig
	demo   config.DemoConfig
	store  records.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new session service instance.
func NewService(cfg config.SessionConfig, demo config.DemoConfig, store records.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:    cfg,
		demo:   demo,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Login always succeeds. It writes the session user, seeds the demo
// documents when absent and returns the user with a signed session token.
// The password is accepted but never checked.
func (s *Service) Login(ctx context.Context, email, _ string) (models.User, string, error) {
	if err := s.pause(ctx, loginDelay); err != nil {
		return models.User{}, "", err
	}

	user := models.DefaultUser()
	if email != "" {
		user.Email = email
	}

	if err := s.store.Write(ctx, records.KeyLoggedIn, loggedInValue); err != nil {
		return models.User{}, "", fmt.Errorf("persist login flag: %w", err)
	}
	if err := records.WriteDoc(ctx, s.store, records.KeyUser, user); err != nil {
		return models.User{}, "", fmt.Errorf("persist session user: %w", err)
	}

	s.seedIfAbsent(ctx)

	token, err := auth.GenerateToken(s.cfg.Secret, user.Email, s.cfg.TokenTTL)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue session token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return user, token, nil
}

// Logout clears the session and both data lists unconditionally.
func (s *Service) Logout(ctx context.Context) error {
	keys := []string{
		records.KeyLoggedIn,
		records.KeyUser,
		records.KeyInventory,
		records.KeyTransactions,
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}

	s.logger.Info("user logged out, demo data cleared")
	return nil
}

// CurrentUser returns the stored session user, or nil when nobody is logged
// in.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	return records.ReadDoc[models.User](ctx, s.store, records.KeyUser, s.logger)
}

// IsLoggedIn reports whether the login flag is set.
func (s *Service) IsLoggedIn(ctx context.Context) bool {
	raw, err := s.store.Read(ctx, records.KeyLoggedIn)
	if err != nil {
		if !errors.Is(err, records.ErrNotFound) {
			s.logger.Warn("failed to read login flag", zap.Error(err))
		}
		return false
	}
	return bytes.Equal(raw, loggedInValue)
}

// seedIfAbsent initializes the demo documents that do not exist yet. Only
// absence triggers seeding; existing documents are left alone even when
// empty.
func (s *Service) seedIfAbsent(ctx context.Context) {
	if _, err := s.store.Read(ctx, records.KeyInventory); errors.Is(err, records.ErrNotFound) {
		if err := records.WriteList(ctx, s.store, records.KeyInventory, models.SeedInventory()); err != nil {
			s.logger.Warn("failed to seed inventory", zap.Error(err))
		} else {
			s.logger.Info("demo inventory initialized")
		}
	}

	if _, err := s.store.Read(ctx, records.KeyTransactions); errors.Is(err, records.ErrNotFound) {
		if err := records.WriteList(ctx, s.store, records.KeyTransactions, models.SeedTransactions()); err != nil {
			s.logger.Warn("failed to seed transactions", zap.Error(err))
		} else {
			s.logger.Info("demo transactions initialized")
		}
	}
}

// pause sleeps for the configured simulated latency, honoring cancellation.
func (s *Service) pause(ctx context.Context, d time.Duration) error {
	if !s.demo.SimulateLatency {
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
