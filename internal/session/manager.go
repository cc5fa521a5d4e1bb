// Package session owns the authenticated identity for the process. One
// Manager is created at startup and handed to every command; nothing
// else mutates it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

// Manager tracks who is acting now. It moves between exactly two
// states: unauthenticated (Current returns nil) and authenticated.
type Manager struct {
	api    *apiclient.Client
	store  TokenStore
	logger *zap.Logger

	mu      sync.RWMutex
	current *domain.Identity
}

// NewManager wires the session manager to the API client and the
// durable token store.
func NewManager(api *apiclient.Client, store TokenStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{api: api, store: store, logger: logger}
}

// Current returns the authenticated identity, or nil before login
// completes or after logout.
func (m *Manager) Current() *domain.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	identity := *m.current
	return &identity
}

// Login exchanges credentials for a session. On success the token is
// persisted and installed on the API client.
func (m *Manager) Login(ctx context.Context, username, password string) (*domain.Identity, error) {
	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(resp.Token); err != nil {
		return nil, err
	}
	m.api.SetToken(resp.Token)

	m.mu.Lock()
	user := resp.User
	m.current = &user
	m.mu.Unlock()

	m.logger.Info("logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))
	identity := user
	return &identity, nil
}

// Logout clears the token and the identity unconditionally. It always
// succeeds; a failed file removal is logged and swallowed.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("failed to clear token", zap.Error(err))
	}
	m.api.SetToken("")

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Restore resolves a previously stored token to an identity at process
// start. Any failure (missing token, local expiry, backend rejection,
// network error) falls back silently to the unauthenticated state and
// clears the stored token.
func (m *Manager) Restore(ctx context.Context) *domain.Identity {
	token, err := m.store.Load()
	if err != nil || token == "" {
		if err != nil {
			m.logger.Warn("failed to load token", zap.Error(err))
		}
		return nil
	}

	if expired(token) {
		m.logger.Debug("stored token expired, skipping restore call")
		m.Logout()
		return nil
	}

	m.api.SetToken(token)
	identity, err := m.api.Me(ctx)
	if err != nil {
		m.logger.Debug("session restore failed", zap.Error(err))
		m.Logout()
		return nil
	}

	m.mu.Lock()
	m.current = identity
	m.mu.Unlock()

	user := *identity
	return &user
}

// expired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Tokens that do not
// parse as JWTs are treated as live and left for the backend to judge.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
