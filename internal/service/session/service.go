package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/atlasfield/fieldops-agent-go/internal/api"
	"github.com/atlasfield/fieldops-agent-go/internal/domain/user"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/kvstore"
	"github.com/atlasfield/fieldops-agent-go/internal/pkg/token"
)

const (
	tokenKey   = "auth_token"
	profileKey = "user_profile"
)

// Manager owns the device session: the bearer token installed on the API
// client plus the cached profile, both persisted across restarts.
type Manager struct {
	repo   user.AuthRepository
	store  kvstore.Store
	client *api.Client
	now    func() time.Time

	mu      sync.RWMutex
	current *user.User
	claims  *token.Claims
}

func NewManager(repo user.AuthRepository, store kvstore.Store, client *api.Client) *Manager {
	return &Manager{
		repo:   repo,
		store:  store,
		client: client,
		now:    time.Now,
	}
}

// Login implements user.SessionManager.
func (m *Manager) Login(ctx context.Context, email, password string) (user.User, error) {
	result, err := m.repo.Login(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	m.client.SetToken(result.Token)

	var claims *token.Claims
	if parsed, err := token.Parse(result.Token); err != nil {
		// The backend accepted the credentials; an uninspectable token only
		// costs the agent its expiry check.
		slog.Warn("Could not inspect bearer token", "error", err)
	} else {
		claims = &parsed
	}

	if err := m.store.Set(ctx, tokenKey, mustJSON(result.Token)); err != nil {
		slog.Warn("Failed to persist session token", "error", err)
	}
	if err := m.store.Set(ctx, profileKey, mustJSON(result.User)); err != nil {
		slog.Warn("Failed to persist user profile", "error", err)
	}

	m.mu.Lock()
	m.current = &result.User
	m.claims = claims
	m.mu.Unlock()

	return result.User, nil
}

// Logout implements user.SessionManager.
func (m *Manager) Logout(ctx context.Context) error {
	m.client.ClearToken()

	if err := m.store.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to drop session token: %w", err)
	}
	if err := m.store.Delete(ctx, profileKey); err != nil {
		return fmt.Errorf("failed to drop user profile: %w", err)
	}

	m.mu.Lock()
	m.current = nil
	m.claims = nil
	m.mu.Unlock()

	return nil
}

// Current implements user.SessionManager.
func (m *Manager) Current(ctx context.Context) (user.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return user.User{}, user.ErrNoSession
	}
	if m.claims != nil && m.claims.Expired(m.now()) {
		return user.User{}, user.ErrSessionExpired
	}
	return *m.current, nil
}

// Restore implements user.SessionManager. Missing or expired persisted
// sessions leave the device logged out without error.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read persisted session: %w", err)
	}

	var bearer string
	if err := json.Unmarshal(raw, &bearer); err != nil {
		return fmt.Errorf("failed to decode persisted session token: %w", err)
	}

	claims, err := token.Parse(bearer)
	if err != nil {
		slog.Warn("Dropping malformed persisted token", "error", err)
		return m.Logout(ctx)
	}
	if claims.Expired(m.now()) {
		slog.Info("Persisted session expired, starting logged out")
		return m.Logout(ctx)
	}

	m.client.SetToken(bearer)

	profile, err := m.loadProfile(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = profile
	m.claims = &claims
	m.mu.Unlock()

	return nil
}

func (m *Manager) loadProfile(ctx context.Context) (*user.User, error) {
	raw, err := m.store.Get(ctx, profileKey)
	if err == nil {
		var cached user.User
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		slog.Warn("Failed to decode cached profile, re-fetching")
	} else if !errors.Is(err, kvstore.ErrNotFound) {
		return nil, fmt.Errorf("failed to read cached profile: %w", err)
	}

	fetched, err := m.repo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore profile: %w", err)
	}
	if err := m.store.Set(ctx, profileKey, mustJSON(fetched)); err != nil {
		slog.Warn("Failed to persist user profile", "error", err)
	}
	return &fetched, nil
}

func mustJSON(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
