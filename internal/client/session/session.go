// Package session owns the single process-wide authentication state. Every
// screen asks the Manager who is acting; nothing else is allowed to decide
// that. State is mirrored into the local key-value store so a restart lands
// back in the same place.
package session

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/mepo/stallkeeper/internal/client/kvstore"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/dbx"
	"github.com/mepo/stallkeeper/internal/logging"
)

// State is the session lifecycle tag. A Manager starts Initializing and moves
// to exactly one of LoggedOut or LoggedIn on Initialize; afterwards it only
// toggles between those two.
type State int

const (
	StateInitializing State = iota
	StateLoggedOut
	StateLoggedIn
)

// Identity is the authenticated user. It exists only while the session is
// logged in and is replaced wholesale by a new login.
type Identity struct {
	Email          string
	FullName       string
	RegistrationID string
}

// Key-value store keys owned by the session manager. The saved* keys belong
// to the remember-me feature of the login screen but are cleared on logout
// together with the identity keys.
const (
	KeyUserEmail      = "userEmail"
	KeyUserFullName   = "userFullName"
	KeyRegistrationID = "registrationId"
	KeySavedUsername  = "savedUsername"
	KeySavedPassword  = "savedPassword"
	KeyRememberMe     = "rememberMe"
)

var sessionKeys = []string{
	KeyUserEmail,
	KeyUserFullName,
	KeyRegistrationID,
	KeySavedUsername,
	KeySavedPassword,
	KeyRememberMe,
}

// Manager is the session state machine. It persists through the local
// key-value store and is safe for concurrent readers.
type Manager struct {
	mu       sync.RWMutex
	state    State
	identity Identity

	db  *sql.DB
	log logging.Logger
}

func NewManager(db *sql.DB, log logging.Logger) *Manager {
	return &Manager{state: StateInitializing, db: db, log: log}
}

func (m *Manager) store() kvstore.Store {
	return kvstore.NewSQLiteStore(m.db)
}

// getOrEmpty treats an absent key as the empty string; other errors surface.
func getOrEmpty(ctx context.Context, s kvstore.Store, key string) (string, error) {
	v, err := s.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	return v, err
}

// Initialize restores the persisted identity, if any. It always leaves the
// Initializing state, so IsLoading turns false no matter the outcome, and it
// is idempotent: running it again against the same stored keys lands in the
// same state.
func (m *Manager) Initialize(ctx context.Context) error {
	s := m.store()

	email, err := getOrEmpty(ctx, s, KeyUserEmail)
	if err != nil {
		m.transition(StateLoggedOut, Identity{})
		return err
	}
	fullName, err := getOrEmpty(ctx, s, KeyUserFullName)
	if err != nil {
		m.transition(StateLoggedOut, Identity{})
		return err
	}
	registrationID, err := getOrEmpty(ctx, s, KeyRegistrationID)
	if err != nil {
		m.transition(StateLoggedOut, Identity{})
		return err
	}

	if email != "" && fullName != "" && registrationID != "" {
		m.transition(StateLoggedIn, Identity{Email: email, FullName: fullName, RegistrationID: registrationID})
		return nil
	}

	m.transition(StateLoggedOut, Identity{})
	return nil
}

// Login persists the identity and then flips the in-memory state. If
// persistence fails the state is left untouched, so the stored keys remain
// the source of truth for the next Initialize. Empty identity fields are
// accepted; validation belongs to the flows that call this.
func (m *Manager) Login(ctx context.Context, id Identity) error {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := kvstore.NewSQLiteStore(tx)
		if err := s.Set(ctx, KeyUserEmail, id.Email); err != nil {
			return err
		}
		if err := s.Set(ctx, KeyUserFullName, id.FullName); err != nil {
			return err
		}
		return s.Set(ctx, KeyRegistrationID, id.RegistrationID)
	})
	if err != nil {
		m.log.Error(ctx, "failed to persist session identity", "error", err)
		return err
	}

	m.transition(StateLoggedIn, id)
	return nil
}

// Logout removes every session-related key in one batch and unconditionally
// returns to LoggedOut. A failed removal is logged and otherwise ignored:
// the user can always leave the session.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store().Remove(ctx, sessionKeys...); err != nil {
		m.log.Error(ctx, "failed to clear session keys", "error", err)
	}
	m.transition(StateLoggedOut, Identity{})
}

func (m *Manager) transition(state State, id Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.identity = id
}

// IsLoading reports whether Initialize has not completed yet.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateInitializing
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateLoggedIn
}

// Current returns the acting identity. Consumers must treat ok == false as
// "not authenticated" and must not fall back to any stand-in identity.
func (m *Manager) Current() (Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateLoggedIn {
		return Identity{}, false
	}
	return m.identity, true
}
