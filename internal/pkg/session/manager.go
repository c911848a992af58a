// internal/pkg/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"rental-console/internal/domain/auth"
	xerrors "rental-console/internal/pkg/errors"

	"go.uber.org/zap"
)

const (
	subscriberBuffer = 8
	storageTimeout   = 5 * time.Second
)

// ProfileFetcher resolves a bearer token into the user it belongs to.
type ProfileFetcher interface {
	CurrentUser(ctx context.Context, token string) (*auth.User, error)
}

// ExpiryFunc reads the expiry of a token, if it carries one.
type ExpiryFunc func(token string) (time.Time, bool)

type Option func(*Manager)

// WithTokenExpiry makes snapshots carry the token's expiry time.
func WithTokenExpiry(fn ExpiryFunc) Option {
	return func(m *Manager) { m.expiry = fn }
}

// Manager owns the console's token and current user. Every change of token
// schedules exactly one profile fetch; a failed fetch clears the session and
// is never retried. Results of fetches superseded by a later login, logout or
// fetch are discarded.
//
// State lives under mu; storage I/O runs under storeMu only, so slow storage
// never blocks snapshot readers. Every path that changes the token takes
// storeMu before mu, which keeps storage writes in the order of the state
// changes they persist.
type Manager struct {
	storage  Storage
	profiles ProfileFetcher
	logger   *zap.Logger
	expiry   ExpiryFunc

	storeMu sync.Mutex

	mu          sync.RWMutex
	token       string
	user        *auth.User
	fetching    bool
	gen         uint64
	idle        chan struct{}
	cancelFetch context.CancelFunc
	closed      bool

	subs    map[int]chan Session
	nextSub int
}

func NewManager(storage Storage, profiles ProfileFetcher, logger *zap.Logger, opts ...Option) *Manager {
	idle := make(chan struct{})
	close(idle)

	m := &Manager{
		storage:  storage,
		profiles: profiles,
		logger:   logger,
		idle:     idle,
		subs:     make(map[int]chan Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize restores a persisted token. Without one the session stays
// anonymous and no profile fetch is made.
func (m *Manager) Initialize(ctx context.Context) error {
	m.storeMu.Lock()
	defer m.storeMu.Unlock()

	token, ok, err := m.storage.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("failed to read persisted token: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !ok || token == "" {
		m.logger.Info("no persisted session")
		return nil
	}

	m.token = token
	m.user = nil
	m.scheduleFetchLocked()
	m.logger.Info("persisted session found, resolving profile")
	m.publishLocked(m.snapshotLocked())
	return nil
}

// Login sets token and user together, persists both and schedules a
// reconcile fetch. A storage failure is returned but the in-memory session
// is kept.
func (m *Manager) Login(ctx context.Context, token string, user *auth.User) error {
	if token == "" {
		return fmt.Errorf("login without token: %w", xerrors.ErrInvalidInput)
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()

	m.mu.Lock()
	m.token = token
	m.user = cloneUser(user)
	stored := cloneUser(m.user)
	m.scheduleFetchLocked()
	if m.user != nil {
		m.logger.Info("session started", zap.String("user_id", m.user.ID))
	}
	m.publishLocked(m.snapshotLocked())
	m.mu.Unlock()

	err := m.persist(ctx, token, stored)
	if err != nil {
		m.logger.Error("failed to persist session", zap.Error(err))
	}
	return err
}

// Logout clears the session in memory and in storage and invalidates any
// outstanding fetch. Calling it again is harmless.
func (m *Manager) Logout(ctx context.Context) error {
	m.storeMu.Lock()
	defer m.storeMu.Unlock()

	m.mu.Lock()
	hadSession := m.token != "" || m.user != nil || m.fetching
	m.invalidateFetchLocked()
	m.token = ""
	m.user = nil
	if hadSession {
		m.logger.Info("session ended")
		m.publishLocked(m.snapshotLocked())
	}
	m.mu.Unlock()

	if err := m.storage.Delete(ctx, KeyToken, KeyUser); err != nil {
		err = fmt.Errorf("failed to clear persisted session: %w", err)
		m.logger.Error("logout storage cleanup failed", zap.Error(err))
		return err
	}
	return nil
}

// UpdateUser persists user and schedules a re-fetch. The in-memory user only
// changes when that fetch resolves; the token is never touched.
func (m *Manager) UpdateUser(ctx context.Context, user *auth.User) error {
	if user == nil {
		return fmt.Errorf("update without user: %w", xerrors.ErrInvalidInput)
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()

	// the token cannot change while storeMu is held
	if m.Token() == "" {
		return xerrors.ErrNotAuthenticated
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := m.storage.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleFetchLocked()
	m.publishLocked(m.snapshotLocked())
	return nil
}

// Refetch schedules one profile fetch when a token is present.
func (m *Manager) Refetch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" || m.closed {
		return
	}
	m.scheduleFetchLocked()
	m.publishLocked(m.snapshotLocked())
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticatedLocked()
}

func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.fetching
}

// Token returns the current bearer token, empty when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Subscribe returns a channel of snapshots, one per state change. Slow
// readers lose older snapshots, never the latest one.
func (m *Manager) Subscribe() (<-chan Session, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan Session, subscriberBuffer)
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
}

// WaitIdle blocks until no profile fetch is outstanding and the storage
// writes of the last state change have finished.
func (m *Manager) WaitIdle(ctx context.Context) error {
	for {
		m.mu.RLock()
		idle := m.idle
		fetching := m.fetching
		m.mu.RUnlock()

		if !fetching {
			m.storeMu.Lock()
			m.storeMu.Unlock()
			return nil
		}
		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close abandons any outstanding fetch without touching the session or storage.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.invalidateFetchLocked()
}

func (m *Manager) scheduleFetchLocked() {
	if m.closed {
		return
	}
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	m.gen++
	if !m.fetching {
		m.fetching = true
		m.idle = make(chan struct{})
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFetch = cancel
	go m.fetch(ctx, m.gen, m.token)
}

func (m *Manager) fetch(ctx context.Context, gen uint64, token string) {
	user, err := m.profiles.CurrentUser(ctx, token)
	if err == nil && (user == nil || user.ID == "") {
		err = errors.New("profile response carries no user id")
	}

	m.storeMu.Lock()
	defer m.storeMu.Unlock()

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		m.logger.Debug("discarding superseded profile fetch", zap.Uint64("generation", gen))
		return
	}
	m.finishFetchLocked()

	if err != nil {
		m.logger.Warn("profile fetch failed, clearing session", zap.Error(err))
		m.token = ""
		m.user = nil
		rejected := m.snapshotLocked()
		rejected.State = StateRejected
		m.publishLocked(rejected)
	} else {
		m.user = cloneUser(user)
		m.logger.Info("profile resolved", zap.String("user_id", m.user.ID))
		m.publishLocked(m.snapshotLocked())
	}
	m.mu.Unlock()

	// storeMu keeps later login/logout writes behind these
	storeCtx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err != nil {
		if derr := m.storage.Delete(storeCtx, KeyToken, KeyUser); derr != nil {
			m.logger.Error("failed to clear persisted session", zap.Error(derr))
		}
		return
	}
	if raw, merr := json.Marshal(user); merr == nil {
		if serr := m.storage.Set(storeCtx, KeyUser, string(raw)); serr != nil {
			m.logger.Error("failed to persist resolved user", zap.Error(serr))
		}
	}
}

func (m *Manager) invalidateFetchLocked() {
	m.gen++
	if m.fetching {
		m.finishFetchLocked()
	}
}

func (m *Manager) finishFetchLocked() {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
	m.fetching = false
	close(m.idle)
}

func (m *Manager) persist(ctx context.Context, token string, user *auth.User) error {
	var errs []error
	if err := m.storage.Set(ctx, KeyToken, token); err != nil {
		errs = append(errs, fmt.Errorf("failed to persist token: %w", err))
	}
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to encode user: %w", err))
		} else if err := m.storage.Set(ctx, KeyUser, string(raw)); err != nil {
			errs = append(errs, fmt.Errorf("failed to persist user: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) authenticatedLocked() bool {
	return m.token != "" && m.user != nil && m.user.ID != ""
}

func (m *Manager) snapshotLocked() Session {
	s := Session{
		Token:           m.token,
		User:            cloneUser(m.user),
		IsAuthenticated: m.authenticatedLocked(),
		IsLoading:       m.token != "" && m.fetching,
	}

	switch {
	case m.token == "":
		s.State = StateAnonymous
	case s.IsAuthenticated:
		s.State = StateAuthenticated
	default:
		s.State = StateResolving
	}

	if m.token != "" && m.expiry != nil {
		if exp, ok := m.expiry(m.token); ok {
			s.ExpiresAt = &exp
		}
	}
	return s
}

// publishLocked never blocks: a full subscriber drops its oldest snapshot.
func (m *Manager) publishLocked(s Session) {
	for _, ch := range m.subs {
		select {
		case ch <- s:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

func cloneUser(u *auth.User) *auth.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
