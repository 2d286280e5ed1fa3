package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/logger"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// ManagerConfig sizes the session store
type ManagerConfig struct {
	Size int
	TTL  time.Duration
	// Options are copied into every new session. Nil means DefaultOptions.
	Options *Options
	// Seed returns the randomness seed of a new session. Defaults to the clock.
	Seed func() int64
}

// Manager keeps one session per player key with LRU eviction and an idle TTL
type Manager struct {
	catalog  *catalog.Catalog
	bus      event.Bus
	cfg      ManagerConfig
	opts     Options
	sessions *expirable.LRU[string, *Session]
}

// NewManager creates a session manager. bus may be nil. Zero sizes and
// nil Options fall back to the defaults.
func NewManager(cat *catalog.Catalog, bus event.Bus, cfg ManagerConfig) *Manager {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultSessionTTL
	}
	opts := DefaultOptions()
	if cfg.Options != nil {
		opts = *cfg.Options
	}
	if cfg.Seed == nil {
		cfg.Seed = func() int64 { return time.Now().UnixNano() }
	}

	m := &Manager{
		catalog: cat,
		bus:     bus,
		cfg:     cfg,
		opts:    opts,
	}
	m.sessions = expirable.NewLRU[string, *Session](cfg.Size, m.onEvict, cfg.TTL)
	return m
}

// onEvict stops any mining left running in a dropped session
func (m *Manager) onEvict(key string, s *Session) {
	_ = s.CancelMining()
	logger.Debug(LogMsgSessionEvicted, "key", key, logger.AttrKeySessionID, s.ID)
}

// StartGame opens a new session for key, replacing any existing one
func (m *Manager) StartGame(ctx context.Context, key, platform string, presenter Presenter) (*Session, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty session key", domain.ErrInvalidInput)
	}
	if presenter == nil {
		return nil, fmt.Errorf("%w: nil presenter", domain.ErrInvalidInput)
	}

	if old, ok := m.sessions.Peek(key); ok {
		logger.FromContext(ctx).Info(LogMsgSessionReplaced, "key", key, "old_session_id", old.ID)
		m.sessions.Remove(key)
	}

	s := NewSession(uuid.NewString(), platform, m.catalog, presenter, m.bus, utils.NewRoller(m.cfg.Seed()), m.opts)
	m.sessions.Add(key, s)
	return s, s.StartGame(ctx)
}

// Get returns the live session for key
func (m *Manager) Get(key string) (*Session, error) {
	s, ok := m.sessions.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, key)
	}
	return s, nil
}

// Dispatch runs an action on key's session. Closed sessions are dropped.
func (m *Manager) Dispatch(ctx context.Context, key string, a Action) error {
	s, err := m.Get(key)
	if err != nil {
		return err
	}

	err = s.Dispatch(ctx, a)
	if s.State() == StateClosed {
		if cur, ok := m.sessions.Peek(key); ok && cur == s {
			m.sessions.Remove(key)
		}
	}
	return err
}

// Remove drops key's session
func (m *Manager) Remove(key string) {
	m.sessions.Remove(key)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	return m.sessions.Len()
}
