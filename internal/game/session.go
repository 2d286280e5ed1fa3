// Package game runs Print Miner sessions: the state machine that ties
// mining, combat and the shop together behind a Presenter.
package game

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/combat"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/logger"
	"github.com/osse101/PrintMiner_Go/internal/mining"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/shop"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// Options tune the pacing and combat policy of a session
type Options struct {
	StepDelay time.Duration
	TurnDelay time.Duration
	// FleeEveryRound offers fight or flee after every round. When false a
	// fight runs to the end once started.
	FleeEveryRound bool
}

// DefaultOptions returns the production pacing
func DefaultOptions() Options {
	return Options{
		StepDelay:      DefaultStepDelay,
		TurnDelay:      DefaultTurnDelay,
		FleeEveryRound: true,
	}
}

// Session is one player's game. It owns its Player and Shop exclusively.
// Only one action runs at a time; a second one fails with domain.ErrSessionBusy.
// Mining can be cancelled from any goroutine while it runs.
type Session struct {
	ID       string
	Platform string
	Player   *player.Player
	Shop     *shop.Shop

	catalog   *catalog.Catalog
	presenter Presenter
	bus       event.Bus
	rng       utils.Roller
	opts      Options

	mu       sync.Mutex
	stateMu  sync.RWMutex
	state    State
	fight    *combat.Fight
	mining   atomic.Pointer[mining.Session]
	snapshot atomic.Pointer[player.Snapshot]
}

// NewSession creates a session in the welcome state. bus may be nil.
func NewSession(id, platform string, cat *catalog.Catalog, presenter Presenter, bus event.Bus, rng utils.Roller, opts Options) *Session {
	s := &Session{
		ID:        id,
		Platform:  platform,
		Player:    player.New(cat.BaseTool(), cat.BaseWeapon()),
		Shop:      shop.New(cat.UpgradeTools(), cat.UpgradeWeapons()),
		catalog:   cat,
		presenter: presenter,
		bus:       bus,
		rng:       rng,
		opts:      opts,
		state:     StateWelcome,
	}
	s.refreshSnapshot()
	return s
}

// State returns the current session state
func (s *Session) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Actions returns the choices valid in the current state
func (s *Session) Actions() []Action {
	return s.State().Actions()
}

func (s *Session) setState(st State) {
	s.stateMu.Lock()
	s.state = st
	s.stateMu.Unlock()
}

// Presenter returns the presenter the session renders to
func (s *Session) Presenter() Presenter {
	return s.presenter
}

// StatsSnapshot returns the miner's stats as of the last presented update
func (s *Session) StatsSnapshot() player.Snapshot {
	return *s.snapshot.Load()
}

func (s *Session) refreshSnapshot() player.Snapshot {
	snap := s.Player.Snapshot()
	s.snapshot.Store(&snap)
	return snap
}

// StartGame shows the welcome screen and announces the session
func (s *Session) StartGame(ctx context.Context) error {
	if !s.mu.TryLock() {
		return fmt.Errorf("%w: %s", domain.ErrSessionBusy, ActionStart)
	}
	defer s.mu.Unlock()

	ctx = s.logContext(ctx)
	s.setState(StateWelcome)
	s.publish(ctx, event.NewGameStartedEvent(s.ID, s.Platform, s.Player.Level, s.Player.GoldCredits))
	logger.FromContext(ctx).Info(LogMsgSessionStarted)
	return s.emit(ctx, EventWelcome, nil)
}

// StartMining runs one mining session to its end
func (s *Session) StartMining(ctx context.Context) error {
	return s.Dispatch(ctx, ActionMine)
}

// CancelMining stops the running mining session at its next step.
// It does not wait for the session lock.
func (s *Session) CancelMining() error {
	ms := s.mining.Load()
	if ms == nil {
		return fmt.Errorf("%w: "+ErrMsgActionInStateFmt, domain.ErrActionUnavailable, ActionCancel, s.State())
	}
	ms.Cancel()
	return nil
}

// ResolveShopPurchase buys heal, tool or weapon. A refused purchase is not an error.
func (s *Session) ResolveShopPurchase(ctx context.Context, kind string) (bool, error) {
	a, ok := purchaseActions[kind]
	if !ok {
		return false, fmt.Errorf("%w: purchase kind %q", domain.ErrInvalidInput, kind)
	}
	unlock, err := s.begin(a)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.purchase(s.logContext(ctx), kind)
}

// StartCombat fights the current enemy. It returns OutcomeNone when the
// fight pauses at a round boundary to offer fleeing.
func (s *Session) StartCombat(ctx context.Context) (combat.Outcome, error) {
	unlock, err := s.begin(ActionFight)
	if err != nil {
		return combat.OutcomeNone, err
	}
	defer unlock()
	return s.fightRound(s.logContext(ctx))
}

// AttemptFlee runs away from the current enemy
func (s *Session) AttemptFlee(ctx context.Context) (combat.FleeResult, error) {
	unlock, err := s.begin(ActionFlee)
	if err != nil {
		return combat.FleeResult{}, err
	}
	defer unlock()
	return s.flee(s.logContext(ctx))
}

// AbortGame resets the miner and restocks the shop
func (s *Session) AbortGame(ctx context.Context) error {
	return s.Dispatch(ctx, ActionAbort)
}

// Dispatch runs one player action. Cancel during mining bypasses the
// session lock; every other action must be valid for the current state.
func (s *Session) Dispatch(ctx context.Context, a Action) error {
	if _, ok := ParseAction(string(a)); !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownAction, a)
	}
	if a == ActionCancel && s.State() == StateMining {
		return s.CancelMining()
	}

	unlock, err := s.begin(a)
	if err != nil {
		return err
	}
	defer unlock()
	return s.dispatch(s.logContext(ctx), a)
}

var purchaseActions = map[string]Action{
	shop.KindHeal:   ActionBuyHeal,
	shop.KindTool:   ActionBuyTool,
	shop.KindWeapon: ActionBuyWeapon,
}

func (s *Session) dispatch(ctx context.Context, a Action) error {
	var err error
	switch a {
	case ActionStart, ActionBack:
		s.setState(StateIdle)
		err = s.emit(ctx, EventMenu, nil)
	case ActionCancel:
		s.setState(StateClosed)
		err = s.emit(ctx, EventClosed, nil)
	case ActionMine:
		err = s.mine(ctx, nil)
	case ActionShop:
		s.setState(StateShop)
		err = s.emit(ctx, EventShop, nil)
	case ActionStats:
		err = s.emit(ctx, EventStats, nil)
	case ActionAbort:
		err = s.abort(ctx)
	case ActionBuyHeal:
		_, err = s.purchase(ctx, shop.KindHeal)
	case ActionBuyTool:
		_, err = s.purchase(ctx, shop.KindTool)
	case ActionBuyWeapon:
		_, err = s.purchase(ctx, shop.KindWeapon)
	case ActionFight:
		_, err = s.fightRound(ctx)
	case ActionFlee:
		_, err = s.flee(ctx)
	}
	return err
}

func (s *Session) begin(a Action) (func(), error) {
	if !s.mu.TryLock() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionBusy, a)
	}
	if st := s.State(); !st.Allows(a) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: "+ErrMsgActionInStateFmt, domain.ErrActionUnavailable, a, st)
	}
	return s.mu.Unlock, nil
}

func (s *Session) logContext(ctx context.Context) context.Context {
	return logger.WithScope(ctx, logger.Scope{SessionID: s.ID, Platform: s.Platform})
}

// emit presents an event built from the current state. fill may add
// details or override the offered actions.
func (s *Session) emit(ctx context.Context, kind EventKind, fill func(*Event)) error {
	st := s.State()
	e := Event{
		Kind:    kind,
		State:   st,
		Actions: st.Actions(),
		Player:  s.refreshSnapshot(),
		Shop:    s.shopInfo(),
	}
	if fill != nil {
		fill(&e)
	}
	if err := s.presenter.PresentEvent(ctx, e); err != nil {
		return fmt.Errorf("present %s: %w", kind, err)
	}
	return nil
}

func (s *Session) shopInfo() ShopInfo {
	return ShopInfo{
		HealPrice: shop.HealPrice(s.Player),
		Tool:      s.Shop.CurrentTool,
		Weapon:    s.Shop.CurrentWeapon,
	}
}

func (s *Session) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// pause sleeps for d unless ctx ends first
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
