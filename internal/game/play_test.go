package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/testing/leaktest"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

func newUnstartedSession(screen Presenter, seed int64, opts Options) *Session {
	return NewSession("play", domain.PlatformConsole, catalog.Default(), screen, nil, utils.NewRoller(seed), opts)
}

func TestPlay_ShopStatsAbortThenClose(t *testing.T) {
	screen := &recorder{}
	s := newUnstartedSession(screen, 1, instantOptions())
	require.NoError(t, s.StartGame(context.Background()))
	src := &scriptedChoices{choices: []Action{
		ActionStart, ActionShop, ActionBuyTool, ActionBack, ActionStats, ActionAbort, ActionCancel,
	}}

	err := s.Play(context.Background(), src)

	require.NoError(t, err)
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, []EventKind{
		EventWelcome, EventMenu, EventShop, EventPurchase, EventMenu, EventStats, EventAbort, EventClosed,
	}, screen.kinds())
	require.Len(t, src.offered, 7)
	assert.Equal(t, StateWelcome.Actions(), src.offered[0])
	assert.Equal(t, StateShop.Actions(), src.offered[2])
	assert.Equal(t, StateWelcome.Actions(), src.offered[6], "abort returns to the welcome screen")
}

func TestPlay_MiningStopsWatcher(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		screen := &recorder{}
		s := newUnstartedSession(screen, 11, instantOptions())
		src := &scriptedChoices{choices: []Action{ActionStart, ActionMine}}

		err := s.Play(context.Background(), src)

		assert.ErrorIs(t, err, context.Canceled, "the script ran out of choices")
		require.Len(t, src.offered, 3)
		assert.Contains(t, [][]Action{StateIdle.Actions(), StateEncounter.Actions()}, src.offered[2])
		_, mined := screen.find(EventMiningStarted)
		assert.True(t, mined)
		assert.False(t, s.Player.Aborted)
	})
}

// cancellingChoices presses cancel as soon as mining starts
type cancellingChoices struct {
	scriptedChoices
	cancels int
	mu      sync.Mutex
}

func (c *cancellingChoices) AwaitChoice(ctx context.Context, actions []Action) (Action, error) {
	if len(actions) == 1 && actions[0] == ActionCancel {
		c.mu.Lock()
		c.cancels++
		c.mu.Unlock()
		return ActionCancel, nil
	}
	return c.scriptedChoices.AwaitChoice(ctx, actions)
}

func TestPlay_CancelDuringMining(t *testing.T) {
	screen := &recorder{}
	opts := instantOptions()
	opts.StepDelay = 5 * time.Millisecond
	s := newUnstartedSession(screen, 3, opts)
	src := &cancellingChoices{scriptedChoices: scriptedChoices{choices: []Action{ActionStart, ActionMine}}}

	err := s.Play(context.Background(), src)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, src.cancels)
	cancelled, ok := screen.find(EventMiningCancelled)
	require.True(t, ok)
	assert.True(t, cancelled.Mining.Cancelled)
	assert.Less(t, len(screen.progress), cancelled.Mining.Steps)
	assert.True(t, s.Player.Aborted)
	assert.Equal(t, StateIdle, s.State(), "a cancelled run never leads to an encounter")
}

func TestPlay_ReturnsPresenterErrors(t *testing.T) {
	presenter := new(MockPresenter)
	presenter.On("PresentEvent", anyCtx, eventOfKind(EventWelcome)).Return(nil)
	presenter.On("PresentEvent", anyCtx, eventOfKind(EventMenu)).Return(assert.AnError)

	s := newUnstartedSession(presenter, 1, instantOptions())
	require.NoError(t, s.StartGame(context.Background()))

	err := s.Play(context.Background(), &scriptedChoices{choices: []Action{ActionStart}})

	assert.ErrorIs(t, err, assert.AnError)
	presenter.AssertExpectations(t)
}
