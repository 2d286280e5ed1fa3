package game

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// recorder is a Presenter that keeps everything it is shown
type recorder struct {
	mu       sync.Mutex
	events   []Event
	progress []Progress
}

func (r *recorder) PresentProgress(_ context.Context, p Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, p)
	return nil
}

func (r *recorder) PresentEvent(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) find(kind EventKind) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.progress = nil
}

// MockPresenter is a testify mock of Presenter
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) PresentProgress(ctx context.Context, p Progress) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresenter) PresentEvent(ctx context.Context, e Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// busRecorder subscribes to every game event type
type busRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func newBusRecorder() (*event.MemoryBus, *busRecorder) {
	bus := event.NewMemoryBus()
	rec := &busRecorder{}
	for _, typ := range []event.Type{
		event.GameStarted, event.GameAborted, event.MiningCompleted,
		event.MinerLevelUp, event.FightResolved, event.ShopPurchase,
	} {
		bus.Subscribe(typ, func(_ context.Context, e event.Event) error {
			rec.mu.Lock()
			rec.events = append(rec.events, e)
			rec.mu.Unlock()
			return nil
		})
	}
	return bus, rec
}

func (b *busRecorder) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

func (b *busRecorder) payload(typ event.Type) interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.events {
		if e.Type == typ {
			return e.Payload
		}
	}
	return nil
}

func instantOptions() Options {
	return Options{FleeEveryRound: true}
}

type harness struct {
	session *Session
	screen  *recorder
	bus     *busRecorder
}

// newHarness returns a session already past the welcome screen
func newHarness(t *testing.T, rng utils.Roller, opts Options) *harness {
	t.Helper()
	bus, busRec := newBusRecorder()
	screen := &recorder{}
	s := NewSession("session-1", domain.PlatformConsole, catalog.Default(), screen, bus, rng, opts)

	require.NoError(t, s.StartGame(context.Background()))
	require.NoError(t, s.Dispatch(context.Background(), ActionStart))
	return &harness{session: s, screen: screen, bus: busRec}
}

// scriptedChoices answers AwaitChoice from a fixed list. Requests that
// only offer cancel wait for the context instead of consuming a choice.
type scriptedChoices struct {
	mu      sync.Mutex
	choices []Action
	offered [][]Action
}

func (c *scriptedChoices) AwaitChoice(ctx context.Context, actions []Action) (Action, error) {
	if len(actions) == 1 && actions[0] == ActionCancel {
		<-ctx.Done()
		return "", ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.offered = append(c.offered, actions)
	if len(c.choices) == 0 {
		return "", context.Canceled
	}
	a := c.choices[0]
	c.choices = c.choices[1:]
	return a, nil
}

var anyCtx = mock.Anything

func eventOfKind(kind EventKind) interface{} {
	return mock.MatchedBy(func(e Event) bool { return e.Kind == kind })
}
