// Package console plays a Print Miner session in a terminal.
package console

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/game"
	"github.com/osse101/PrintMiner_Go/internal/logger"
)

// ErrQuit is returned by AwaitChoice once the player asks to leave
var ErrQuit = errors.New("console: quit")

// Layout
const (
	marginX     = 2
	titleRow    = 1
	firstLine   = 3
	eventBuffer = 16
)

// Console draws game output on a tcell screen and reads choices from its
// keyboard. It implements both game.Presenter and game.ChoiceSource.
type Console struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	mu       sync.Mutex
	current  frame
	quitting bool
	// key pressed while only cancel was offered, replayed on the next call
	pending game.Action

	closeOnce sync.Once
}

// New initializes screen and starts reading its events
func New(screen tcell.Screen) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	c := &Console{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go c.poll()
	return c, nil
}

func (c *Console) poll() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

// Close restores the terminal
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.screen.Fini()
	})
}

// PresentProgress draws a mining step
func (c *Console) PresentProgress(_ context.Context, p game.Progress) error {
	c.show(progressFrame(p))
	return nil
}

// PresentEvent draws an event and the keys for its actions
func (c *Console) PresentEvent(_ context.Context, e game.Event) error {
	c.show(eventFrame(e))
	return nil
}

// AwaitChoice blocks until a key maps to one of actions. Quitting while
// cancel is offered cancels first; the next call then returns ErrQuit.
// While only cancel is offered, the last other bound key is kept and
// answers the next call if that call offers it.
func (c *Console) AwaitChoice(ctx context.Context, actions []game.Action) (game.Action, error) {
	if a, ok := c.takePending(actions); ok {
		return a, nil
	}
	cancelOnly := len(actions) == 1 && actions[0] == game.ActionCancel
	for {
		if c.isQuitting() {
			return "", ErrQuit
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-c.done:
			return "", ErrQuit
		case ev := <-c.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a, res := resolveKey(ev, actions)
				switch res {
				case keyAction:
					return a, nil
				case keyIgnored:
					if cancelOnly {
						if bound, ok := boundAction(ev); ok {
							c.setPending(bound)
						}
					}
				case keyQuit:
					c.setQuitting()
					if offers(actions, game.ActionCancel) {
						return game.ActionCancel, nil
					}
					return "", ErrQuit
				}
			case *tcell.EventResize:
				c.screen.Sync()
				c.redraw()
			}
		}
	}
}

func offers(actions []game.Action, a game.Action) bool {
	for _, o := range actions {
		if o == a {
			return true
		}
	}
	return false
}

func (c *Console) setPending(a game.Action) {
	c.mu.Lock()
	c.pending = a
	c.mu.Unlock()
}

// takePending clears the buffered key and reports it if actions offers it
func (c *Console) takePending(actions []game.Action) (game.Action, bool) {
	c.mu.Lock()
	a := c.pending
	c.pending = ""
	c.mu.Unlock()
	if a == "" || !offers(actions, a) {
		return "", false
	}
	return a, true
}

func (c *Console) isQuitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quitting
}

func (c *Console) setQuitting() {
	c.mu.Lock()
	c.quitting = true
	c.mu.Unlock()
}

func (c *Console) show(fr frame) {
	c.mu.Lock()
	c.current = fr
	c.mu.Unlock()
	c.redraw()
}

func (c *Console) redraw() {
	c.mu.Lock()
	fr := c.current
	c.mu.Unlock()

	c.screen.Clear()
	_, height := c.screen.Size()

	c.drawText(marginX, titleRow, fr.title, fr.style.Bold(true))
	for i, line := range fr.lines {
		c.drawText(marginX, firstLine+i, line, tcell.StyleDefault)
	}
	if height > 0 {
		c.drawText(0, height-1, hints(fr.actions), StyleHint)
	}
	c.screen.Show()
}

func (c *Console) drawText(x, y int, text string, style tcell.Style) {
	width, _ := c.screen.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run opens a game for key on manager and plays it on the console until
// the player quits or the session closes.
func (c *Console) Run(ctx context.Context, manager *game.Manager, key string) error {
	s, err := manager.StartGame(ctx, key, domain.PlatformConsole, c)
	if err != nil {
		return err
	}
	defer manager.Remove(key)

	logger.FromContext(ctx).Info(LogMsgConsoleStarted, logger.AttrKeySessionID, s.ID)
	err = s.Play(ctx, c)
	logger.FromContext(ctx).Info(LogMsgConsoleQuit, logger.AttrKeySessionID, s.ID, "state", s.State())
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
