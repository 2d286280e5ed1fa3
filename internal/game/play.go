package game

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/PrintMiner_Go/internal/domain"
)

// Play drives the session from src until the player closes it or an
// operation fails. While mining, src is asked concurrently for a cancel.
func (s *Session) Play(ctx context.Context, src ChoiceSource) error {
	for {
		actions := s.Actions()
		if len(actions) == 0 {
			return nil
		}

		a, err := src.AwaitChoice(ctx, actions)
		if err != nil {
			return err
		}

		if a == ActionMine {
			err = s.playMining(ctx, src)
		} else {
			err = s.Dispatch(ctx, a)
		}
		if err != nil && !errors.Is(err, domain.ErrActionUnavailable) {
			return err
		}
	}
}

func (s *Session) playMining(ctx context.Context, src ChoiceSource) error {
	unlock, err := s.begin(ActionMine)
	if err != nil {
		return err
	}
	defer unlock()

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()

	var wg sync.WaitGroup
	err = s.mine(s.logContext(ctx), func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := src.AwaitChoice(watchCtx, []Action{ActionCancel})
			if err == nil && a == ActionCancel {
				_ = s.CancelMining()
			}
		}()
	})

	stop()
	wg.Wait()
	return err
}
