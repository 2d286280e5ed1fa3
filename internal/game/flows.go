package game

import (
	"context"
	"fmt"

	"github.com/osse101/PrintMiner_Go/internal/combat"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/logger"
	"github.com/osse101/PrintMiner_Go/internal/mining"
	"github.com/osse101/PrintMiner_Go/internal/shop"
)

// mine runs a mining session. started, when set, is called once the
// session can be cancelled.
func (s *Session) mine(ctx context.Context, started func()) (err error) {
	ms, err := mining.NewSession(s.catalog, s.Player, s.rng)
	if err != nil {
		return err
	}

	s.mining.Store(ms)
	s.setState(StateMining)
	defer func() {
		s.mining.Store(nil)
		if err != nil && s.State() == StateMining {
			s.setState(StateIdle)
		}
	}()
	if started != nil {
		started()
	}

	info := func() MiningInfo {
		return MiningInfo{
			Mineral:     ms.Mineral,
			Size:        ms.Size,
			Remaining:   ms.Remaining(),
			GoldPerFind: ms.GoldPerFind,
			GoldFound:   s.Player.GoldFound,
			Steps:       ms.Steps(),
			Cancelled:   ms.Cancelled(),
		}
	}
	busy := func(e *Event) {
		e.Actions = nil
		e.Mining = info()
	}

	if err = s.emit(ctx, EventMiningStarted, func(e *Event) { e.Mining = info() }); err != nil {
		return err
	}
	if err = pause(ctx, s.opts.StepDelay); err != nil {
		return err
	}

	for {
		st, ok := ms.Next(s.Player)
		if !ok {
			break
		}

		progress := Progress{
			Player:   s.refreshSnapshot(),
			Mining:   info(),
			Step:     st.Index + 1,
			Steps:    ms.Steps(),
			Fraction: st.Fraction,
		}
		progress.Mining.Remaining = st.Remaining
		if err = s.presenter.PresentProgress(ctx, progress); err != nil {
			return fmt.Errorf("present progress: %w", err)
		}

		ms.Commit(s.Player, st)
		if err = pause(ctx, s.opts.StepDelay); err != nil {
			return err
		}
	}

	res := ms.Finish(s.Player)
	s.publish(ctx, event.NewMiningCompletedEvent(domain.MiningCompletedPayload{
		SessionID:  s.ID,
		Mineral:    ms.Mineral.Key,
		Steps:      res.Steps,
		GoldFound:  res.GoldFound,
		Experience: res.Experience,
		Cancelled:  res.Cancelled,
		Encounter:  res.Encounter,
	}))
	logger.FromContext(ctx).Debug(LogMsgMiningFinished,
		"mineral", ms.Mineral.Key,
		"steps", res.Steps,
		"gold_found", res.GoldFound,
		"cancelled", res.Cancelled,
		"encounter", res.Encounter)

	if res.Cancelled {
		if err = s.emit(ctx, EventMiningCancelled, busy); err != nil {
			return err
		}
	}

	if res.LeveledUp {
		s.publish(ctx, event.NewLevelUpEvent(s.ID, s.Player.Level, s.Player.MaxHealth))
		if err = s.emit(ctx, EventLevelUp, busy); err != nil {
			return err
		}
		if err = pause(ctx, s.opts.TurnDelay); err != nil {
			return err
		}
	}

	if res.Encounter {
		if err = s.emit(ctx, EventMiningComplete, busy); err != nil {
			return err
		}
		if err = pause(ctx, s.opts.StepDelay); err != nil {
			return err
		}
		f := combat.NewFight(res.Enemy, s.rng)
		s.fight = f
		s.setState(StateEncounter)
		return s.emit(ctx, EventFightEncounter, fightDetails(f))
	}

	s.setState(StateIdle)
	return s.emit(ctx, EventMiningContinue, func(e *Event) { e.Mining = info() })
}

func fightDetails(f *combat.Fight) func(*Event) {
	return func(e *Event) {
		e.Fight = FightInfo{
			Enemy:          f.Enemy,
			EnemyHealth:    f.EnemyHealth,
			EnemyMaxHealth: f.EnemyMaxHealth,
			Outcome:        f.Outcome(),
		}
	}
}

// fightRound plays the current fight up to the next round boundary, or to
// the end when fleeing is only offered at the encounter.
func (s *Session) fightRound(ctx context.Context) (combat.Outcome, error) {
	f := s.fight
	if f == nil {
		return combat.OutcomeNone, fmt.Errorf("%w: %s", domain.ErrActionUnavailable, ErrMsgNoFight)
	}

	s.setState(StateFighting)
	for {
		if err := s.playTurn(ctx, f); err != nil {
			s.setState(StateRound)
			return combat.OutcomeNone, err
		}
		if f.Over() {
			return s.resolveFight(ctx, f)
		}
		if s.opts.FleeEveryRound && f.AtRoundBoundary() {
			s.setState(StateRound)
			return combat.OutcomeNone, s.emit(ctx, EventFightRound, fightDetails(f))
		}
	}
}

// playTurn presents one attack, then applies it
func (s *Session) playTurn(ctx context.Context, f *combat.Fight) error {
	if err := pause(ctx, s.opts.TurnDelay); err != nil {
		return err
	}

	t, ok := f.Next(s.Player)
	if !ok {
		return nil
	}

	kind := EventPlayerAttack
	if t.Attacker == combat.AttackerEnemy {
		kind = EventEnemyAttack
	}
	err := s.emit(ctx, kind, func(e *Event) {
		fightDetails(f)(e)
		e.Fight.Turn = t
		e.Fight.EnemyHealth = t.EnemyHealth
		e.Player.Health = t.PlayerHealth
	})
	if err != nil {
		return err
	}

	f.Apply(s.Player, t)
	return nil
}

func (s *Session) resolveFight(ctx context.Context, f *combat.Fight) (combat.Outcome, error) {
	s.fight = nil
	outcome := f.Outcome()
	s.recordFight(ctx, f)

	kind, next := EventFightWon, StateIdle
	switch outcome {
	case combat.OutcomeLost:
		kind, next = EventFightLost, StateGameOver
	case combat.OutcomeStalemate:
		kind = EventFleeSuccess
	}
	s.setState(next)
	return outcome, s.emit(ctx, kind, fightDetails(f))
}

func (s *Session) flee(ctx context.Context) (combat.FleeResult, error) {
	f := s.fight
	if f == nil {
		return combat.FleeResult{}, fmt.Errorf("%w: %s", domain.ErrActionUnavailable, ErrMsgNoFight)
	}

	res := f.Flee(s.Player)
	s.fight = nil
	s.recordFight(ctx, f)

	kind := EventFleeSuccess
	if res.Outcome == combat.OutcomeFledRobbed {
		kind = EventFleeRobbed
	}
	s.setState(StateIdle)
	return res, s.emit(ctx, kind, func(e *Event) {
		fightDetails(f)(e)
		e.Fight.Flee = res
	})
}

func (s *Session) recordFight(ctx context.Context, f *combat.Fight) {
	s.publish(ctx, event.NewFightResolvedEvent(domain.FightResolvedPayload{
		SessionID:   s.ID,
		Enemy:       f.Enemy.Key,
		Outcome:     string(f.Outcome()),
		Turns:       f.Turns,
		CreditsLost: f.CreditsLost,
	}))
	logger.FromContext(ctx).Debug(LogMsgFightResolved,
		"enemy", f.Enemy.Key,
		"outcome", f.Outcome(),
		"turns", f.Turns)
}

func (s *Session) purchase(ctx context.Context, kind string) (bool, error) {
	info := PurchaseInfo{Kind: kind}
	switch kind {
	case shop.KindHeal:
		info.Price = shop.HealPrice(s.Player)
	case shop.KindTool:
		info.Item, info.Price = s.Shop.CurrentTool.Name, s.Shop.CurrentTool.Price
	case shop.KindWeapon:
		info.Item, info.Price = s.Shop.CurrentWeapon.Name, s.Shop.CurrentWeapon.Price
	}

	ok, err := s.Shop.Purchase(kind, s.Player)
	if err != nil {
		return false, err
	}
	info.Success = ok

	s.publish(ctx, event.NewShopPurchaseEvent(domain.ShopPurchasePayload{
		SessionID: s.ID,
		Kind:      kind,
		Item:      info.Item,
		Price:     info.Price,
		Success:   ok,
	}))

	evtKind := EventPurchase
	if !ok {
		evtKind = EventUnavailable
	}
	return ok, s.emit(ctx, evtKind, func(e *Event) { e.Purchase = info })
}

// abort discards the miner's progress and restocks the shop
func (s *Session) abort(ctx context.Context) error {
	level, credits := s.Player.Level, s.Player.GoldCredits

	s.Player.Reset()
	s.Shop.Reset()
	s.fight = nil

	s.publish(ctx, event.NewGameAbortedEvent(s.ID, s.Platform, level, credits))
	logger.FromContext(ctx).Info(LogMsgGameAborted, "level", level, "credits", credits)

	s.setState(StateWelcome)
	return s.emit(ctx, EventAbort, nil)
}
