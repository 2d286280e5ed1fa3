// Package mining simulates depleting one mineral in discrete steps.
//
// A Session is pure logic: it owns its randomness and never sleeps or
// presents anything. Callers drive it step by step with Next and Commit so
// that a step can be shown before it changes the miner.
package mining

import (
	"fmt"
	"sync/atomic"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// Session is one mining run against a rolled mineral
type Session struct {
	Mineral     domain.Mineral
	Size        int
	GoldPerFind int
	Experience  int
	Power       int

	catalog   *catalog.Catalog
	rng       utils.Roller
	step      int
	steps     int
	finds     int
	cancelled atomic.Bool
}

// Step is one planned mining step. Remaining is the chunk count shown
// before the step removes its chunks.
type Step struct {
	Index      int
	Remaining  int
	Total      int
	Fraction   float64
	FoundGold  bool
	Gold       int
	Experience int
}

// Result summarises a finished or cancelled session
type Result struct {
	Steps      int
	Finds      int
	GoldFound  int
	Cancelled  bool
	LeveledUp  bool
	Encounter  bool
	Enemy      domain.Enemy
	Experience int
}

// NewSession draws a mineral and rolls its effective size, gold and experience.
// It returns domain.ErrInvalidMiningPower if the miner's tool cannot remove chunks.
// The miner's found-gold counter and abort flag are cleared.
func NewSession(cat *catalog.Catalog, p *player.Player, rng utils.Roller) (*Session, error) {
	power := p.Tool.MiningPower
	if power <= 0 {
		return nil, fmt.Errorf("%w: "+ErrMsgZeroPowerFmt, domain.ErrInvalidMiningPower, p.Tool.Name, power)
	}

	mineral := cat.RandomMineral(rng)
	s := &Session{
		Mineral: mineral,
		Power:   power,
		catalog: cat,
		rng:     rng,
	}
	s.Size = utils.RollLowerBound(rng, mineral.Size)
	s.GoldPerFind = utils.RollLowerBound(rng, mineral.Gold) * power
	s.Experience = utils.RollLowerBound(rng, mineral.Experience)
	s.steps = StepCount(s.Size, power)

	p.GoldFound = 0
	p.Aborted = false
	return s, nil
}

// StepCount returns ceil(size/power), the number of steps needed to clear a mineral
func StepCount(size, power int) int {
	if size <= 0 || power <= 0 {
		return 0
	}
	return (size + power - 1) / power
}

// Steps returns the total number of steps of the session
func (s *Session) Steps() int {
	return s.steps
}

// StepsTaken returns the number of committed steps
func (s *Session) StepsTaken() int {
	return s.step
}

// Remaining returns the chunks left after the committed steps
func (s *Session) Remaining() int {
	return max(0, s.Size-s.step*s.Power)
}

// Cancel requests the session to stop at the top of the next step.
// It is safe to call from any goroutine.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called
func (s *Session) Cancelled() bool {
	return s.cancelled.Load()
}

// Next plans the next step. It returns false once every step ran or the
// session was cancelled; a cancellation marks the miner as aborted.
func (s *Session) Next(p *player.Player) (Step, bool) {
	if s.cancelled.Load() {
		p.Aborted = true
		return Step{}, false
	}
	if s.step >= s.steps {
		return Step{}, false
	}

	remaining := s.Size - s.step*s.Power
	st := Step{
		Index:      s.step,
		Remaining:  remaining,
		Total:      s.Size,
		Fraction:   float64(remaining) / float64(s.Size),
		FoundGold:  utils.Chance(s.rng, GoldChance),
		Experience: s.Experience,
	}
	if st.FoundGold {
		st.Gold = s.GoldPerFind
	}
	return st, true
}

// Commit applies a planned step to the miner
func (s *Session) Commit(p *player.Player, st Step) {
	if st.FoundGold {
		p.GainGold(st.Gold)
		s.finds++
	}
	p.GoldFound = s.finds * s.GoldPerFind
	p.GainExperience(st.Experience)
	s.step++
}

// Finish runs the single level-up check and decides the post-mining branch.
// Cancelled sessions never lead to an encounter.
func (s *Session) Finish(p *player.Player) Result {
	res := Result{
		Steps:      s.step,
		Finds:      s.finds,
		GoldFound:  s.finds * s.GoldPerFind,
		Cancelled:  s.cancelled.Load(),
		Experience: s.step * s.Experience,
	}
	if res.Cancelled {
		p.Aborted = true
	}

	res.LeveledUp = p.TryLevelUp()

	if !res.Cancelled && utils.Chance(s.rng, EncounterChance) {
		res.Encounter = true
		res.Enemy = s.catalog.RandomEnemy(s.rng)
	}
	return res
}

// Run drives the whole session without presentation
func (s *Session) Run(p *player.Player) Result {
	for {
		st, ok := s.Next(p)
		if !ok {
			break
		}
		s.Commit(p, st)
	}
	return s.Finish(p)
}
