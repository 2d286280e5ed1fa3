// Package combat resolves turn-based fights between a miner and an enemy.
package combat

import (
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/player"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// Fight is one encounter. The enemy's health is rolled once when the fight
// is created; the template itself is never modified.
type Fight struct {
	Enemy          domain.Enemy
	EnemyMaxHealth int
	EnemyHealth    int
	Turns          int
	CreditsLost    int

	rng         utils.Roller
	state       State
	outcome     Outcome
	next        Attacker
	orderRolled bool
}

// Turn is one planned attack with the health of both sides after it lands
type Turn struct {
	Number       int
	Attacker     Attacker
	Damage       int
	PlayerHealth int
	EnemyHealth  int
}

// FleeResult is the result of a flee attempt. Amount is the rolled theft;
// CreditsLost is what the miner actually had to give up.
type FleeResult struct {
	Outcome     Outcome
	Amount      int
	CreditsLost int
}

// NewFight starts an encounter with the given enemy template
func NewFight(enemy domain.Enemy, rng utils.Roller) *Fight {
	health := utils.RollLowerBound(rng, enemy.MaxHealth)
	return &Fight{
		Enemy:          enemy,
		EnemyMaxHealth: health,
		EnemyHealth:    health,
		rng:            rng,
		state:          StateEncounter,
	}
}

// State returns the current fight state
func (f *Fight) State() State {
	return f.state
}

// Outcome returns the terminal outcome, or OutcomeNone while the fight is open
func (f *Fight) Outcome() Outcome {
	return f.outcome
}

// Over reports whether the fight reached a terminal outcome
func (f *Fight) Over() bool {
	return f.state == StateOver
}

// AtRoundBoundary reports whether both combatants have acted the same number of times
func (f *Fight) AtRoundBoundary() bool {
	return f.Turns%TurnsPerRound == 0
}

// Next plans the next attack without applying it. The turn order is
// rolled 50/50 on the first call. It returns false once the fight is over;
// a fight where neither side can deal damage ends as a stalemate.
func (f *Fight) Next(p *player.Player) (Turn, bool) {
	if f.state == StateOver {
		return Turn{}, false
	}
	if p.Weapon.Damage <= 0 && f.Enemy.Damage <= 0 {
		f.finish(OutcomeStalemate)
		return Turn{}, false
	}
	if !f.orderRolled {
		f.next = AttackerPlayer
		if f.rng.Intn(2) == 0 {
			f.next = AttackerEnemy
		}
		f.orderRolled = true
	}
	f.state = StateFighting

	t := Turn{
		Number:       f.Turns + 1,
		Attacker:     f.next,
		PlayerHealth: p.Health,
		EnemyHealth:  f.EnemyHealth,
	}
	switch f.next {
	case AttackerEnemy:
		t.Damage = utils.RollLowerBound(f.rng, f.Enemy.Damage)
		t.PlayerHealth = max(0, p.Health-t.Damage)
	case AttackerPlayer:
		t.Damage = utils.RollLowerBound(f.rng, p.Weapon.Damage)
		t.EnemyHealth = max(0, f.EnemyHealth-t.Damage)
	}
	return t, true
}

// Apply commits a planned attack and switches turns. A miner reduced to
// zero health is marked dead.
func (f *Fight) Apply(p *player.Player, t Turn) {
	switch t.Attacker {
	case AttackerEnemy:
		p.LoseHealth(t.Damage)
		f.next = AttackerPlayer
	case AttackerPlayer:
		f.EnemyHealth = max(0, f.EnemyHealth-t.Damage)
		f.next = AttackerEnemy
	}
	f.Turns++

	switch {
	case f.EnemyHealth == 0:
		f.finish(OutcomeWon)
	case !p.IsAlive():
		p.Dead = true
		f.finish(OutcomeLost)
	}
}

// Round plays attacks until the next round boundary or the end of the fight
func (f *Fight) Round(p *player.Player) []Turn {
	var turns []Turn
	for {
		t, ok := f.Next(p)
		if !ok {
			break
		}
		f.Apply(p, t)
		turns = append(turns, t)
		if f.AtRoundBoundary() {
			break
		}
	}
	return turns
}

// Resolve plays the fight to the end and returns its outcome
func (f *Fight) Resolve(p *player.Player) Outcome {
	for !f.Over() {
		f.Round(p)
	}
	return f.outcome
}

// Flee ends the fight by running away. The enemy robs the miner with
// probability FleeRobChance of between one and two times its bounty.
func (f *Fight) Flee(p *player.Player) FleeResult {
	if f.state == StateOver {
		return FleeResult{Outcome: f.outcome, CreditsLost: f.CreditsLost}
	}
	f.state = StateFleeing

	res := Flee(f.rng, p, f.Enemy)
	f.CreditsLost = res.CreditsLost
	f.finish(res.Outcome)
	return res
}

// Flee resolves a flee attempt from enemy outside of a tracked fight
func Flee(rng utils.Roller, p *player.Player, enemy domain.Enemy) FleeResult {
	if !utils.Chance(rng, FleeRobChance) {
		return FleeResult{Outcome: OutcomeFledSafe}
	}

	before := p.GoldCredits
	amount := utils.RandomInt(rng, enemy.GoldCredits, 2*enemy.GoldCredits)
	p.LoseCredits(amount)
	return FleeResult{Outcome: OutcomeFledRobbed, Amount: amount, CreditsLost: before - p.GoldCredits}
}

func (f *Fight) finish(o Outcome) {
	f.state = StateOver
	f.outcome = o
}
