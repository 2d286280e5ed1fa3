package combat

// FleeRobChance is the probability that a fleeing miner gets robbed
const FleeRobChance = 0.30

// TurnsPerRound is the number of attacks in a full round, one per combatant
const TurnsPerRound = 2

// Outcome is the terminal result of a fight
type Outcome string

// Fight outcomes
const (
	OutcomeNone       Outcome = ""
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
	OutcomeFledSafe   Outcome = "fled_safe"
	OutcomeFledRobbed Outcome = "fled_robbed"
	// OutcomeStalemate ends a fight in which neither side can deal damage
	OutcomeStalemate Outcome = "stalemate"
)

// State is a fight state
type State string

// Fight states
const (
	StateEncounter State = "encounter"
	StateFighting  State = "fighting"
	StateFleeing   State = "fleeing"
	StateOver      State = "over"
)

// Attacker identifies whose turn it is
type Attacker string

// Attackers
const (
	AttackerEnemy  Attacker = "enemy"
	AttackerPlayer Attacker = "player"
)
