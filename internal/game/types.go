package game

import (
	"context"

	"github.com/osse101/PrintMiner_Go/internal/combat"
	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/player"
)

// Action is a player choice
type Action string

// Player actions
const (
	ActionStart     Action = "start"
	ActionMine      Action = "mine"
	ActionShop      Action = "shop"
	ActionStats     Action = "stats"
	ActionAbort     Action = "abort"
	ActionBuyHeal   Action = "buy-heal"
	ActionBuyWeapon Action = "buy-weapon"
	ActionBuyTool   Action = "buy-tool"
	ActionFight     Action = "fight"
	ActionFlee      Action = "flee"
	ActionCancel    Action = "cancel"
	ActionBack      Action = "back"
)

// AllActions lists every action in display order
var AllActions = []Action{
	ActionStart, ActionMine, ActionShop, ActionStats, ActionAbort,
	ActionBuyHeal, ActionBuyWeapon, ActionBuyTool,
	ActionFight, ActionFlee, ActionCancel, ActionBack,
}

// ParseAction maps a string to a known action
func ParseAction(s string) (Action, bool) {
	for _, a := range AllActions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// State is a session state
type State string

// Session states
const (
	StateWelcome   State = "welcome"
	StateIdle      State = "idle"
	StateMining    State = "mining"
	StateEncounter State = "encounter"
	StateFighting  State = "fighting"
	StateRound     State = "round"
	StateShop      State = "shop"
	StateGameOver  State = "game_over"
	StateClosed    State = "closed"
)

var stateActions = map[State][]Action{
	StateWelcome:   {ActionStart, ActionCancel},
	StateIdle:      {ActionMine, ActionShop, ActionStats, ActionAbort},
	StateMining:    {ActionCancel},
	StateEncounter: {ActionFight, ActionFlee},
	StateRound:     {ActionFight, ActionFlee},
	StateShop:      {ActionBuyHeal, ActionBuyWeapon, ActionBuyTool, ActionBack},
	StateGameOver:  {ActionStats, ActionAbort},
}

// Actions returns the choices a player has in the state.
// Busy and closed states offer none.
func (s State) Actions() []Action {
	return append([]Action(nil), stateActions[s]...)
}

// Allows reports whether action is valid in the state
func (s State) Allows(a Action) bool {
	for _, allowed := range stateActions[s] {
		if allowed == a {
			return true
		}
	}
	return false
}

// EventKind names something the player should be shown
type EventKind string

// Event kinds
const (
	EventWelcome         EventKind = "welcome"
	EventMenu            EventKind = "menu"
	EventClosed          EventKind = "closed"
	EventMiningStarted   EventKind = "mining_started"
	EventMiningCancelled EventKind = "mining_cancelled"
	EventMiningComplete  EventKind = "mining_complete"
	EventMiningContinue  EventKind = "mining_continue"
	EventLevelUp         EventKind = "level_up"
	EventFightEncounter  EventKind = "fight_encounter"
	EventFightRound      EventKind = "fight_round"
	EventEnemyAttack     EventKind = "enemy_attack"
	EventPlayerAttack    EventKind = "player_attack"
	EventFightWon        EventKind = "fight_won"
	EventFightLost       EventKind = "fight_lost"
	EventFleeSuccess     EventKind = "flee_success"
	EventFleeRobbed      EventKind = "flee_robbed"
	EventShop            EventKind = "shop"
	EventPurchase        EventKind = "purchase"
	EventUnavailable     EventKind = "unavailable"
	EventStats           EventKind = "stats"
	EventAbort           EventKind = "abort"
)

// MiningInfo describes the current mineral. Size is the rolled size, not the template's.
type MiningInfo struct {
	Mineral     domain.Mineral
	Size        int
	Remaining   int
	GoldPerFind int
	GoldFound   int
	Steps       int
	Cancelled   bool
}

// FightInfo describes the current enemy and the last attack or flee
type FightInfo struct {
	Enemy          domain.Enemy
	EnemyHealth    int
	EnemyMaxHealth int
	Turn           combat.Turn
	Flee           combat.FleeResult
	Outcome        combat.Outcome
}

// ShopInfo is what the shop currently offers
type ShopInfo struct {
	HealPrice int
	Tool      domain.Tool
	Weapon    domain.Weapon
}

// PurchaseInfo is the result of a purchase attempt
type PurchaseInfo struct {
	Kind    string
	Item    string
	Price   int
	Success bool
}

// Event is one thing to present. Actions lists the choices valid after it;
// it is empty while the session is still working.
type Event struct {
	Kind     EventKind
	State    State
	Actions  []Action
	Player   player.Snapshot
	Mining   MiningInfo
	Fight    FightInfo
	Shop     ShopInfo
	Purchase PurchaseInfo
}

// Progress is one mining step shown before it is committed
type Progress struct {
	Player   player.Snapshot
	Mining   MiningInfo
	Step     int
	Steps    int
	Fraction float64
}

// Presenter shows session output to the player. A returned error aborts
// the running operation.
type Presenter interface {
	PresentProgress(ctx context.Context, p Progress) error
	PresentEvent(ctx context.Context, e Event) error
}

// ChoiceSource blocks until the player picks one of the offered actions
type ChoiceSource interface {
	AwaitChoice(ctx context.Context, actions []Action) (Action, error)
}
