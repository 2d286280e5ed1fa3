package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "mining.completed")
const (
	// EventTypeGameStarted is published when a player opens a new game session
	EventTypeGameStarted = "game.started"

	// EventTypeGameAborted is published when a session is reset by the player
	EventTypeGameAborted = "game.aborted"

	// EventTypeMiningCompleted is published when a mining session ends, cancelled or not
	EventTypeMiningCompleted = "mining.completed"

	// EventTypeLevelUp is published when a miner reaches a new level
	EventTypeLevelUp = "miner.level_up"

	// EventTypeFightResolved is published when a fight reaches a terminal outcome
	EventTypeFightResolved = "fight.resolved"

	// EventTypeShopPurchase is published for every purchase attempt, successful or not
	EventTypeShopPurchase = "shop.purchase"
)
