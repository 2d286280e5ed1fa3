package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PrintMiner_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	GameStarted     Type = domain.EventTypeGameStarted
	GameAborted     Type = domain.EventTypeGameAborted
	MiningCompleted Type = domain.EventTypeMiningCompleted
	MinerLevelUp    Type = domain.EventTypeLevelUp
	FightResolved   Type = domain.EventTypeFightResolved
	ShopPurchase    Type = domain.EventTypeShopPurchase
)

func sessionMetadata(sessionID string) Metadata {
	return map[string]interface{}{
		MetadataKeySessionID: sessionID,
	}
}

func lifecycleMetadata(sessionID, platform string) Metadata {
	return map[string]interface{}{
		MetadataKeySessionID: sessionID,
		MetadataKeyPlatform:  platform,
	}
}

// NewGameStartedEvent creates a game.started event
func NewGameStartedEvent(sessionID, platform string, level, credits int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameStarted,
		Payload: domain.GameLifecyclePayload{
			SessionID: sessionID,
			Platform:  platform,
			Level:     level,
			Credits:   credits,
			Timestamp: time.Now().Unix(),
		},
		Metadata: lifecycleMetadata(sessionID, platform),
	}
}

// NewGameAbortedEvent creates a game.aborted event carrying the stats that were discarded
func NewGameAbortedEvent(sessionID, platform string, level, credits int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameAborted,
		Payload: domain.GameLifecyclePayload{
			SessionID: sessionID,
			Platform:  platform,
			Level:     level,
			Credits:   credits,
			Timestamp: time.Now().Unix(),
		},
		Metadata: lifecycleMetadata(sessionID, platform),
	}
}

// NewMiningCompletedEvent creates a mining.completed event
func NewMiningCompletedEvent(payload domain.MiningCompletedPayload) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     MiningCompleted,
		Payload:  payload,
		Metadata: sessionMetadata(payload.SessionID),
	}
}

// NewLevelUpEvent creates a miner.level_up event
func NewLevelUpEvent(sessionID string, newLevel, maxHealth int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MinerLevelUp,
		Payload: domain.LevelUpPayload{
			SessionID: sessionID,
			NewLevel:  newLevel,
			MaxHealth: maxHealth,
			Timestamp: time.Now().Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewFightResolvedEvent creates a fight.resolved event
func NewFightResolvedEvent(payload domain.FightResolvedPayload) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     FightResolved,
		Payload:  payload,
		Metadata: sessionMetadata(payload.SessionID),
	}
}

// NewShopPurchaseEvent creates a shop.purchase event
func NewShopPurchaseEvent(payload domain.ShopPurchasePayload) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version:  EventSchemaVersion,
		Type:     ShopPurchase,
		Payload:  payload,
		Metadata: sessionMetadata(payload.SessionID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlersFailedFmt, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
