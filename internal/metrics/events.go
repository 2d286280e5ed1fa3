package metrics

import (
	"context"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.GameStarted,
		event.GameAborted,
		event.MiningCompleted,
		event.MinerLevelUp,
		event.FightResolved,
		event.ShopPurchase,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.GameStarted, event.GameAborted:
		p, err := event.Decode[domain.GameLifecyclePayload](evt)
		if err != nil {
			return err
		}
		if evt.Type == event.GameStarted {
			GamesStarted.WithLabelValues(p.Platform).Inc()
		} else {
			GamesAborted.WithLabelValues(p.Platform).Inc()
		}

	case event.MiningCompleted:
		p, err := event.Decode[domain.MiningCompletedPayload](evt)
		if err != nil {
			return err
		}
		result := ResultCompleted
		if p.Cancelled {
			result = ResultCancelled
		}
		MiningSessions.WithLabelValues(p.Mineral, result).Inc()
		GoldMined.Add(float64(p.GoldFound))
		MiningSteps.Observe(float64(p.Steps))

	case event.MinerLevelUp:
		LevelUps.Inc()

	case event.FightResolved:
		p, err := event.Decode[domain.FightResolvedPayload](evt)
		if err != nil {
			return err
		}
		FightsResolved.WithLabelValues(p.Enemy, p.Outcome).Inc()
		CreditsStolen.Add(float64(p.CreditsLost))

	case event.ShopPurchase:
		p, err := event.Decode[domain.ShopPurchasePayload](evt)
		if err != nil {
			return err
		}
		result := ResultRefused
		if p.Success {
			result = ResultSuccess
		}
		ShopPurchases.WithLabelValues(p.Kind, result).Inc()
	}
	return nil
}
