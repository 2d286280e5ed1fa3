package bootstrap

import (
	"log/slog"

	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and subscribes the metrics
// collector to every game event.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
