package bootstrap

import (
	"log/slog"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
	"github.com/osse101/PrintMiner_Go/internal/config"
	"github.com/osse101/PrintMiner_Go/internal/event"
	"github.com/osse101/PrintMiner_Go/internal/game"
)

// Game holds the shared pieces every front end plays on
type Game struct {
	Catalog *catalog.Catalog
	Bus     event.Bus
	Manager *game.Manager
}

// InitializeGame loads the catalog, wires the event system and creates the
// session manager.
func InitializeGame(cfg *config.Config) (*Game, error) {
	cat, err := LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	bus := InitializeEventSystem()
	managerCfg := cfg.ManagerConfig()
	manager := game.NewManager(cat, bus, managerCfg)

	opts := cfg.GameOptions()
	slog.Info(LogMsgSessionManagerReady,
		"size", managerCfg.Size,
		"ttl", managerCfg.TTL,
		"step_delay", opts.StepDelay,
		"turn_delay", opts.TurnDelay,
		"flee_every_round", opts.FleeEveryRound)

	return &Game{Catalog: cat, Bus: bus, Manager: manager}, nil
}
