package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PrintMiner_Go/internal/catalog"
)

// LoadCatalog loads and validates the catalog file at path.
// An empty path selects the built-in catalog.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		slog.Info(LogMsgCatalogDefault)
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"path", path,
		"tools", len(cat.AllTools()),
		"weapons", len(cat.AllWeapons()),
		"minerals", len(cat.AllMinerals()),
		"enemies", len(cat.AllEnemies()))
	return cat, nil
}
