package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PrintMiner_Go/internal/domain"
	"github.com/osse101/PrintMiner_Go/internal/utils"
)

// Load reads a catalog from a JSON file and validates it
func Load(path string) (*Catalog, error) {
	var c Catalog
	if err := utils.LoadJSON(path, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks field constraints and that every entry has a distinct identifier
func (c *Catalog) Validate() error {
	if c.Version != CatalogVersion {
		return fmt.Errorf(ErrMsgVersionMismatchFmt, domain.ErrInvalidCatalog, c.Version, CatalogVersion)
	}

	switch {
	case len(c.Minerals) == 0:
		return fmt.Errorf(ErrMsgEmptySectionFmt, domain.ErrEmptyCatalog, "minerals")
	case len(c.Enemies) == 0:
		return fmt.Errorf(ErrMsgEmptySectionFmt, domain.ErrEmptyCatalog, "enemies")
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(ErrMsgValidationFailedFmt, domain.ErrInvalidCatalog, err)
	}

	if len(c.Tools) < 2 {
		return fmt.Errorf(ErrMsgNoUpgradesFmt, domain.ErrInvalidCatalog, "tools")
	}
	if len(c.Weapons) < 2 {
		return fmt.Errorf(ErrMsgNoUpgradesFmt, domain.ErrInvalidCatalog, "weapons")
	}

	seen := make(map[string]bool)
	for _, t := range c.Tools {
		if seen["tool:"+t.Name] {
			return fmt.Errorf(ErrMsgDuplicateEntryFmt, domain.ErrInvalidCatalog, "tool", t.Name)
		}
		seen["tool:"+t.Name] = true
	}
	for _, w := range c.Weapons {
		if seen["weapon:"+w.Name] {
			return fmt.Errorf(ErrMsgDuplicateEntryFmt, domain.ErrInvalidCatalog, "weapon", w.Name)
		}
		seen["weapon:"+w.Name] = true
	}
	for _, m := range c.Minerals {
		if seen["mineral:"+m.Key] {
			return fmt.Errorf(ErrMsgDuplicateEntryFmt, domain.ErrInvalidCatalog, "mineral", m.Key)
		}
		seen["mineral:"+m.Key] = true
	}
	for _, e := range c.Enemies {
		if seen["enemy:"+e.Key] {
			return fmt.Errorf(ErrMsgDuplicateEntryFmt, domain.ErrInvalidCatalog, "enemy", e.Key)
		}
		seen["enemy:"+e.Key] = true
	}

	return nil
}
