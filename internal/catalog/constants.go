package catalog

// CatalogVersion is the schema version of the catalog file format
const CatalogVersion = "1.0"

// Error message formats
const (
	ErrMsgLoadCatalogFailed   = "failed to load catalog: %w"
	ErrMsgVersionMismatchFmt  = "%w: version %q, expected %q"
	ErrMsgValidationFailedFmt = "%w: %v"
	ErrMsgDuplicateEntryFmt   = "%w: duplicate %s %q"
	ErrMsgNoUpgradesFmt       = "%w: %s needs a default tier and at least one upgrade"
	ErrMsgEmptySectionFmt     = "%w: no %s"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
)
