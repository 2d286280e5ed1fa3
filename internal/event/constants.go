package event

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeySessionID = "session_id"
	MetadataKeyPlatform  = "platform"
)

// Error formats
const (
	ErrMsgHandlersFailedFmt = "%d handler(s) failed for %s: %v"
	ErrMsgDecodePayloadFmt  = "decode %s payload: %w"
)
