package logger

// Log format values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults used when no config is given
const (
	DefaultServiceName = "print-miner"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// Log attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeySessionID   = "session_id"
	AttrKeyPlatform    = "platform"
)
