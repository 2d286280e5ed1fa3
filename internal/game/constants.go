package game

import "time"

// Default pacing and store sizes
const (
	DefaultStepDelay  = 500 * time.Millisecond
	DefaultTurnDelay  = time.Second
	DefaultCacheSize  = 1000
	DefaultSessionTTL = 30 * time.Minute
)

// Log message constants
const (
	LogMsgSessionStarted  = "game session started"
	LogMsgSessionEvicted  = "game session evicted"
	LogMsgSessionReplaced = "game session replaced"
	LogMsgMiningFinished  = "mining finished"
	LogMsgFightResolved   = "fight resolved"
	LogMsgGameAborted     = "game aborted"
	LogMsgPublishFailed   = "failed to publish game event"
)

// Error message constants
const (
	ErrMsgActionInStateFmt = "%s while %s"
	ErrMsgNoFight          = "no enemy to fight"
)
