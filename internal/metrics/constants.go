package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameGamesStarted    = "printminer_games_started_total"
	MetricNameGamesAborted    = "printminer_games_aborted_total"
	MetricNameMiningSessions  = "printminer_mining_sessions_total"
	MetricNameGoldMined       = "printminer_gold_mined_total"
	MetricNameMiningSteps     = "printminer_mining_steps"
	MetricNameLevelUps        = "printminer_level_ups_total"
	MetricNameFightsResolved  = "printminer_fights_resolved_total"
	MetricNameCreditsStolen   = "printminer_credits_stolen_total"
	MetricNameShopPurchases   = "printminer_shop_purchases_total"
	MetricNameDiscordCommands = "printminer_discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextGamesStarted    = "Total number of game sessions started"
	HelpTextGamesAborted    = "Total number of games aborted by the player"
	HelpTextMiningSessions  = "Total number of mining sessions by mineral and result"
	HelpTextGoldMined       = "Total gold credits found while mining"
	HelpTextMiningSteps     = "Number of steps per mining session"
	HelpTextLevelUps        = "Total number of miner level ups"
	HelpTextFightsResolved  = "Total number of fights by enemy and outcome"
	HelpTextCreditsStolen   = "Total credits stolen from fleeing miners"
	HelpTextShopPurchases   = "Total number of shop purchase attempts by kind and result"
	HelpTextDiscordCommands = "Total number of Discord interactions handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelPlatform = "platform"
	LabelMineral  = "mineral"
	LabelResult   = "result"
	LabelEnemy    = "enemy"
	LabelOutcome  = "outcome"
	LabelKind     = "kind"
	LabelCommand  = "command"
)

// Result label values
const (
	ResultCompleted = "completed"
	ResultCancelled = "cancelled"
	ResultSuccess   = "success"
	ResultRefused   = "refused"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// MiningStepBuckets covers step counts from the smallest rock with the best
// pick up to the largest albamorium with the base pick.
var MiningStepBuckets = []float64{1, 2, 4, 8, 12, 16, 24, 35}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has an unexpected shape"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
