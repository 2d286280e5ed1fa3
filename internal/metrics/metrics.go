package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	GamesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesStarted,
			Help: HelpTextGamesStarted,
		},
		[]string{LabelPlatform},
	)

	GamesAborted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesAborted,
			Help: HelpTextGamesAborted,
		},
		[]string{LabelPlatform},
	)

	MiningSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningSessions,
			Help: HelpTextMiningSessions,
		},
		[]string{LabelMineral, LabelResult},
	)

	GoldMined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldMined,
			Help: HelpTextGoldMined,
		},
	)

	MiningSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameMiningSteps,
			Help:    HelpTextMiningSteps,
			Buckets: MiningStepBuckets,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	FightsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFightsResolved,
			Help: HelpTextFightsResolved,
		},
		[]string{LabelEnemy, LabelOutcome},
	)

	CreditsStolen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsStolen,
			Help: HelpTextCreditsStolen,
		},
	)

	ShopPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopPurchases,
			Help: HelpTextShopPurchases,
		},
		[]string{LabelKind, LabelResult},
	)

	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)
