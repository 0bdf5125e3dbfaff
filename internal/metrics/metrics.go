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
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsFinished,
			Help: HelpTextSessionsFinished,
		},
		[]string{LabelResult},
	)

	DaysSurvived = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDaysSurvived,
			Help:    HelpTextDaysSurvived,
			Buckets: DaysSurvivedBuckets,
		},
	)

	DaysSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysSettled,
			Help: HelpTextDaysSettled,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	RandomEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRandomEvents,
			Help: HelpTextRandomEvents,
		},
		[]string{LabelKind},
	)

	TasksFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTasksFinished,
			Help: HelpTextTasksFinished,
		},
		[]string{LabelOutcome},
	)
)

// RegisterActiveSessions exposes the live session count as a gauge that is
// read on every scrape. reg is usually prometheus.DefaultRegisterer.
func RegisterActiveSessions(reg prometheus.Registerer, count func() int) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
		func() float64 { return float64(count()) },
	))
}
