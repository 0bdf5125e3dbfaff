package metrics

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
	MetricNameSessionsActive   = "whinetime_sessions_active"
	MetricNameSessionsCreated  = "whinetime_sessions_created_total"
	MetricNameSessionsFinished = "whinetime_sessions_finished_total"
	MetricNameDaysSurvived     = "whinetime_days_survived"
	MetricNameDaysSettled      = "whinetime_days_settled_total"
	MetricNameLevelUps         = "whinetime_level_ups_total"
	MetricNameRandomEvents     = "whinetime_random_events_total"
	MetricNameTasksFinished    = "whinetime_tasks_finished_total"
)

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
	HelpTextSessionsActive   = "Sessions currently held in memory"
	HelpTextSessionsCreated  = "Total number of sessions created"
	HelpTextSessionsFinished = "Total number of sessions finished, by result"
	HelpTextDaysSurvived     = "Days survived by finished sessions"
	HelpTextDaysSettled      = "Total number of game days settled across sessions"
	HelpTextLevelUps         = "Total number of level ups"
	HelpTextRandomEvents     = "Total number of daily random events, by kind"
	HelpTextTasksFinished    = "Total number of caregiver tasks finished, by outcome"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelResult  = "result"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Label values
const (
	TaskOutcomeCompleted = "completed"
	TaskOutcomeFailed    = "failed"
	PathUnmatched        = "unmatched"
)

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DaysSurvivedBuckets covers a 30 day game
var DaysSurvivedBuckets = []float64{0, 1, 2, 3, 5, 7, 10, 14, 21, 30}

// Log messages
const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgEventPayloadUnknown = "Event payload has unexpected shape"
)
