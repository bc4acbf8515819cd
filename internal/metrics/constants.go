package metrics

// Metric names
const (
	MetricNameRequestsTotal   = "crafting_requests_total"
	MetricNameRequestFailures = "crafting_request_failures_total"
	MetricNameLookupsTotal    = "eqdb_lookups_total"
	MetricNameLookupErrors    = "eqdb_lookup_errors_total"
)

// Metric help text
const (
	HelpTextRequestsTotal   = "Total number of crafting requests handled"
	HelpTextRequestFailures = "Total number of crafting requests that failed, by pipeline stage"
	HelpTextLookupsTotal    = "Total number of upstream eqdb API lookups"
	HelpTextLookupErrors    = "Total number of upstream eqdb API lookups that failed"
)

// Metric label names
const (
	LabelSource   = "source"
	LabelStage    = "stage"
	LabelEndpoint = "endpoint"
)

// Request source label values
const (
	SourceForum   = "forum"
	SourceCommand = "command"
)
