package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestsTotal,
			Help: HelpTextRequestsTotal,
		},
		[]string{LabelSource},
	)

	RequestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRequestFailures,
			Help: HelpTextRequestFailures,
		},
		[]string{LabelStage},
	)
)

// Upstream API metrics
var (
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLookupsTotal,
			Help: HelpTextLookupsTotal,
		},
		[]string{LabelEndpoint},
	)

	LookupErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLookupErrors,
			Help: HelpTextLookupErrors,
		},
		[]string{LabelEndpoint},
	)
)
