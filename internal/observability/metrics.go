package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	GitCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_search_git_calls_total",
			Help: "Total git invocations",
		},
		[]string{"op"},
	)

	GitErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_search_git_errors_total",
			Help: "Total failed git invocations",
		},
		[]string{"op"},
	)

	GitLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diff_search_git_latency_seconds",
			Help:    "git invocation latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	RecordsParsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "diff_search_records_parsed_total",
			Help: "Total line records emitted by the parser",
		},
	)

	UntrackedSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_search_untracked_skipped_total",
			Help: "Untracked files excluded from synthesis",
		},
		[]string{"reason"},
	)

	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diff_search_searches_total",
			Help: "Total search requests",
		},
		[]string{"outcome"},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(GitCalls, GitErrors, GitLatency, RecordsParsed, UntrackedSkipped, Searches)
	})
}
