package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sandevgo/footix/internal/core"
)

var (
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "footix",
		Name:      "resolutions_total",
		Help:      "Resolved utterances by outcome.",
	}, []string{"outcome"})

	matchScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "footix",
		Name:      "match_score",
		Help:      "Score of the selected entry for fuzzy matches.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})

	resolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "footix",
		Name:      "resolve_duration_seconds",
		Help:      "Time spent resolving one utterance, including state load and save.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 9),
	})

	stateErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "footix",
		Name:      "state_errors_total",
		Help:      "Conversation state load or save failures.",
	})
)

func observe(res Result) {
	resolutionsTotal.WithLabelValues(string(res.Outcome)).Inc()
	if res.Outcome == core.OutcomeFuzzy {
		matchScore.Observe(res.Score)
	}
}
