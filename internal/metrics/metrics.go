// Package metrics exposes prometheus counters for match outcomes.
// No-matches get their own counter: their volume drives "add a new
// canonical role" curation decisions downstream.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wagescope/ladder/internal/model"
)

const namespace = "ladder"

// Recorder tracks parse outcomes. All methods are safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	titlesParsed    prometheus.Counter
	matchesByTier   *prometheus.CounterVec
	noMatch         prometheus.Counter
	seniorityByTier *prometheus.CounterVec
	confidence      prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry, so tests and
// multiple pipelines never fight over the global default.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		titlesParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "titles_parsed_total",
			Help:      "Raw titles run through the resolution pipeline.",
		}),
		matchesByTier: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Resolved titles by matcher tier.",
		}, []string{"tier"}),
		noMatch: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_match_total",
			Help:      "Titles that resolved to no canonical role.",
		}),
		seniorityByTier: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seniority_total",
			Help:      "Titles by extracted seniority tier.",
		}, []string{"tier"}),
		confidence: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "title_confidence",
			Help:      "Distribution of title match confidence for resolved titles.",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		}),
	}
}

// Observe records one parse result.
func (r *Recorder) Observe(result model.ParseResult) {
	r.titlesParsed.Inc()
	r.seniorityByTier.WithLabelValues(result.Seniority.String()).Inc()
	if result.Matched() {
		r.matchesByTier.WithLabelValues(result.MatchTier).Inc()
		r.confidence.Observe(result.TitleConfidence)
	} else {
		r.noMatch.Inc()
	}
}

// Handler returns an HTTP handler serving this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather exposes the registry for tests.
func (r *Recorder) Gather() prometheus.Gatherer {
	return r.registry
}
