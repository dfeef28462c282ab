package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the bill decoding collectors on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	uploads     *prometheus.CounterVec
	textSources *prometheus.CounterVec
	duration    prometheus.Histogram
	issues      *prometheus.CounterVec
	events      *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billassist",
			Name:      "uploads_total",
			Help:      "Bill uploads by outcome.",
		}, []string{"outcome"}),
		textSources: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billassist",
			Name:      "text_source_total",
			Help:      "Documents by the path their text was obtained from.",
		}, []string{"source"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "billassist",
			Name:      "decode_duration_seconds",
			Help:      "Time spent extracting text and decoding a bill.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billassist",
			Name:      "issues_total",
			Help:      "Issues flagged on decoded bills.",
		}, []string{"issue"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billassist",
			Name:      "feedback_events_total",
			Help:      "Willingness-to-pay and session events recorded.",
		}, []string{"kind"}),
	}
	r.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		r.uploads, r.textSources, r.duration, r.issues, r.events,
	)
	return r
}

func (r *Recorder) ObserveUpload(outcome string, seconds float64) {
	r.uploads.WithLabelValues(outcome).Inc()
	r.duration.Observe(seconds)
}

func (r *Recorder) ObserveTextSource(source string) {
	r.textSources.WithLabelValues(source).Inc()
}

func (r *Recorder) ObserveIssues(issues []string) {
	for _, issue := range issues {
		r.issues.WithLabelValues(issue).Inc()
	}
}

func (r *Recorder) ObserveEvent(kind string) {
	r.events.WithLabelValues(kind).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
