package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuavictorchen/autologic-sub000/types"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	iterations        prometheus.Counter
	rejections        *prometheus.CounterVec
	runOutcomes       *prometheus.CounterVec
	runDuration       prometheus.Histogram
	acceptedIteration prometheus.Gauge
	heatSize          *prometheus.GaugeVec
	heatNovices       *prometheus.GaugeVec
	categorySplits    *prometheus.GaugeVec
	captainSwaps      *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements
// MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "autologic" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "autologic"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.iterations = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "iterations_total",
			Help:      "Total partitioner attempts across all runs.",
		})
		p.rejections = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "rejections_total",
			Help:      "Total rejected attempts by reason.",
		}, []string{"reason"})
		p.runOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "runs_total",
			Help:      "Total scheduling runs by terminal outcome.",
		}, []string{"outcome"})
		p.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "run_duration_seconds",
			Help:      "Wall time of scheduling runs in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		})
		p.acceptedIteration = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "accepted_iteration",
			Help:      "Zero-based index of the accepted attempt in the last run.",
		})
		p.heatSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "heat_size",
			Help:      "Participant count per heat in the accepted schedule.",
		}, []string{"heat"})
		p.heatNovices = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "heat_novices",
			Help:      "Novice count per heat in the accepted schedule.",
		}, []string{"heat"})
		p.categorySplits = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "stations",
			Name:      "category_splits",
			Help:      "Category groups split across stations per heat.",
		}, []string{"heat"})
		p.captainSwaps = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "stations",
			Name:      "captain_swaps",
			Help:      "Captain refinement swaps per heat.",
		}, []string{"heat"})

		p.reg.MustRegister(
			p.iterations, p.rejections, p.runOutcomes, p.runDuration,
			p.acceptedIteration, p.heatSize, p.heatNovices,
			p.categorySplits, p.captainSwaps,
		)
	})
}

// RecordIteration counts one partitioner attempt.
func (p *PrometheusCollector) RecordIteration() {
	p.ensureRegistered()
	p.iterations.Inc()
}

// RecordRejection counts a rejected attempt by reason.
func (p *PrometheusCollector) RecordRejection(reason string) {
	p.ensureRegistered()
	p.rejections.WithLabelValues(reason).Inc()
}

// RecordRunOutcome counts a terminal outcome and observes run
// duration.
func (p *PrometheusCollector) RecordRunOutcome(outcome types.Outcome, duration float64) {
	p.ensureRegistered()
	p.runOutcomes.WithLabelValues(outcome.String()).Inc()
	p.runDuration.Observe(duration)
}

// RecordAcceptedIteration sets the accepted attempt index gauge.
func (p *PrometheusCollector) RecordAcceptedIteration(iteration int) {
	p.ensureRegistered()
	p.acceptedIteration.Set(float64(iteration))
}

// RecordHeatBalance sets the per-heat size and novice gauges.
func (p *PrometheusCollector) RecordHeatBalance(heat, size, novices int) {
	p.ensureRegistered()
	label := strconv.Itoa(heat)
	p.heatSize.WithLabelValues(label).Set(float64(size))
	p.heatNovices.WithLabelValues(label).Set(float64(novices))
}

// RecordCategorySplits sets the per-heat category split gauge.
func (p *PrometheusCollector) RecordCategorySplits(heat, splits int) {
	p.ensureRegistered()
	p.categorySplits.WithLabelValues(strconv.Itoa(heat)).Set(float64(splits))
}

// RecordCaptainSwaps sets the per-heat captain swap gauge.
func (p *PrometheusCollector) RecordCaptainSwaps(heat, swaps int) {
	p.ensureRegistered()
	p.captainSwaps.WithLabelValues(strconv.Itoa(heat)).Set(float64(swaps))
}
