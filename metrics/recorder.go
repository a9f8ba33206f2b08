package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reusee/typogenetics/typo"
)

const namespace = "typogenetics"

// Recorder counts simulation events on a private registry.
type Recorder struct {
	registry     *prometheus.Registry
	translations prometheus.Counter
	rewrites     prometheus.Counter
	halts        *prometheus.CounterVec
	outputs      prometheus.Histogram
	edits        *prometheus.CounterVec
	population   prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		translations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Strands translated into enzymes.",
		}),
		rewrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewrites_total",
			Help:      "Enzymes applied to strands.",
		}),
		halts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewrite_halts_total",
			Help:      "Rewrites by the reason the enzyme stopped.",
		}, []string{"reason"}),
		outputs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rewrite_output_strands",
			Help:      "Strands produced per rewrite.",
			Buckets:   prometheus.LinearBuckets(1, 1, 8),
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Point edits applied to strands.",
		}, []string{"kind"}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population_size",
			Help:      "Distinct strands discovered.",
		}),
	}
	r.registry.MustRegister(
		r.translations,
		r.rewrites,
		r.halts,
		r.outputs,
		r.edits,
		r.population,
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Translated() {
	r.translations.Inc()
}

func (r *Recorder) Rewrote(halt typo.Halt, outputs int) {
	r.rewrites.Inc()
	r.halts.WithLabelValues(halt.String()).Inc()
	r.outputs.Observe(float64(outputs))
}

func (r *Recorder) Edited(kind string) {
	r.edits.WithLabelValues(kind).Inc()
}

func (r *Recorder) SetPopulation(n int) {
	r.population.Set(float64(n))
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
