package enumerator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics observes the iterator's walk. Implementations must be safe
// for concurrent use when iterators from the same Enumerator are driven
// from multiple goroutines.
type Metrics interface {
	// RawStep is called once per raw HNF step taken.
	RawStep()
	// Rejected is called when a raw candidate fails the canonicality test.
	Rejected()
	// Emitted is called when a canonical matrix is produced at the given
	// volume.
	Emitted(volume int)
}

// noopMetrics is the default collector: all observations vanish.
type noopMetrics struct{}

func (noopMetrics) RawStep()    {}
func (noopMetrics) Rejected()   {}
func (noopMetrics) Emitted(int) {}

// PromMetrics is a Metrics implementation backed by Prometheus counters.
type PromMetrics struct {
	rawSteps prometheus.Counter
	rejected prometheus.Counter
	emitted  prometheus.Counter
}

// NewPromMetrics registers and returns a Prometheus-backed collector on
// the given registerer.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	return &PromMetrics{
		rawSteps: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "supercell_raw_hnf_steps_total",
			Help: "Raw HNF walk steps taken across all iterators.",
		}),
		rejected: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "supercell_noncanonical_rejected_total",
			Help: "Raw HNF candidates rejected by the canonicality test.",
		}),
		emitted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "supercell_canonical_emitted_total",
			Help: "Canonical supercell matrices emitted.",
		}),
	}
}

// RawStep increments the raw-step counter.
func (m *PromMetrics) RawStep() { m.rawSteps.Inc() }

// Rejected increments the rejection counter.
func (m *PromMetrics) Rejected() { m.rejected.Inc() }

// Emitted increments the emission counter.
func (m *PromMetrics) Emitted(int) { m.emitted.Inc() }
