package enumerator

// defaultTolerance is the symmetry tolerance used when the point group
// is derived from the lattice and no override is supplied. Tight enough
// that the integer rounding in the canonicality test is exact for any
// sanely conditioned basis.
const defaultTolerance = 1e-5

// options collects the optional knobs of an Enumerator.
type options struct {
	tolerance float64
	metrics   Metrics
}

// Option adjusts optional Enumerator behavior.
type Option func(*options)

// WithTolerance overrides the symmetry tolerance used by point-group
// derivation. It has no effect when an explicit point group is supplied.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithMetrics injects a Metrics collector observing the walk. The
// default is a no-op collector that costs nothing.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func defaultOptions() options {
	return options{
		tolerance: defaultTolerance,
		metrics:   noopMetrics{},
	}
}
