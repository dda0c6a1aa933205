package ring

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ringsom/vec"
)

const (
	// DefaultSpread is the half-width of the neighbourhood window updated by Train.
	// The window covers 2*Spread+1 neurons centred on the winner.
	DefaultSpread = 3

	// DefaultRemoveDistance is the distance at or below which Prune treats two
	// adjacent neurons as the same one. Same units as the sample coordinates.
	DefaultRemoveDistance = 1.0
)

// Option configures a Ring via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables and hooks of a Ring.
type Options struct {
	// Spread is the neighbourhood half-width (>= 0).
	Spread int

	// RemoveDistance is the pruning distance (finite, >= 0).
	RemoveDistance float64

	// Seed feeds the ring's random generator. 0 selects a fixed default seed.
	Seed int64

	// OnInsert is called after a neuron child was spliced in after parent.
	OnInsert func(parent, child NeuronID, at vec.Vector)

	// OnRemove is called after removed (the successor of keeper) was unlinked.
	OnRemove func(keeper, removed NeuronID, at vec.Vector)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Spread = DefaultSpread, RemoveDistance = DefaultRemoveDistance;
//   - Seed = 0 (deterministic default stream);
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Spread:         DefaultSpread,
		RemoveDistance: DefaultRemoveDistance,
		Seed:           0,
		OnInsert:       func(NeuronID, NeuronID, vec.Vector) {},
		OnRemove:       func(NeuronID, NeuronID, vec.Vector) {},
		err:            nil,
	}
}

// WithSpread sets the neighbourhood half-width. Negative values are rejected.
func WithSpread(spread int) Option {
	return func(o *Options) {
		if spread < 0 {
			o.err = fmt.Errorf("%w: spread %d < 0", ErrOptionViolation, spread)
			return
		}
		o.Spread = spread
	}
}

// WithRemoveDistance sets the pruning distance. NaN, ±Inf and negative values are rejected.
func WithRemoveDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			o.err = fmt.Errorf("%w: remove distance %v", ErrOptionViolation, d)
			return
		}
		o.RemoveDistance = d
	}
}

// WithSeed sets the seed of the ring's random generator.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnInsert registers a hook fired for every inserted neuron.
func WithOnInsert(fn func(parent, child NeuronID, at vec.Vector)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithOnRemove registers a hook fired for every removed neuron.
func WithOnRemove(fn func(keeper, removed NeuronID, at vec.Vector)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first recorded error.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
