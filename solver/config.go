// Package solver - run configuration.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ringsom/ring"
)

const (
	// DefaultIterations is the number of learning steps of a run.
	DefaultIterations = 10000

	// DefaultSnapshotEvery is the snapshot interval in learning steps.
	DefaultSnapshotEvery = 1000
)

// ErrInvalidConfig indicates a Config that fails Validate.
var ErrInvalidConfig = errors.New("solver: invalid config")

// Config controls one Solve run.
type Config struct {
	// Iterations is the number of learning steps (>= 1).
	Iterations int

	// SnapshotEvery fires Hooks.OnSnapshot every that many steps and before
	// the first one. 0 disables snapshots.
	SnapshotEvery int

	// Seed feeds the ring's sample draws. 0 selects the default seed.
	Seed int64

	// Spread is the neighbourhood half-width of the learning rule.
	Spread int

	// RemoveDistance is the distance at or below which Prune merges neurons.
	RemoveDistance float64

	// Prune collapses converged neurons after training.
	Prune bool

	// Polish runs 2-opt over the extracted city tour.
	Polish bool

	// TwoOptMaxIters bounds accepted 2-opt moves (0 = until local optimum).
	TwoOptMaxIters int
}

// DefaultConfig returns the configuration of a standard run: 10000 steps,
// a snapshot every 1000, default ring tunables, pruning and polishing on.
func DefaultConfig() Config {
	return Config{
		Iterations:     DefaultIterations,
		SnapshotEvery:  DefaultSnapshotEvery,
		Seed:           0,
		Spread:         ring.DefaultSpread,
		RemoveDistance: ring.DefaultRemoveDistance,
		Prune:          true,
		Polish:         true,
		TwoOptMaxIters: 0,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations %d < 1", ErrInvalidConfig, c.Iterations)
	case c.SnapshotEvery < 0:
		return fmt.Errorf("%w: snapshot interval %d < 0", ErrInvalidConfig, c.SnapshotEvery)
	case c.Spread < 0:
		return fmt.Errorf("%w: spread %d < 0", ErrInvalidConfig, c.Spread)
	case math.IsNaN(c.RemoveDistance) || math.IsInf(c.RemoveDistance, 0) || c.RemoveDistance < 0:
		return fmt.Errorf("%w: remove distance %v", ErrInvalidConfig, c.RemoveDistance)
	case c.TwoOptMaxIters < 0:
		return fmt.Errorf("%w: 2-opt move bound %d < 0", ErrInvalidConfig, c.TwoOptMaxIters)
	}

	return nil
}

// progress returns the time progress of step t in 1..Iterations. It falls
// from 1 to 1/Iterations and never reaches 0.
func (c Config) progress(t int) float64 {
	return float64(c.Iterations-t+1) / float64(c.Iterations)
}
