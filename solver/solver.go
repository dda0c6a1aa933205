// Package solver runs the full pipeline on a set of cities: grow and train a
// ring, prune it, read the city tour off the ring and polish it.
//
// The package never logs; progress is reported through Hooks.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/samples"
	"github.com/katalvlaran/ringsom/tsp"
	"github.com/katalvlaran/ringsom/vec"
)

// Hooks observe a run. Every field is optional.
type Hooks struct {
	// OnSnapshot receives a copy of the ring positions before the first step
	// (iter 0) and every Config.SnapshotEvery steps. A non-nil error aborts
	// the run.
	OnSnapshot func(iter int, positions []vec.Vector) error

	// OnIteration is called after every learning step.
	OnIteration func(iter int, r *ring.Ring)

	// OnInsert and OnRemove trace ring growth and pruning.
	OnInsert func(parent, child ring.NeuronID, at vec.Vector)
	OnRemove func(keeper, removed ring.NeuronID, at vec.Vector)
}

// Result describes a finished run.
type Result struct {
	Ring       *ring.Ring
	Length     float64
	RingSize   int
	Pruned     int
	Tour       []int
	TourCost   float64
	Iterations int
	Elapsed    time.Duration
}

// Solve trains a ring on cities and extracts a tour:
//  1. a one-neuron ring is created at the centre of the cities' bounding box;
//  2. for t = 1..Iterations the ring learns with progress
//     (Iterations-t+1)/Iterations; ctx is checked between steps;
//  3. converged neurons are pruned when Config.Prune is set;
//  4. the city tour is read off the ring and, when Config.Polish is set,
//     improved by 2-opt.
//
// Errors: ErrInvalidConfig, samples.ErrNoSamples, ctx.Err(), a snapshot hook
// error, or a ring/tsp sentinel.
func Solve(ctx context.Context, cities []vec.Vector, cfg Config, hooks Hooks) (Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	box, err := samples.Bounds(cities)
	if err != nil {
		return Result{}, err
	}

	r, err := ring.New(box.Center(),
		ring.WithSeed(cfg.Seed),
		ring.WithSpread(cfg.Spread),
		ring.WithRemoveDistance(cfg.RemoveDistance),
		ring.WithOnInsert(hooks.OnInsert),
		ring.WithOnRemove(hooks.OnRemove),
	)
	if err != nil {
		return Result{}, err
	}

	if err = snapshot(hooks, cfg, 0, r); err != nil {
		return Result{}, err
	}

	var t int
	for t = 1; t <= cfg.Iterations; t++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = r.Train(cities, cfg.progress(t)); err != nil {
			return Result{}, fmt.Errorf("solver: step %d: %w", t, err)
		}
		if hooks.OnIteration != nil {
			hooks.OnIteration(t, r)
		}
		if cfg.SnapshotEvery > 0 && t%cfg.SnapshotEvery == 0 {
			if err = snapshot(hooks, cfg, t, r); err != nil {
				return Result{}, err
			}
		}
	}

	res := Result{Ring: r, Iterations: cfg.Iterations}
	if cfg.Prune {
		res.Pruned = r.Prune()
	}
	res.Length = r.Length()
	res.RingSize = r.Size()

	opts := tsp.DefaultOptions()
	opts.TwoOptMaxIters = cfg.TwoOptMaxIters
	res.Tour, err = tsp.FromRing(r.Positions(), cities, opts)
	if err != nil {
		return Result{}, err
	}
	if cfg.Polish {
		var polished []int
		polished, _, err = tsp.TwoOpt(cities, res.Tour, opts)
		if err != nil && !errors.Is(err, tsp.ErrTimeLimit) {
			return Result{}, err
		}
		res.Tour = polished
	}
	res.TourCost, err = tsp.TourCost(cities, res.Tour)
	if err != nil {
		return Result{}, err
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

func snapshot(hooks Hooks, cfg Config, iter int, r *ring.Ring) error {
	if hooks.OnSnapshot == nil || cfg.SnapshotEvery == 0 {
		return nil
	}
	if err := hooks.OnSnapshot(iter, r.Positions()); err != nil {
		return fmt.Errorf("solver: snapshot %d: %w", iter, err)
	}

	return nil
}
