package ring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/vec"
)

// factor mirrors the learning rule's neighbourhood factor.
func factor(d int, t float64) float64 { return math.Exp(-(1 + float64(d)) / (2 * t)) }

func TestGrowthSchedule(t *testing.T) {
	assert.Equal(t, 20, ring.LearnAfter(20))
	assert.InDelta(t, 1/math.Log(20), ring.GrowThreshold(20), epsTiny)
	assert.InDelta(t, math.Log(20)*20, ring.GrowthLimit(20), epsTiny)
	assert.True(t, math.IsInf(ring.GrowThreshold(1), 1), "ln(1) is zero")
	assert.Equal(t, 0.0, ring.GrowthLimit(1))
}

func TestNearest_TieGoesToFirstFromEntry(t *testing.T) {
	r := mustRing(t, []vec.Vector{vec.New(-1, 0), vec.New(1, 0), vec.New(0, 5)})

	id, err := r.Nearest(vec.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, ring.NeuronID(0), id)

	id, err = r.Nearest(vec.New(0, 4))
	require.NoError(t, err)
	assert.Equal(t, ring.NeuronID(2), id)
}

func TestTrain_Rejections(t *testing.T) {
	r := mustRing(t, []vec.Vector{vec.New(0, 0)})
	s := []vec.Vector{vec.New(1, 1)}

	assert.ErrorIs(t, r.Train(nil, 1), ring.ErrNoSamples)
	assert.ErrorIs(t, r.Train(s, 0), ring.ErrBadProgress)
	assert.ErrorIs(t, r.Train(s, -0.5), ring.ErrBadProgress)
	assert.ErrorIs(t, r.Train(s, 1.5), ring.ErrBadProgress)
	assert.ErrorIs(t, r.Train(s, math.NaN()), ring.ErrBadProgress)
	assert.Equal(t, 0, r.Learned(), "rejected steps do not count")
}

func TestTrain_WinnerOnSampleStaysPut(t *testing.T) {
	pts := circle(10, 100, vec.New(0, 0))
	r := mustRing(t, pts)
	before := positionsByID(r)

	require.NoError(t, r.Train([]vec.Vector{pts[4]}, 1))

	n, err := r.Neuron(4)
	require.NoError(t, err)
	assert.Equal(t, pts[4], n.Position)
	assert.Equal(t, 1, n.Hits)
	assert.Equal(t, 1, r.Learned())
	assert.NotEqual(t, before[5], positionsByID(r)[5], "neighbours move toward the sample")
}

func TestTrain_UpdatesOnlyTheWindow(t *testing.T) {
	pts := circle(30, 100, vec.New(0, 0))
	r := mustRing(t, pts)

	require.NoError(t, r.Train([]vec.Vector{pts[10]}, 0.5))

	after := positionsByID(r)
	changed := 0
	var i int
	for i = range pts {
		if after[ring.NeuronID(i)] != pts[i] {
			changed++
			assert.LessOrEqual(t, absDiff(i, 10), ring.DefaultSpread, "neuron %d is outside the window", i)
		}
	}
	assert.LessOrEqual(t, changed, 2*ring.DefaultSpread+1)
	assert.Equal(t, 2*ring.DefaultSpread, changed, "winner sits on the sample, every other window neuron moves")
}

func TestTrain_OneNeuronWindowWraps(t *testing.T) {
	r, err := ring.New(vec.New(10, 0))
	require.NoError(t, err)
	require.NoError(t, r.Train([]vec.Vector{vec.New(0, 0)}, 1))

	// The single neuron is visited once per window slot.
	want := 10.0
	var i int
	for i = -ring.DefaultSpread; i <= ring.DefaultSpread; i++ {
		want *= 1 - factor(absDiff(i, 0), 1)
	}
	n, _ := r.Neuron(0)
	assert.InDelta(t, want, n.Position.X, epsTiny)
	assert.Equal(t, 0.0, n.Position.Y)
	assert.Equal(t, 1, n.Hits)
}

func TestTrain_TwoNeuronWindowWraps(t *testing.T) {
	r := mustRing(t, []vec.Vector{vec.New(0, 0), vec.New(10, 0)})
	require.NoError(t, r.Train([]vec.Vector{vec.New(0, 0)}, 1))

	// Window from the winner: B A B A B A B with |i| = 3 2 1 0 1 2 3.
	want := 10 * (1 - factor(3, 1)) * (1 - factor(1, 1)) * (1 - factor(1, 1)) * (1 - factor(3, 1))
	a, _ := r.Neuron(0)
	b, _ := r.Neuron(1)
	assert.Equal(t, vec.New(0, 0), a.Position)
	assert.InDelta(t, want, b.Position.X, epsTiny)
	assert.Equal(t, 1, a.Hits)
	assert.Equal(t, 0, b.Hits)
}

func TestTrain_SpreadZeroMovesOnlyWinner(t *testing.T) {
	pts := circle(8, 50, vec.New(0, 0))
	r := mustRing(t, pts, ring.WithSpread(0))
	s := vec.New(60, 0)
	require.NoError(t, r.Train([]vec.Vector{s}, 1))

	after := positionsByID(r)
	want := pts[0].Add(s.Sub(pts[0]).Scale(factor(0, 1)))
	assert.InDelta(t, want.X, after[0].X, epsTiny)
	var i int
	for i = 1; i < len(pts); i++ {
		assert.Equal(t, pts[i], after[ring.NeuronID(i)])
	}
}

func TestTrain_FirstGrowthAfterLearnAfterSteps(t *testing.T) {
	samples := scatter(20, 100, seedDet)
	r, err := ring.New(vec.New(50, 50), ring.WithSeed(seedDet))
	require.NoError(t, err)

	var i int
	for i = 0; i < 19; i++ {
		require.NoError(t, r.Train(samples, 1))
	}
	assert.Equal(t, 1, r.Size())
	assert.Equal(t, 19, r.Learned())

	require.NoError(t, r.Train(samples, 1))
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, 0, r.Learned())
	requireValid(t, r)
}

func TestTrain_GrowthStopsAtLimit(t *testing.T) {
	// GrowthLimit(2) = 2 ln 2 ≈ 1.39: one growth from size 1, then never again.
	samples := []vec.Vector{vec.New(0, 0), vec.New(10, 0)}
	r, err := ring.New(vec.New(5, 0), ring.WithSeed(seedDet))
	require.NoError(t, err)

	var i int
	for i = 0; i < 100; i++ {
		require.NoError(t, r.Train(samples, 1))
	}
	assert.Equal(t, 2, r.Size())
}

func TestTrain_Deterministic(t *testing.T) {
	samples := scatter(40, 100, seedDet)
	run := func() []vec.Vector {
		r, err := ring.New(vec.New(50, 50), ring.WithSeed(42))
		require.NoError(t, err)
		var i int
		for i = 1; i <= 600; i++ {
			require.NoError(t, r.Train(samples, float64(601-i)/600))
		}

		return r.Positions()
	}
	assert.Equal(t, run(), run())
}

func TestTrain_KeepsInvariants(t *testing.T) {
	samples := scatter(50, 200, seedDet)
	r, err := ring.New(vec.New(100, 100), ring.WithSeed(seedDet))
	require.NoError(t, err)

	const steps = 3000
	var i int
	for i = 1; i <= steps; i++ {
		require.NoError(t, r.Train(samples, float64(steps-i+1)/steps))
		if i%250 == 0 {
			requireValid(t, r)
			assert.Less(t, float64(r.Size()), ring.GrowthLimit(len(samples))*2)
		}
	}
	assert.Greater(t, r.Size(), 1)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

func TestTrain_GrowthRunsInsideTrain(t *testing.T) {
	// n = 3: LearnAfter = 3, threshold 1/ln 3 ≈ 0.91, so the third step splits the only neuron.
	samples := []vec.Vector{vec.New(0, 0), vec.New(10, 0), vec.New(5, 8)}
	var inserts int
	r, err := ring.New(vec.New(5, 3),
		ring.WithSeed(seedDet),
		ring.WithOnInsert(func(_, _ ring.NeuronID, _ vec.Vector) { inserts++ }),
	)
	require.NoError(t, err)

	var i int
	for i = 0; i < 3; i++ {
		require.NoError(t, r.Train(samples, 1))
	}
	assert.Equal(t, 1, inserts)
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, 0, r.Learned())
	requireValid(t, r)
}
