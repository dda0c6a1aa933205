package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/vec"
)

func TestLength(t *testing.T) {
	assert.InDelta(t, 40.0, mustRing(t, square(10)).Length(), epsTiny)
	assert.InDelta(t, 2.0, mustRing(t, []vec.Vector{vec.New(0, 0), vec.New(1, 0)}).Length(), epsTiny,
		"a two-neuron ring counts the edge twice")

	one, err := ring.New(vec.New(7, 7))
	require.NoError(t, err)
	assert.Equal(t, 0.0, one.Length())
}

func TestDescribe(t *testing.T) {
	r := mustRing(t, []vec.Vector{vec.New(0, 0), vec.New(1, 0)})
	want := "Neural net ::\n" +
		"  size : 2\n" +
		"  neuron 0 at (1.000000, 0.000000)\n" +
		"  neuron 1 at (0.000000, 0.000000)\n"
	assert.Equal(t, want, r.Describe())
	assert.Equal(t, want, r.String())

	var empty ring.Ring
	assert.Equal(t, "Neural net ::\n  size : 0\n", empty.Describe())
}

func TestPositions_IsACopy(t *testing.T) {
	r := mustRing(t, square(4))
	pos := r.Positions()
	pos[0] = vec.New(99, 99)

	assert.Equal(t, vec.New(0, 0), r.Positions()[0])
}

func TestNeurons_RingOrder(t *testing.T) {
	r := mustRing(t, square(4))
	ns := r.Neurons()
	require.Len(t, ns, 4)

	var i int
	for i = range ns {
		assert.Equal(t, ns[(i+1)%len(ns)].ID, ns[i].Next)
		assert.Equal(t, ns[(i+len(ns)-1)%len(ns)].ID, ns[i].Prev)
	}
}
