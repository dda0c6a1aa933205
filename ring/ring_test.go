package ring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ringsom/ring"
	"github.com/katalvlaran/ringsom/vec"
)

// TopologySuite covers the topology store: construction, insertion, removal
// and id bookkeeping.
type TopologySuite struct {
	suite.Suite
	r *ring.Ring
}

func (s *TopologySuite) SetupTest() {
	var err error
	s.r, err = ring.New(vec.New(0, 0))
	s.Require().NoError(err)
}

func (s *TopologySuite) TestNewIsSingleSelfLinkedNeuron() {
	require := require.New(s.T())
	require.Equal(1, s.r.Size())
	require.Equal(0, s.r.Learned())
	require.Equal(0.0, s.r.Length())

	entry, err := s.r.Entry()
	require.NoError(err)
	next, _ := s.r.Next(entry)
	prev, _ := s.r.Prev(entry)
	require.Equal(entry, next, "a lone neuron is its own successor")
	require.Equal(entry, prev, "a lone neuron is its own predecessor")
	requireValid(s.T(), s.r)
}

func (s *TopologySuite) TestNewAtBoundingBoxCentroid() {
	require := require.New(s.T())
	box := vec.BoxAt(vec.New(0, 0)).Extend(vec.New(10, 10))
	r, err := ring.New(box.Center())
	require.NoError(err)

	entry, _ := r.Entry()
	n, err := r.Neuron(entry)
	require.NoError(err)
	require.Equal(vec.New(5, 5), n.Position)
	require.Equal(1, r.Size())
	require.Equal(0.0, r.Length())
}

func (s *TopologySuite) TestInsertAfterSelfLoopLandsOnSamePoint() {
	require := require.New(s.T())
	entry, _ := s.r.Entry()

	child, err := s.r.InsertAfter(entry)
	require.NoError(err)
	require.Equal(2, s.r.Size())

	n, err := s.r.Neuron(child)
	require.NoError(err)
	require.Equal(vec.New(0, 0), n.Position, "midpoint of a neuron and itself")
	require.Equal(0, n.Hits)
	require.Equal(entry, n.Prev)
	require.Equal(entry, n.Next)
	requireValid(s.T(), s.r)
}

func (s *TopologySuite) TestInsertAfterUsesMidpointOfSuccessor() {
	require := require.New(s.T())
	r := mustRing(s.T(), []vec.Vector{vec.New(0, 0), vec.New(10, 0), vec.New(10, 10)})

	child, err := r.InsertAfter(1)
	require.NoError(err)
	n, _ := r.Neuron(child)
	require.Equal(vec.New(10, 5), n.Position)
	require.Equal(ring.NeuronID(1), n.Prev)
	require.Equal(ring.NeuronID(2), n.Next)
	require.Equal(4, r.Size())
	requireValid(s.T(), r)
}

func (s *TopologySuite) TestRemoveAfterRejectsLastNeuron() {
	entry, _ := s.r.Entry()
	s.Require().ErrorIs(s.r.RemoveAfter(entry), ring.ErrLastNeuron)
	s.Require().Equal(1, s.r.Size())
}

func (s *TopologySuite) TestRemoveAfterRelinksAndMovesEntry() {
	require := require.New(s.T())
	r := mustRing(s.T(), []vec.Vector{vec.New(0, 0), vec.New(1, 0), vec.New(2, 0)})

	// Removing the successor of the last neuron removes the entry.
	require.NoError(r.RemoveAfter(2))
	require.Equal(2, r.Size())
	entry, _ := r.Entry()
	require.Equal(ring.NeuronID(2), entry)

	next, _ := r.Next(2)
	require.Equal(ring.NeuronID(1), next)
	_, err := r.Neuron(0)
	require.ErrorIs(err, ring.ErrUnknownNeuron, "removed ids are no longer addressable")
	requireValid(s.T(), r)
}

func (s *TopologySuite) TestRemovedSlotIsRecycled() {
	require := require.New(s.T())
	r := mustRing(s.T(), []vec.Vector{vec.New(0, 0), vec.New(4, 0), vec.New(8, 0)})

	require.NoError(r.RemoveAfter(0))
	child, err := r.InsertAfter(2)
	require.NoError(err)
	require.Equal(ring.NeuronID(1), child, "the freed slot is reused")
	n, _ := r.Neuron(child)
	require.Equal(vec.New(4, 0), n.Position)
	requireValid(s.T(), r)
}

func (s *TopologySuite) TestUnknownIDs() {
	require := require.New(s.T())
	var err error

	_, err = s.r.Next(-1)
	require.ErrorIs(err, ring.ErrUnknownNeuron)
	_, err = s.r.Prev(42)
	require.ErrorIs(err, ring.ErrUnknownNeuron)
	_, err = s.r.InsertAfter(3)
	require.ErrorIs(err, ring.ErrUnknownNeuron)
	require.ErrorIs(s.r.RemoveAfter(ring.NoNeuron), ring.ErrUnknownNeuron)
}

func (s *TopologySuite) TestHooksFire() {
	require := require.New(s.T())
	var inserted, removed []ring.NeuronID
	r, err := ring.New(vec.New(1, 1),
		ring.WithOnInsert(func(_, child ring.NeuronID, _ vec.Vector) { inserted = append(inserted, child) }),
		ring.WithOnRemove(func(_, gone ring.NeuronID, _ vec.Vector) { removed = append(removed, gone) }),
	)
	require.NoError(err)

	child, err := r.InsertAfter(0)
	require.NoError(err)
	require.NoError(r.RemoveAfter(0))
	require.Equal([]ring.NeuronID{child}, inserted)
	require.Equal([]ring.NeuronID{child}, removed)
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}

// TestNew_Rejections covers constructor preconditions.
func TestNew_Rejections(t *testing.T) {
	_, err := ring.New(vec.New(math.NaN(), 0))
	require.ErrorIs(t, err, ring.ErrNonFinite)

	_, err = ring.New(vec.New(0, 0), ring.WithSpread(-1))
	require.ErrorIs(t, err, ring.ErrOptionViolation)

	_, err = ring.New(vec.New(0, 0), ring.WithRemoveDistance(math.Inf(1)))
	require.ErrorIs(t, err, ring.ErrOptionViolation)

	_, err = ring.FromPositions(nil)
	require.ErrorIs(t, err, ring.ErrNoSamples)

	_, err = ring.FromPositions([]vec.Vector{vec.New(0, 0), vec.New(math.Inf(1), 0)})
	require.ErrorIs(t, err, ring.ErrNonFinite)
}

// TestOptions_Defaults pins the documented defaults.
func TestOptions_Defaults(t *testing.T) {
	r, err := ring.New(vec.New(0, 0))
	require.NoError(t, err)
	o := r.Options()
	require.Equal(t, ring.DefaultSpread, o.Spread)
	require.Equal(t, ring.DefaultRemoveDistance, o.RemoveDistance)
	require.Equal(t, int64(0), o.Seed)
}

// TestZeroRing verifies that the zero value answers with ErrEmptyRing.
func TestZeroRing(t *testing.T) {
	var r ring.Ring
	var err error

	_, err = r.Entry()
	require.ErrorIs(t, err, ring.ErrEmptyRing)
	_, err = r.Nearest(vec.New(0, 0))
	require.ErrorIs(t, err, ring.ErrEmptyRing)
	require.ErrorIs(t, r.Train([]vec.Vector{vec.New(0, 0)}, 1), ring.ErrEmptyRing)
	_, err = r.Grow(1)
	require.ErrorIs(t, err, ring.ErrEmptyRing)
	require.ErrorIs(t, r.Validate(), ring.ErrEmptyRing)
	require.Equal(t, 0, r.Prune())
	require.Equal(t, 0.0, r.Length())
	require.Empty(t, r.Positions())
}

// TestFromPositions_Links checks slice order becomes ring order.
func TestFromPositions_Links(t *testing.T) {
	pts := circle(5, 10, vec.New(0, 0))
	r := mustRing(t, pts)
	require.Equal(t, 5, r.Size())
	require.Equal(t, pts, r.Positions())
	requireValid(t, r)

	prev, err := r.Prev(0)
	require.NoError(t, err)
	require.Equal(t, ring.NeuronID(4), prev)
}
