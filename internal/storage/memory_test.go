package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringsom/internal/model"
)

func sampleRun(id string, at time.Time) model.Run {
	return model.Run{
		VersionedRecord: Versioned(),
		ID:              id,
		Source:          "circle.tsp",
		Cities:          4,
		Iterations:      1000,
		Seed:            7,
		RingSize:        5,
		RingLength:      41.5,
		TourCost:        40,
		Tour:            []int{0, 1, 2, 3, 0},
		Ring:            []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}},
		CreatedAt:       at.UTC(),
		ElapsedMS:       12,
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	run := sampleRun("r1", time.Unix(1700000000, 0))
	require.NoError(t, store.SaveRun(ctx, run))

	got, ok, err := store.GetRun(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, run, got)

	run.Tour[1] = 99
	got, _, _ = store.GetRun(ctx, "r1")
	assert.Equal(t, 1, got.Tour[1], "the store keeps its own copy")

	_, ok, err = store.GetRun(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	base := time.Unix(1700000000, 0)
	require.NoError(t, store.SaveRun(ctx, sampleRun("old", base)))
	require.NoError(t, store.SaveRun(ctx, sampleRun("new", base.Add(time.Hour))))
	require.NoError(t, store.SaveRun(ctx, sampleRun("mid", base.Add(time.Minute))))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})

	runs, err = store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	assert.Error(t, store.SaveRun(context.Background(), sampleRun("x", time.Now())))
	_, err := store.ListRuns(context.Background(), 0)
	assert.Error(t, err)
}
