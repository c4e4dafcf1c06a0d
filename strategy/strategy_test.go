package strategy

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/internal/seed"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/source"
	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

func tasksFor(t *testing.T, samples uint64, workers int, base uint64) []types.Task {
	t.Helper()

	p, err := types.NewPartition(samples, workers)
	require.NoError(t, err)

	return p.Tasks(seed.Deriver(base))
}

func sortPartials(partials []types.PartialResult) []types.PartialResult {
	sort.Slice(partials, func(i, j int) bool { return partials[i].WorkerID < partials[j].WorkerID })
	for i := range partials {
		partials[i].Duration = 0
	}

	return partials
}

// cancelingSource cancels its context after a fixed number of draws.
type cancelingSource struct {
	after  int
	cancel context.CancelFunc
}

func (s *cancelingSource) Next() (x, y float64) {
	s.after--
	if s.after == 0 {
		s.cancel()
	}

	return 0.5, 0.5
}

func TestCountInside(t *testing.T) {
	src := source.NewStatic([]types.Point{{X: 0, Y: 0}, {X: 0.9, Y: 0.9}})

	inside, err := countInside(context.Background(), src, 10)
	require.NoError(t, err)
	require.Equal(t, uint64(5), inside)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = countInside(ctx, src, 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSequential_Count(t *testing.T) {
	s, err := NewSequential()
	require.NoError(t, err)
	require.Equal(t, types.ModeSequential, s.Mode())

	tasks := tasksFor(t, 10_000, 1, 7)
	partials, err := s.Count(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, partials, 1)
	require.Equal(t, uint64(10_000), partials[0].Samples)
	require.LessOrEqual(t, partials[0].Inside, partials[0].Samples)

	_, err = s.Count(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoTasks)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestThreaded_Count(t *testing.T) {
	s, err := NewThreaded()
	require.NoError(t, err)
	require.Equal(t, types.ModeThreaded, s.Mode())

	tasks := tasksFor(t, 100_001, 8, 11)
	partials, err := s.Count(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, partials, 8)

	inside, err := types.Reduce(tasks, partials)
	require.NoError(t, err)
	require.InDelta(t, 3.14, types.Estimate(inside, 100_001), 0.05)
}

func TestThreaded_MatchesSequentialOverSameStream(t *testing.T) {
	const n = 50_003
	stream := source.Draw(source.NewPCG(2024), n)
	want := source.CountInside(stream)

	partition, err := types.NewPartition(n, 6)
	require.NoError(t, err)
	tasks := partition.Tasks(func(int) uint64 { return 0 })

	t.Run("sequential over whole stream", func(t *testing.T) {
		s, err := NewSequential(WithSourceFactory(func(types.Task) types.PointSource { return source.NewStatic(stream) }))
		require.NoError(t, err)

		partials, err := s.Count(context.Background(), []types.Task{{Samples: n}})
		require.NoError(t, err)
		require.Equal(t, want, partials[0].Inside)
	})

	t.Run("threaded over contiguous segments", func(t *testing.T) {
		factory, err := source.StaticFactory(stream, partition, nil)
		require.NoError(t, err)
		s, err := NewThreaded(WithSourceFactory(factory))
		require.NoError(t, err)

		partials, err := s.Count(context.Background(), tasks)
		require.NoError(t, err)
		inside, err := types.Reduce(tasks, partials)
		require.NoError(t, err)
		require.Equal(t, want, inside)
	})
}

func TestThreaded_SegmentPermutationKeepsSum(t *testing.T) {
	const n = 40_000
	stream := source.Draw(source.NewPCG(99), n)
	want := source.CountInside(stream)

	// equal shares so any permutation of segments is a valid assignment
	partition, err := types.NewPartition(n, 4)
	require.NoError(t, err)
	tasks := partition.Tasks(func(int) uint64 { return 0 })

	for _, order := range [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}} {
		factory, err := source.StaticFactory(stream, partition, order)
		require.NoError(t, err)
		s, err := NewThreaded(WithSourceFactory(factory))
		require.NoError(t, err)

		partials, err := s.Count(context.Background(), tasks)
		require.NoError(t, err)
		inside, err := types.Reduce(tasks, partials)
		require.NoError(t, err)
		assert.Equal(t, want, inside, "order %v", order)
	}
}

func TestThreaded_CancellationFailsWholeCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := NewThreaded(WithSourceFactory(func(task types.Task) types.PointSource {
		if task.WorkerID == 2 {
			return &cancelingSource{after: 10, cancel: cancel}
		}
		return source.NewPCG(task.Seed)
	}))
	require.NoError(t, err)

	partials, err := s.Count(ctx, tasksFor(t, 4*(cancelCheckInterval+10), 4, 1))
	require.Nil(t, partials)
	require.ErrorIs(t, err, types.ErrWorkerFailure)
	require.ErrorIs(t, err, context.Canceled)

	var werr *types.WorkerError
	require.ErrorAs(t, err, &werr)
	require.Equal(t, types.ModeThreaded, werr.Mode)
}

func TestThreaded_ZeroShareWorkers(t *testing.T) {
	s, err := NewThreaded()
	require.NoError(t, err)

	tasks := tasksFor(t, 3, 4, 5)
	partials, err := s.Count(context.Background(), tasks)
	require.NoError(t, err)

	inside, err := types.Reduce(tasks, partials)
	require.NoError(t, err)
	require.LessOrEqual(t, inside, uint64(3))
}

func TestNew(t *testing.T) {
	for _, mode := range types.Modes() {
		s, err := New(mode)
		require.NoError(t, err)
		require.Equal(t, mode, s.Mode())
	}

	_, err := New(types.Mode("gpu"))
	require.ErrorIs(t, err, types.ErrStrategyUnavailable)

	_, err = New(types.ModeThreaded, WithSourceName("nope"))
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}
