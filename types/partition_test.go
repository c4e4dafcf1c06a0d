package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPartition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples uint64
		workers int
		want    Partition
	}{
		{"single worker takes everything", 10, 1, Partition{10}},
		{"even split", 100, 4, Partition{25, 25, 25, 25}},
		{"remainder goes to last worker", 101, 4, Partition{25, 25, 25, 26}},
		{"fewer samples than workers", 3, 4, Partition{0, 0, 0, 3}},
		{"one sample many workers", 1, 8, Partition{0, 0, 0, 0, 0, 0, 0, 1}},
		{"large remainder stays on last worker", 15, 8, Partition{1, 1, 1, 1, 1, 1, 1, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPartition(tt.samples, tt.workers)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.samples, got.Sum())
		})
	}
}

func TestNewPartition_SumInvariant(t *testing.T) {
	t.Parallel()

	for samples := uint64(1); samples <= 200; samples++ {
		for workers := 1; workers <= 33; workers++ {
			p, err := NewPartition(samples, workers)
			require.NoError(t, err)
			require.Len(t, p, workers)
			require.Equal(t, samples, p.Sum(), "samples=%d workers=%d", samples, workers)
		}
	}

	p, err := NewPartition(1<<62+7, 1024)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<62+7), p.Sum())
}

func TestNewPartition_InvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := NewPartition(0, 4)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPartition(10, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPartition(10, -3)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPartition_Offsets(t *testing.T) {
	t.Parallel()

	p := Partition{25, 25, 25, 26}
	require.Equal(t, []uint64{0, 25, 50, 75}, p.Offsets())
	require.Empty(t, Partition{}.Offsets())
}

func TestPartition_Tasks(t *testing.T) {
	t.Parallel()

	p := Partition{2, 2, 3}
	tasks := p.Tasks(func(id int) uint64 { return uint64(100 + id) })

	require.Equal(t, []Task{
		{WorkerID: 0, Samples: 2, Seed: 100},
		{WorkerID: 1, Samples: 2, Seed: 101},
		{WorkerID: 2, Samples: 3, Seed: 102},
	}, tasks)
}
