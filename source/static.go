package source

import (
	"fmt"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Static replays a fixed slice of points.
//
// When the slice is exhausted the stream starts again from the first point.
// Static is useful for tests that need a known inside count.
type Static struct {
	points []types.Point
	next   int
}

var _ types.PointSource = (*Static)(nil)

// NewStatic creates a static point source.
//
// Parameters:
//   - points: Points to replay (must not be empty)
//
// Returns:
//   - *Static: Point source replaying points in order
//
// Example:
//
//	src := source.NewStatic([]types.Point{{X: 0.1, Y: 0.2}, {X: 0.9, Y: 0.9}})
//	x, y := src.Next() // 0.1, 0.2
func NewStatic(points []types.Point) *Static {
	cp := make([]types.Point, len(points))
	copy(cp, points)

	return &Static{points: cp}
}

// Next returns the next point.
func (s *Static) Next() (x, y float64) {
	p := s.points[s.next]
	s.next++
	if s.next == len(s.points) {
		s.next = 0
	}

	return p.X, p.Y
}

// StaticFactory hands each worker its own contiguous segment of a stream.
//
// The segments follow partition: worker i replays
// points[offset_i : offset_i+partition[i]]. The optional order remaps which
// segment a worker receives (order[i] is the segment index for worker i);
// pass nil for the identity mapping.
//
// Parameters:
//   - points: Complete stream, len(points) must equal partition.Sum()
//   - partition: Shares used to cut the stream
//   - order: Optional permutation of segment indices
//
// Returns:
//   - types.SourceFactory: Factory for the threaded or sequential strategy
//   - error: If the stream and partition disagree or order is not a permutation
func StaticFactory(points []types.Point, partition types.Partition, order []int) (types.SourceFactory, error) {
	if uint64(len(points)) != partition.Sum() {
		return nil, fmt.Errorf("stream has %d points, partition covers %d", len(points), partition.Sum())
	}
	if order == nil {
		order = make([]int, len(partition))
		for i := range order {
			order[i] = i
		}
	}
	if len(order) != len(partition) {
		return nil, fmt.Errorf("order has %d entries, partition has %d", len(order), len(partition))
	}

	offsets := partition.Offsets()
	used := make([]bool, len(partition))
	segments := make([][]types.Point, len(partition))
	for worker, seg := range order {
		if seg < 0 || seg >= len(partition) || used[seg] {
			return nil, fmt.Errorf("order is not a permutation: %v", order)
		}
		used[seg] = true
		segments[worker] = points[offsets[seg] : offsets[seg]+partition[seg]]
	}

	return func(task types.Task) types.PointSource {
		seg := segments[task.WorkerID]
		if len(seg) == 0 {
			return NewStatic([]types.Point{{X: 1, Y: 1}})
		}

		return NewStatic(seg)
	}, nil
}

// Draw collects n points from src.
func Draw(src types.PointSource, n int) []types.Point {
	points := make([]types.Point, n)
	for i := range points {
		points[i].X, points[i].Y = src.Next()
	}

	return points
}

// CountInside returns how many points pass the inclusion test.
func CountInside(points []types.Point) uint64 {
	var inside uint64
	for _, p := range points {
		if p.Inside() {
			inside++
		}
	}

	return inside
}
