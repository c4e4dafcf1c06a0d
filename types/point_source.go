package types

// Point is a sample in the unit square.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Inside reports whether the point passes the inclusion test x² + y² <= 1.
func (p Point) Inside() bool {
	return p.X*p.X+p.Y*p.Y <= 1
}

// PointSource produces a stream of points with coordinates in [0, 1).
//
// A PointSource is owned by exactly one worker and is not safe for
// concurrent use.
type PointSource interface {
	// Next returns the next point of the stream.
	Next() (x, y float64)
}

// SourceFactory builds the point source for a task.
//
// The threaded and sequential strategies call the factory once per task,
// on the coordinator goroutine, before the worker starts.
type SourceFactory func(task Task) PointSource
