package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// PointsSize is the side length of the square Points chart.
const PointsSize = 12 * vg.Centimeter

var (
	insideColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	outsideColor = color.RGBA{R: 40, G: 70, B: 220, A: 255}
)

// Points draws sampled points in the unit square, colored by whether they fall
// inside the quarter circle, with the circle arc overlaid. The title carries
// the estimate derived from the points.
//
// Example:
//
//	pts := source.Draw(source.NewPCG(42), 5000)
//	err := chart.Points(pts, "results/points.png")
func Points(points []types.Point, path string) error {
	p, err := pointsPlot(points)
	if err != nil {
		return err
	}

	return save(p.Plot, path, PointsSize, PointsSize)
}

// WritePointsPNG renders the Points chart as a size x size PNG to w.
func WritePointsPNG(w io.Writer, points []types.Point, size vg.Length) error {
	p, err := pointsPlot(points)
	if err != nil {
		return err
	}

	canvas := vgimg.PngCanvas{Canvas: vgimg.New(size, size)}
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

func pointsPlot(points []types.Point) (*hplot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	in := make(plotter.XYs, 0, len(points))
	out := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.Inside() {
			in = append(in, plotter.XY{X: pt.X, Y: pt.Y})
		} else {
			out = append(out, plotter.XY{X: pt.X, Y: pt.Y})
		}
	}

	p := hplot.New()
	p.Title.Text = fmt.Sprintf("n = %d, pi ~ %.6f", len(points),
		types.Estimate(uint64(len(in)), uint64(len(points))))
	p.X.Label.Text = "x"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Label.Text = "y"
	p.Y.Min, p.Y.Max = 0, 1

	radius := vg.Points(1)
	for _, group := range []struct {
		xys   plotter.XYs
		color color.Color
		label string
	}{
		{in, insideColor, "inside"},
		{out, outsideColor, "outside"},
	} {
		if len(group.xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(group.xys)
		if err != nil {
			return nil, fmt.Errorf("%s points: %w", group.label, err)
		}
		sc.Color = group.color
		sc.Radius = radius
		p.Add(sc)
		p.Legend.Add(group.label, sc)
	}

	arc := plotter.NewFunction(func(x float64) float64 {
		return math.Sqrt(max(0, 1-x*x))
	})
	arc.Samples = 200
	arc.Width = vg.Points(1.5)
	p.Add(arc, hplot.NewGrid())

	return p, nil
}
