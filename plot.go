package drawingboard

import (
	"fmt"
	"math"
)

// axesInset is the margin left of and below the plot area reserved for the
// axes.
const axesInset = 25

// plotFrame maps data coordinates onto a plot area.
type plotFrame struct {
	area       Rect // axes area, data is drawn inside
	minX, maxX float64
	minY, maxY float64
}

func validateSeries(xs, ys []float64) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs) = %d, len(ys) = %d", ErrPlotData, len(xs), len(ys))
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return fmt.Errorf("%w: point %d = (%v, %v) is not finite", ErrPlotData, i, xs[i], ys[i])
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// dataRange returns the range of v widened by scale around its centre. A
// flat series is widened by one unit so it maps to the middle of the axis.
func dataRange(v []float64, scale float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	mid, half := (lo+hi)/2, (hi-lo)/2*scale
	return mid - half, mid + half
}

func newPlotFrame(bounds Rect, xs, ys []float64, scaleX, scaleY float64) plotFrame {
	f := plotFrame{
		area: Rect{
			X:      bounds.X + axesInset,
			Y:      bounds.Y,
			Width:  bounds.Width - axesInset,
			Height: bounds.Height - axesInset,
		},
	}
	f.minX, f.maxX = dataRange(xs, scaleX)
	f.minY, f.maxY = dataRange(ys, scaleY)
	return f
}

// toScreen maps a data point; y grows upward in data space.
func (f plotFrame) toScreen(x, y float64) (float64, float64) {
	sx := Lerp(x, f.minX, f.maxX, f.area.X, f.area.X+f.area.Width)
	sy := Lerp(y, f.minY, f.maxY, f.area.Y+f.area.Height, f.area.Y)
	return sx, sy
}

// drawAxes paints the plot background, the axes frame and, when zero lies
// inside the data range, the zero lines.
func (b *Board) drawAxes(bounds Rect, f plotFrame) {
	b.RectMode(RectCorner)
	b.NoStroke()
	b.SetFill(white)
	b.Rectangle(bounds.X, bounds.Y, bounds.Width, bounds.Height)

	b.NoFill()
	b.SetStroke(black)
	b.StrokeWidth(2)
	b.Rectangle(f.area.X, f.area.Y, f.area.Width, f.area.Height)

	b.StrokeWidth(1)
	b.SetStroke(grey)
	if f.minX < 0 && f.maxX > 0 {
		zx, _ := f.toScreen(0, f.minY)
		b.Line(zx, f.area.Y, zx, f.area.Y+f.area.Height)
	}
	if f.minY < 0 && f.maxY > 0 {
		_, zy := f.toScreen(f.minX, 0)
		b.Line(f.area.X, zy, f.area.X+f.area.Width, zy)
	}
}

// LinePlot draws ys against xs as a connected line inside bounds, with axes
// along the left and bottom edges. The style is left unchanged.
func (b *Board) LinePlot(xs, ys []float64, bounds Rect) error {
	if err := validateSeries(xs, ys); err != nil {
		return err
	}
	b.SaveStyle()
	defer b.RestoreStyle()

	f := newPlotFrame(bounds, xs, ys, 1, 1.1)
	b.drawAxes(bounds, f)

	b.SetStroke(black)
	b.StrokeWidth(1.5)
	px, py := f.toScreen(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		x, y := f.toScreen(xs[i], ys[i])
		b.Line(px, py, x, y)
		px, py = x, y
	}
	return nil
}

// ScatterPlot draws each (xs[i], ys[i]) as a dot inside bounds, with axes
// along the left and bottom edges. The style is left unchanged.
func (b *Board) ScatterPlot(xs, ys []float64, bounds Rect) error {
	if err := validateSeries(xs, ys); err != nil {
		return err
	}
	b.SaveStyle()
	defer b.RestoreStyle()

	f := newPlotFrame(bounds, xs, ys, 1.01, 1.01)
	b.drawAxes(bounds, f)

	b.NoStroke()
	b.SetFill(black)
	for i := range xs {
		x, y := f.toScreen(xs[i], ys[i])
		b.Circle(x, y, 2)
	}
	return nil
}
