package drawingboard

import (
	"fmt"
	"image"
	_ "image/gif" // decoders for LoadImage
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Point draws a dot in the stroke color with a radius of the stroke width.
func (b *Board) Point(x, y float64) {
	if !b.style.hasStroke() {
		return
	}
	st := b.style
	st.Filled = true
	st.FillColor = st.StrokeColor
	st.StrokeWidth = 0
	r := b.style.StrokeWidth
	b.surface.Ellipse(x, y, r, r, &st)
}

// Line draws a segment in the stroke color.
func (b *Board) Line(x1, y1, x2, y2 float64) {
	b.surface.Line(x1, y1, x2, y2, &b.style)
}

// Arc draws part of the ellipse centred on (x, y) with radii (rx, ry),
// starting at startDeg and sweeping sweepDeg degrees clockwise. A filled arc
// is a pie slice.
func (b *Board) Arc(x, y, rx, ry, startDeg, sweepDeg float64) {
	start := startDeg * degToRad
	b.surface.Arc(x, y, rx, ry, start, start+sweepDeg*degToRad, &b.style)
}

// Bezier draws a cubic curve from (x1, y1) to (x4, y4) with control points
// (x2, y2) and (x3, y3).
func (b *Board) Bezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	b.surface.Bezier(Vec2{x1, y1}, Vec2{x2, y2}, Vec2{x3, y3}, Vec2{x4, y4}, &b.style)
}

// Rectangle draws a rectangle interpreted under the current RectMode:
// RectCorner takes the top-left corner and size, RectCorners two opposite
// corners, RectCenter the centre and size.
func (b *Board) Rectangle(x, y, w, h float64) {
	b.surface.Rect(b.style.RectMode.resolve(x, y, w, h), &b.style)
}

// Square draws a square of the given side. In RectCorners mode (x, y) is
// the top-left corner.
func (b *Board) Square(x, y, side float64) {
	mode := b.style.RectMode
	if mode == RectCorners {
		mode = RectCorner
	}
	b.surface.Rect(mode.resolve(x, y, side, side), &b.style)
}

// Triangle draws the triangle through three points.
func (b *Board) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	b.surface.Polygon([]Vec2{{x1, y1}, {x2, y2}, {x3, y3}}, &b.style)
}

// Polygon draws the closed polygon through pts.
func (b *Board) Polygon(pts ...Vec2) {
	b.surface.Polygon(pts, &b.style)
}

// Ellipse draws the ellipse centred on (x, y) with radii (rx, ry).
func (b *Board) Ellipse(x, y, rx, ry float64) {
	b.surface.Ellipse(x, y, rx, ry, &b.style)
}

// Circle draws the circle centred on (x, y) with radius r.
func (b *Board) Circle(x, y, r float64) {
	b.surface.Ellipse(x, y, r, r, &b.style)
}

// Text draws str at (x, y) in the text color, aligned per TextAlign.
func (b *Board) Text(str string, x, y float64) {
	b.surface.Text(str, x, y, &b.style)
}

// TextStyled draws str in the bold and/or italic variant of the built-in
// font without changing the current font.
func (b *Board) TextStyled(str string, x, y float64, bold, italic bool) {
	var fs FontStyle
	if bold {
		fs |= FontBold
	}
	if italic {
		fs |= FontItalic
	}
	st := b.style
	st.Font = GoFont(fs)
	b.surface.Text(str, x, y, &st)
}

// MeasureText returns the size str would occupy with the current font.
func (b *Board) MeasureText(str string) (w, h float64) {
	return b.surface.MeasureText(str, &b.style)
}

// DrawImage draws img at its natural size, positioned per ImageMode.
func (b *Board) DrawImage(img image.Image, x, y float64) {
	r := img.Bounds()
	b.DrawImageSized(img, x, y, float64(r.Dx()), float64(r.Dy()))
}

// DrawImageSized draws img scaled to w x h, positioned per ImageMode.
func (b *Board) DrawImageSized(img image.Image, x, y, w, h float64) {
	if b.style.ImageMode == ImageCenter {
		x -= w / 2
		y -= h / 2
	}
	b.surface.Image(img, Rect{X: x, Y: y, Width: w, Height: h})
}

// LoadImage decodes a PNG, JPEG or GIF file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}
