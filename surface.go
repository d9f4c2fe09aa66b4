package drawingboard

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Surface is the 2D drawing target behind a Board. Every primitive is
// parameterized by a Style and drawn through the surface's cumulative
// transform, which Translate and Rotate compose in local space.
//
// Two implementations ship with the package: EbitenSurface draws onto an
// *ebiten.Image for the interactive window, and GGSurface rasterizes in
// software with fogleman/gg for headless runs and export.
type Surface interface {
	Transformer

	// ResetTransform restores the identity transform.
	ResetTransform()
	// Transform returns the current cumulative transform.
	Transform() Affine
	// Size returns the canvas size in pixels.
	Size() (w, h int)

	// Paint covers the whole canvas with c, ignoring the transform. A
	// translucent c blends over the previous contents.
	Paint(c color.NRGBA)

	Line(x1, y1, x2, y2 float64, st *Style)
	Rect(r Rect, st *Style)
	Ellipse(cx, cy, rx, ry float64, st *Style)
	// Arc draws the elliptical arc between start and end radians, measured
	// clockwise from the positive x axis. Filled arcs are pie slices.
	Arc(cx, cy, rx, ry, start, end float64, st *Style)
	Polygon(pts []Vec2, st *Style)
	Bezier(p0, p1, p2, p3 Vec2, st *Style)

	// Text draws s anchored at (x, y) according to st.HAlign and st.VAlign.
	Text(s string, x, y float64, st *Style)
	MeasureText(s string, st *Style) (w, h float64)

	// Image draws img scaled into r.
	Image(img image.Image, r Rect)

	// Snapshot copies the canvas into a straight-alpha image.
	Snapshot() *image.NRGBA
}

// arcSegments picks a polyline resolution for an arc of the given sweep so
// that segments stay around 2px long on screen.
func arcSegments(rx, ry, sweep, scale float64) int {
	r := math.Max(math.Abs(rx), math.Abs(ry)) * scale
	n := int(math.Ceil(math.Abs(sweep) * r / 2))
	return max(8, min(n, 256))
}

// appendArc appends points along an elliptical arc to pts.
func appendArc(pts []Vec2, cx, cy, rx, ry, start, end float64, n int) []Vec2 {
	step := (end - start) / float64(n)
	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(start + step*float64(i))
		pts = append(pts, Vec2{X: cx + rx*cos, Y: cy + ry*sin})
	}
	return pts
}

// alignFactors maps alignment to anchor fractions of the text box, where 0
// is the left or top edge and 1 the right or bottom edge.
func alignFactors(h HAlign, v VAlign) (ax, ay float64) {
	switch h {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch v {
	case AlignMiddle:
		ay = 0.5
	case AlignBottom:
		ay = 1
	}
	return ax, ay
}

// styleFont returns the style's font, falling back to the default.
func styleFont(st *Style) *Font {
	if st.Font == nil {
		return DefaultFont()
	}
	return st.Font
}

// toNRGBAImage converts img to straight-alpha NRGBA, copying unless img
// already is one.
func toNRGBAImage(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, toNRGBA(img.At(x, y)))
		}
	}
	return out
}

// premultipliedPixels returns img as tightly packed premultiplied RGBA
// bytes with its top-left pixel first.
func premultipliedPixels(img image.Image) []byte {
	b := img.Bounds()
	if r, ok := img.(*image.RGBA); ok && r.Rect.Min == (image.Point{}) && r.Stride == 4*b.Dx() {
		return r.Pix[:4*b.Dx()*b.Dy()]
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out.Pix
}
