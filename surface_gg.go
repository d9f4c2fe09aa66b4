package drawingboard

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// GGSurface rasterizes in software with fogleman/gg. It needs no window or
// GPU, so it backs headless boards and file export.
type GGSurface struct {
	dc *gg.Context
	m  Affine
}

// NewGGSurface returns a transparent w x h surface.
func NewGGSurface(w, h int) *GGSurface {
	return &GGSurface{dc: gg.NewContext(w, h), m: IdentityAffine}
}

// Context exposes the underlying gg context.
func (s *GGSurface) Context() *gg.Context { return s.dc }

func (s *GGSurface) Translate(dx, dy float64) {
	s.m = s.m.Translate(dx, dy)
	s.dc.Translate(dx, dy)
}

func (s *GGSurface) Rotate(degrees float64) {
	s.m = s.m.Rotate(degrees)
	s.dc.Rotate(gg.Radians(degrees))
}

func (s *GGSurface) ResetTransform() {
	s.m = IdentityAffine
	s.dc.Identity()
}

func (s *GGSurface) Transform() Affine { return s.m }

func (s *GGSurface) Size() (int, int) { return s.dc.Width(), s.dc.Height() }

func (s *GGSurface) Paint(c color.NRGBA) {
	s.dc.Push()
	s.dc.Identity()
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.SetColor(c)
	s.dc.Fill()
	s.dc.Pop()
}

func (s *GGSurface) applyStroke(st *Style) {
	s.dc.SetColor(st.StrokeColor)
	s.dc.SetLineWidth(st.StrokeWidth)
	switch st.Cap {
	case CapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case CapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

// finish fills (when enabled) and strokes the current path, then clears it.
func (s *GGSurface) finish(st *Style, fillable bool) {
	if fillable && st.Filled && st.FillColor.A > 0 {
		s.dc.SetColor(st.FillColor)
		s.dc.FillPreserve()
	}
	if st.hasStroke() {
		s.applyStroke(st)
		s.dc.StrokePreserve()
	}
	s.dc.ClearPath()
}

func (s *GGSurface) Line(x1, y1, x2, y2 float64, st *Style) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.finish(st, false)
}

func (s *GGSurface) Rect(r Rect, st *Style) {
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.finish(st, true)
}

func (s *GGSurface) Ellipse(cx, cy, rx, ry float64, st *Style) {
	s.dc.DrawEllipse(cx, cy, rx, ry)
	s.finish(st, true)
}

func (s *GGSurface) Arc(cx, cy, rx, ry, start, end float64, st *Style) {
	if st.Filled && st.FillColor.A > 0 {
		s.dc.MoveTo(cx, cy)
		s.dc.DrawEllipticalArc(cx, cy, rx, ry, start, end)
		s.dc.ClosePath()
		s.dc.SetColor(st.FillColor)
		s.dc.Fill()
	}
	if st.hasStroke() {
		s.dc.NewSubPath()
		s.dc.DrawEllipticalArc(cx, cy, rx, ry, start, end)
		s.applyStroke(st)
		s.dc.Stroke()
	}
}

func (s *GGSurface) Polygon(pts []Vec2, st *Style) {
	if len(pts) < 2 {
		return
	}
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.finish(st, true)
}

func (s *GGSurface) Bezier(p0, p1, p2, p3 Vec2, st *Style) {
	s.dc.MoveTo(p0.X, p0.Y)
	s.dc.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	s.finish(st, false)
}

// setFace selects the style's font, falling back to the default font.
func (s *GGSurface) setFace(st *Style) {
	f := styleFont(st)
	face, err := f.ggFace(st.FontSize)
	if err != nil {
		Logger().Warn("font unavailable, using default", "font", f.Name(), "error", err)
		face, _ = DefaultFont().ggFace(st.FontSize)
	}
	s.dc.SetFontFace(face)
}

func (s *GGSurface) Text(str string, x, y float64, st *Style) {
	if str == "" || st.TextColor.A == 0 {
		return
	}
	s.setFace(st)
	ax, ay := alignFactors(st.HAlign, st.VAlign)
	s.dc.SetColor(st.TextColor)
	// gg anchors vertically on the baseline: ay = 1 puts the top at y.
	s.dc.DrawStringAnchored(str, x, y, ax, 1-ay)
}

func (s *GGSurface) MeasureText(str string, st *Style) (float64, float64) {
	s.setFace(st)
	return s.dc.MeasureString(str)
}

func (s *GGSurface) Image(img image.Image, r Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	s.dc.Push()
	s.dc.Translate(r.X, r.Y)
	s.dc.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	s.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	s.dc.Pop()
}

func (s *GGSurface) Snapshot() *image.NRGBA {
	src := s.dc.Image()
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}
