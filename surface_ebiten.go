package drawingboard

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel returns the 1x1 white source used for solid triangles. It is a
// sub-image of a 3x3 image so that sampling at the edges stays white.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenSurface draws onto an *ebiten.Image. Shapes are built as vector
// paths with their points already mapped through the current transform,
// tessellated, and submitted with DrawTriangles.
type EbitenSurface struct {
	dst *ebiten.Image
	m   Affine

	vs  []ebiten.Vertex
	is  []uint16
	pts []Vec2

	// one scratch texture per source size; see ebitenImage
	uploads map[image.Point]*ebiten.Image
}

// maxUploadSizes bounds the scratch textures kept between frames.
const maxUploadSizes = 8

// NewEbitenSurface returns a surface drawing onto dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, m: IdentityAffine}
}

// Target returns the image being drawn on.
func (s *EbitenSurface) Target() *ebiten.Image { return s.dst }

func (s *EbitenSurface) Translate(dx, dy float64) { s.m = s.m.Translate(dx, dy) }
func (s *EbitenSurface) Rotate(degrees float64)   { s.m = s.m.Rotate(degrees) }
func (s *EbitenSurface) ResetTransform()          { s.m = IdentityAffine }
func (s *EbitenSurface) Transform() Affine        { return s.m }

func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// geoM converts the current transform into an ebiten.GeoM.
func (s *EbitenSurface) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, s.m[0])
	g.SetElement(1, 0, s.m[1])
	g.SetElement(0, 1, s.m[2])
	g.SetElement(1, 1, s.m[3])
	g.SetElement(0, 2, s.m[4])
	g.SetElement(1, 2, s.m[5])
	return g
}

func (s *EbitenSurface) Paint(c color.NRGBA) {
	w, h := s.Size()
	var p vector.Path
	p.MoveTo(0, 0)
	p.LineTo(float32(w), 0)
	p.LineTo(float32(w), float32(h))
	p.LineTo(0, float32(h))
	p.Close()
	s.fill(&p, c)
}

// path builds a transformed polyline path from local points.
func (s *EbitenSurface) path(pts []Vec2, closed bool) *vector.Path {
	var p vector.Path
	for i, pt := range pts {
		x, y := s.m.Apply(pt.X, pt.Y)
		if i == 0 {
			p.MoveTo(float32(x), float32(y))
		} else {
			p.LineTo(float32(x), float32(y))
		}
	}
	if closed {
		p.Close()
	}
	return &p
}

func (s *EbitenSurface) fill(p *vector.Path, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.submit(c, ebiten.FillRuleNonZero)
}

func (s *EbitenSurface) stroke(p *vector.Path, st *Style) {
	if !st.hasStroke() {
		return
	}
	op := &vector.StrokeOptions{
		Width:      float32(st.StrokeWidth * s.m.Scale()),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	}
	switch st.Cap {
	case CapRound:
		op.LineCap = vector.LineCapRound
	case CapSquare:
		op.LineCap = vector.LineCapSquare
	default:
		op.LineCap = vector.LineCapButt
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.submit(st.StrokeColor, ebiten.FillRuleFillAll)
}

// submit colors the pending vertices and draws them.
func (s *EbitenSurface) submit(c color.NRGBA, rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	r, g, b, a := premultiplied(c)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	op.FillRule = rule
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(s.vs, s.is, whitePixel(), &op)
}

// shape fills (when enabled) and strokes a closed polyline.
func (s *EbitenSurface) shape(pts []Vec2, st *Style) {
	p := s.path(pts, true)
	if st.Filled {
		s.fill(p, st.FillColor)
	}
	s.stroke(p, st)
}

func (s *EbitenSurface) Line(x1, y1, x2, y2 float64, st *Style) {
	s.pts = append(s.pts[:0], Vec2{x1, y1}, Vec2{x2, y2})
	s.stroke(s.path(s.pts, false), st)
}

func (s *EbitenSurface) Rect(r Rect, st *Style) {
	s.pts = append(s.pts[:0],
		Vec2{r.X, r.Y},
		Vec2{r.X + r.Width, r.Y},
		Vec2{r.X + r.Width, r.Y + r.Height},
		Vec2{r.X, r.Y + r.Height})
	s.shape(s.pts, st)
}

func (s *EbitenSurface) Ellipse(cx, cy, rx, ry float64, st *Style) {
	n := arcSegments(rx, ry, 2*math.Pi, s.m.Scale())
	s.pts = appendArc(s.pts[:0], cx, cy, rx, ry, 0, 2*math.Pi, n)
	s.pts = s.pts[:len(s.pts)-1] // last point duplicates the first
	s.shape(s.pts, st)
}

func (s *EbitenSurface) Arc(cx, cy, rx, ry, start, end float64, st *Style) {
	n := arcSegments(rx, ry, end-start, s.m.Scale())
	if st.Filled {
		s.pts = append(s.pts[:0], Vec2{cx, cy})
		s.pts = appendArc(s.pts, cx, cy, rx, ry, start, end, n)
		s.fill(s.path(s.pts, true), st.FillColor)
	}
	s.pts = appendArc(s.pts[:0], cx, cy, rx, ry, start, end, n)
	s.stroke(s.path(s.pts, false), st)
}

func (s *EbitenSurface) Polygon(pts []Vec2, st *Style) {
	if len(pts) < 2 {
		return
	}
	s.shape(pts, st)
}

func (s *EbitenSurface) Bezier(p0, p1, p2, p3 Vec2, st *Style) {
	var p vector.Path
	x0, y0 := s.m.Apply(p0.X, p0.Y)
	x1, y1 := s.m.Apply(p1.X, p1.Y)
	x2, y2 := s.m.Apply(p2.X, p2.Y)
	x3, y3 := s.m.Apply(p3.X, p3.Y)
	p.MoveTo(float32(x0), float32(y0))
	p.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
	s.stroke(&p, st)
}

// face resolves the style's font at its size, falling back to the default
// font if the style's font cannot be parsed.
func (s *EbitenSurface) face(st *Style) *text.GoTextFace {
	f := styleFont(st)
	face, err := f.ebitenFace(st.FontSize)
	if err != nil {
		Logger().Warn("font unavailable, using default", "font", f.Name(), "error", err)
		face, _ = DefaultFont().ebitenFace(st.FontSize)
	}
	return face
}

func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func (s *EbitenSurface) Text(str string, x, y float64, st *Style) {
	if str == "" || st.TextColor.A == 0 {
		return
	}
	face := s.face(st)
	op := &text.DrawOptions{}
	op.LineSpacing = lineHeight(face)
	switch st.HAlign {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	switch st.VAlign {
	case AlignMiddle:
		op.SecondaryAlign = text.AlignCenter
	case AlignBottom:
		op.SecondaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y)
	g := s.geoM()
	op.GeoM.Concat(g)
	op.ColorScale.ScaleWithColor(st.TextColor)
	text.Draw(s.dst, str, face, op)
}

func (s *EbitenSurface) MeasureText(str string, st *Style) (float64, float64) {
	face := s.face(st)
	return text.Measure(str, face, lineHeight(face))
}

func (s *EbitenSurface) Image(img image.Image, r Rect) {
	src := s.ebitenImage(img)
	if src == nil {
		return
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.GeoM.Concat(s.geoM())
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, op)
}

// ebitenImage returns img as a texture. An *ebiten.Image is used as is.
// Any other image is written into a scratch texture of its size on every
// draw, so edits to its pixels between frames are always shown. It returns
// nil for an empty image.
func (s *EbitenSurface) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	tex, ok := s.uploads[size]
	if !ok {
		if s.uploads == nil || len(s.uploads) >= maxUploadSizes {
			s.uploads = make(map[image.Point]*ebiten.Image)
		}
		tex = ebiten.NewImage(size.X, size.Y)
		s.uploads[size] = tex
	}
	tex.WritePixels(premultipliedPixels(img))
	return tex
}

func (s *EbitenSurface) Snapshot() *image.NRGBA {
	w, h := s.Size()
	pixels := make([]byte, 4*w*h)
	s.dst.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}
