package drawingboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertAffine(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
			return
		}
	}
}

// expectInvariant runs fn and fails unless it panics with an *InvariantError.
func expectInvariant(t *testing.T, fn func()) *InvariantError {
	t.Helper()
	var ie *InvariantError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic, got none")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &ie) {
				t.Fatalf("panic value = %v, want *InvariantError", r)
			}
		}()
		fn()
	}()
	return ie
}

// --- fake host ---

type fakeHost struct {
	x, y     int
	repaints int
}

func (h *fakeHost) CursorPosition() (int, int) { return h.x, h.y }
func (h *fakeHost) RequestRepaint()            { h.repaints++ }

func (h *fakeHost) take() bool {
	r := h.repaints > 0
	h.repaints = 0
	return r
}

// --- recording surface ---

// recordingSurface implements Surface without rasterizing. It keeps the
// transform like the real surfaces and logs every primitive.
type recordingSurface struct {
	w, h  int
	m     Affine
	calls []string
	rects []Rect
	last  Style
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h, m: IdentityAffine}
}

func (s *recordingSurface) record(st *Style, format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	if st != nil {
		s.last = *st
	}
}

func (s *recordingSurface) Translate(dx, dy float64) { s.m = s.m.Translate(dx, dy) }
func (s *recordingSurface) Rotate(deg float64)       { s.m = s.m.Rotate(deg) }
func (s *recordingSurface) ResetTransform()          { s.m = IdentityAffine }
func (s *recordingSurface) Transform() Affine        { return s.m }
func (s *recordingSurface) Size() (int, int)         { return s.w, s.h }

func (s *recordingSurface) Paint(c color.NRGBA) {
	s.record(nil, "paint %d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

func (s *recordingSurface) Line(x1, y1, x2, y2 float64, st *Style) {
	s.record(st, "line %g,%g %g,%g", x1, y1, x2, y2)
}

func (s *recordingSurface) Rect(r Rect, st *Style) {
	s.rects = append(s.rects, r)
	s.record(st, "rect %g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

func (s *recordingSurface) Ellipse(cx, cy, rx, ry float64, st *Style) {
	s.record(st, "ellipse %g,%g %g,%g", cx, cy, rx, ry)
}

func (s *recordingSurface) Arc(cx, cy, rx, ry, start, end float64, st *Style) {
	s.record(st, "arc %g,%g %g,%g %.4f,%.4f", cx, cy, rx, ry, start, end)
}

func (s *recordingSurface) Polygon(pts []Vec2, st *Style) {
	s.record(st, "polygon %d", len(pts))
}

func (s *recordingSurface) Bezier(p0, p1, p2, p3 Vec2, st *Style) {
	s.record(st, "bezier %g,%g %g,%g", p0.X, p0.Y, p3.X, p3.Y)
}

func (s *recordingSurface) Text(str string, x, y float64, st *Style) {
	s.record(st, "text %q %g,%g", str, x, y)
}

func (s *recordingSurface) MeasureText(str string, st *Style) (float64, float64) {
	return float64(len(str)) * st.FontSize / 2, st.FontSize
}

func (s *recordingSurface) Image(img image.Image, r Rect) {
	s.rects = append(s.rects, r)
	s.record(nil, "image %g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

func (s *recordingSurface) Snapshot() *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, s.w, s.h))
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
	s.rects = s.rects[:0]
}

// newTestBoard returns a headless board drawing onto a recording surface.
func newTestBoard(t *testing.T, w, h int) (*Board, *recordingSurface) {
	t.Helper()
	rs := newRecordingSurface(w, h)
	b, err := NewBoardWithSurface(Config{Width: w, Height: h}, rs)
	if err != nil {
		t.Fatalf("NewBoardWithSurface: %v", err)
	}
	b.ScreenshotDir = t.TempDir()
	return b, rs
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// captureLogs routes the package logger into a buffer at debug level for
// the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}
