package drawingboard

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
)

// Slider is a draggable handle on a one-dimensional track that maps its
// position onto [Min, Max]. Horizontal and vertical sliders share this type;
// Orientation selects which pointer coordinate the handle follows.
//
// The value is never stored. It is derived from the handle position on every
// call to Value, so the two cannot diverge.
type Slider struct {
	Label       string
	orientation Orientation
	min, max    float64
	handleSize  float64

	// track endpoints along the slider axis and the fixed cross coordinate
	start, end float64
	cross      float64

	pos    float64
	locked bool
	tween  *gween.Tween
}

// NewHorizontalSlider creates a slider whose handle moves along y = y between
// x1 and x2. The handle starts at x1, i.e. at min.
func NewHorizontalSlider(label string, handleSize, min, max, x1, x2, y float64) (*Slider, error) {
	return newSlider(label, Horizontal, handleSize, min, max, x1, x2, y)
}

// NewVerticalSlider creates a slider whose handle moves along x = x between
// y1 and y2. The handle starts at y1, i.e. at min.
func NewVerticalSlider(label string, handleSize, min, max, y1, y2, x float64) (*Slider, error) {
	return newSlider(label, Vertical, handleSize, min, max, y1, y2, x)
}

func newSlider(label string, o Orientation, handleSize, min, max, start, end, cross float64) (*Slider, error) {
	if !(min < max) {
		return nil, fmt.Errorf("%w: slider %q min = %v, max = %v", ErrInvalidSliderRange, label, min, max)
	}
	if !(handleSize > 0) {
		return nil, fmt.Errorf("%w: slider %q handle size = %v", ErrInvalidHandleSize, label, handleSize)
	}
	return &Slider{
		Label:       label,
		orientation: o,
		min:         min,
		max:         max,
		handleSize:  handleSize,
		start:       start,
		end:         end,
		cross:       cross,
		pos:         start,
	}, nil
}

// Orientation returns the slider's axis.
func (s *Slider) Orientation() Orientation { return s.orientation }

// Min returns the value at the start of the track.
func (s *Slider) Min() float64 { return s.min }

// Max returns the value at the end of the track.
func (s *Slider) Max() float64 { return s.max }

// HandleSize returns the handle radius used for hit-testing.
func (s *Slider) HandleSize() float64 { return s.handleSize }

// Track returns the track endpoints along the slider axis.
func (s *Slider) Track() (start, end float64) { return s.start, s.end }

// Position returns the handle's coordinate along the slider axis.
func (s *Slider) Position() float64 { return s.pos }

// Handle returns the handle centre in canvas coordinates.
func (s *Slider) Handle() Vec2 {
	if s.orientation == Vertical {
		return Vec2{X: s.cross, Y: s.pos}
	}
	return Vec2{X: s.pos, Y: s.cross}
}

// TrackStart returns the canvas point at the start of the track.
func (s *Slider) TrackStart() Vec2 { return s.axisPoint(s.start) }

// TrackEnd returns the canvas point at the end of the track.
func (s *Slider) TrackEnd() Vec2 { return s.axisPoint(s.end) }

func (s *Slider) axisPoint(v float64) Vec2 {
	if s.orientation == Vertical {
		return Vec2{X: s.cross, Y: v}
	}
	return Vec2{X: v, Y: s.cross}
}

// IsLocked reports whether the handle is currently grabbed.
func (s *Slider) IsLocked() bool { return s.locked }

// Value maps the handle position onto [Min, Max].
func (s *Slider) Value() float64 {
	return Lerp(s.pos, s.start, s.end, s.min, s.max)
}

// SetPosition moves the handle, clamped to the track.
func (s *Slider) SetPosition(p float64) {
	lo, hi := math.Min(s.start, s.end), math.Max(s.start, s.end)
	s.pos = Clamp(p, lo, hi)
}

// SetValue moves the handle to the position that maps to v. Values outside
// [Min, Max] end up at the nearest track endpoint.
func (s *Slider) SetValue(v float64) {
	s.SetPosition(Lerp(v, s.min, s.max, s.start, s.end))
}

// HitTest reports whether (x, y) is within HandleSize of the handle centre.
func (s *Slider) HitTest(x, y float64) bool {
	h := s.Handle()
	return math.Hypot(x-h.X, y-h.Y) <= s.handleSize
}

// axis picks the pointer coordinate the handle follows.
func (s *Slider) axis(x, y float64) float64 {
	if s.orientation == Vertical {
		return y
	}
	return x
}

// grab locks the slider if (x, y) hits the handle. A running tween is
// cancelled so the pointer takes over.
func (s *Slider) grab(x, y float64) {
	if s.HitTest(x, y) {
		s.locked = true
		s.tween = nil
	}
}

// track moves a locked handle to follow the pointer.
func (s *Slider) track(x, y float64) {
	if s.locked {
		s.SetPosition(s.axis(x, y))
	}
}

func (s *Slider) unlock() { s.locked = false }
