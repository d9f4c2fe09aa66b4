package drawingboard

import "image/color"

// RectMode selects how the four numbers passed to Rectangle (and a Button's
// bounds) are interpreted.
type RectMode uint8

const (
	RectCorner  RectMode = iota // (x, y) top-left corner, (w, h) size
	RectCorners                 // (x, y) one corner, (w, h) the opposite corner
	RectCenter                  // (x, y) centre, (w, h) size
)

func (m RectMode) String() string {
	switch m {
	case RectCorner:
		return "corner"
	case RectCorners:
		return "corners"
	case RectCenter:
		return "center"
	default:
		return "unknown"
	}
}

// resolve converts rect-mode arguments to a top-left corner and a
// non-negative size. Drawing and hit-testing both go through here, so a
// widget's clickable region always matches what Rectangle draws.
func (m RectMode) resolve(x, y, w, h float64) Rect {
	var r Rect
	switch m {
	case RectCorners:
		r = Rect{X: x, Y: y, Width: w - x, Height: h - y}
	case RectCenter:
		r = Rect{X: x - w/2, Y: y - h/2, Width: w, Height: h}
	default:
		r = Rect{X: x, Y: y, Width: w, Height: h}
	}
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// ImageMode selects how DrawImage interprets its position.
type ImageMode uint8

const (
	ImageCorner ImageMode = iota // (x, y) is the top-left corner
	ImageCenter                  // (x, y) is the image centre
)

// StrokeCap selects the line cap used for strokes.
type StrokeCap uint8

const (
	CapFlat   StrokeCap = iota // butt caps, the stroke ends at the endpoint
	CapRound                   // round caps
	CapSquare                  // square caps extending half the width
)

// HAlign controls horizontal text alignment relative to the anchor point.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign controls vertical text alignment relative to the anchor point.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Style is the full pen/brush/font state used by the drawing primitives.
// It is a plain value; copying it snapshots it.
type Style struct {
	StrokeColor color.NRGBA
	StrokeWidth float64
	Cap         StrokeCap
	Filled      bool
	FillColor   color.NRGBA
	TextColor   color.NRGBA
	Font        *Font
	FontSize    float64
	HAlign      HAlign
	VAlign      VAlign
	RectMode    RectMode
	ImageMode   ImageMode
	ColorMode   ColorMode
}

// DefaultStyle returns the initial style of a new board: black 1px stroke,
// no fill, black 12pt text in the default font, centre rect and image modes.
func DefaultStyle() Style {
	return Style{
		StrokeColor: black,
		StrokeWidth: 1,
		Cap:         CapFlat,
		FillColor:   black,
		TextColor:   black,
		Font:        DefaultFont(),
		FontSize:    12,
		HAlign:      AlignLeft,
		VAlign:      AlignTop,
		RectMode:    RectCenter,
		ImageMode:   ImageCenter,
		ColorMode:   ColorRGB,
	}
}

// hasStroke reports whether strokes would be visible.
func (s *Style) hasStroke() bool {
	return s.StrokeColor.A > 0 && s.StrokeWidth > 0
}

// styleStack holds snapshots taken by SaveStyle.
type styleStack struct {
	saved []Style
}

func (s *styleStack) push(st Style) {
	s.saved = append(s.saved, st)
}

func (s *styleStack) pop() Style {
	top := len(s.saved) - 1
	if top < 0 {
		invariant("RestoreStyle", "no matching SaveStyle")
	}
	st := s.saved[top]
	s.saved = s.saved[:top]
	return st
}
