package drawingboard

// Button is a clickable rectangular widget. Its bounds are interpreted under
// the board's current RectMode, the same mode Rectangle uses, so the region
// that reacts to the pointer is the region a DrawButton callback draws with
// Rectangle(b.X, b.Y, b.Width, b.Height).
type Button struct {
	Label  string
	X, Y   float64
	Width  float64
	Height float64
	Action func()

	hovered bool
	pressed bool
}

// NewButton creates a button. action may be nil.
func NewButton(label string, x, y, w, h float64, action func()) *Button {
	return &Button{Label: label, X: x, Y: y, Width: w, Height: h, Action: action}
}

// IsHovered reports whether the pointer was over the button on the last frame.
func (b *Button) IsHovered() bool { return b.hovered }

// IsPressed reports whether a press landed on the button and has not been
// released yet.
func (b *Button) IsPressed() bool { return b.pressed }

// Bounds returns the button's region as a corner rectangle under mode.
func (b *Button) Bounds(mode RectMode) Rect {
	return mode.resolve(b.X, b.Y, b.Width, b.Height)
}

// HitTest reports whether (x, y) lies inside the button under mode.
func (b *Button) HitTest(mode RectMode, x, y float64) bool {
	return b.Bounds(mode).Contains(x, y)
}

// hover recomputes the hover flag.
func (b *Button) hover(mode RectMode, x, y float64) {
	b.hovered = b.HitTest(mode, x, y)
}

// press handles a press edge at (x, y).
func (b *Button) press(mode RectMode, x, y float64) {
	if !b.pressed && b.HitTest(mode, x, y) {
		b.pressed = true
	}
}

// release handles a release edge at (x, y). The action fires when a pressed
// button is released inside its region; any release clears the pressed flag.
func (b *Button) release(mode RectMode, x, y float64) {
	fire := b.pressed && b.HitTest(mode, x, y)
	b.pressed = false
	if fire && b.Action != nil {
		b.Action()
	}
}
