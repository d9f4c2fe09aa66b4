package drawingboard

// Vec2 is a 2D point or offset in canvas pixels.
type Vec2 struct {
	X, Y float64
}

// Rect is a canvas rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) is inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.Width && r.Y <= y && y <= r.Y+r.Height
}

// Center returns the rectangle's centre point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// State is the frame scheduler's lifecycle state.
type State uint8

const (
	StateNotStarted State = iota // created, Start not yet called
	StateRunning                 // frames are processed
	StatePaused                  // frames tick but draw and dispatch are skipped
	StateStopped                 // closed; terminal
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Orientation is the axis a Slider moves along.
type Orientation uint8

const (
	Horizontal Orientation = iota // handle moves along x
	Vertical                      // handle moves along y
)
