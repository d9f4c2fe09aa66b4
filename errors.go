package drawingboard

import (
	"errors"
	"fmt"
)

// Configuration errors. These are returned before the loop starts or before
// the offending value is accepted; values are never silently clamped.
var (
	ErrNoDrawCallback     = errors.New("drawingboard: Draw callback must be set before Start")
	ErrInvalidFrameRate   = errors.New("drawingboard: target frame rate must be positive")
	ErrInvalidSize        = errors.New("drawingboard: width and height must be positive")
	ErrInvalidSliderRange = errors.New("drawingboard: slider minimum must be less than maximum")
	ErrInvalidHandleSize  = errors.New("drawingboard: slider handle size must be positive")
	ErrInvalidRange       = errors.New("drawingboard: minimum must be less than maximum")
	ErrComponentCount     = errors.New("drawingboard: expected 1 to 4 color components")
	ErrBoardClosed        = errors.New("drawingboard: board is closed")
	ErrPlotData           = errors.New("drawingboard: plot series must be non-empty, finite and of equal length")
)

// InvariantError is the panic value used when the frame loop is misused in a
// way that would otherwise produce subtly wrong output, such as popping an
// empty matrix stack or draining the keyboard buffer twice in one frame.
// Recover it with errors.As to tell it apart from ordinary runtime panics.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("drawingboard: invariant violated in %s: %s", e.Op, e.Msg)
}

// invariant panics with an *InvariantError.
func invariant(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// ColorRangeError reports a color component outside [0, Max] for the active
// color mode.
type ColorRangeError struct {
	Component string
	Value     int
	Max       int
	Mode      ColorMode
}

func (e *ColorRangeError) Error() string {
	return fmt.Sprintf("drawingboard: %s = %d out of range [0, %d] in %s color mode",
		e.Component, e.Value, e.Max, e.Mode)
}
