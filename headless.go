package drawingboard

import (
	"errors"
	"fmt"
)

// ErrNotHeadless is returned by Step and RunHeadless on a windowed board.
var ErrNotHeadless = errors.New("drawingboard: board is not headless")

// HeadlessHost is a Host without a window. The cursor is whatever was last
// set, and repaint requests are collected for Board.Step.
type HeadlessHost struct {
	x, y    int
	repaint bool
}

// NewHeadlessHost returns a host with the cursor at the origin.
func NewHeadlessHost() *HeadlessHost { return &HeadlessHost{} }

// SetCursor moves the simulated pointer.
func (h *HeadlessHost) SetCursor(x, y int) { h.x, h.y = x, y }

func (h *HeadlessHost) CursorPosition() (int, int) { return h.x, h.y }

func (h *HeadlessHost) RequestRepaint() { h.repaint = true }

// TakeRepaint reports and clears a pending repaint request.
func (h *HeadlessHost) TakeRepaint() bool {
	r := h.repaint
	h.repaint = false
	return r
}

func (h *HeadlessHost) injectCursor(x, y float64) { h.SetCursor(int(x), int(y)) }

// Host returns the headless host, or nil for a windowed board.
func (b *Board) Host() *HeadlessHost { return b.headless }

// Step polls the frame loop at the given elapsed time, in seconds since the
// loop started, and paints if a frame was due. It reports whether a frame
// was painted. Start must have been called.
func (b *Board) Step(elapsed float64) (bool, error) {
	if b.headless == nil {
		return false, ErrNotHeadless
	}
	switch b.sched.State() {
	case StateStopped:
		return false, ErrBoardClosed
	case StateNotStarted:
		if err := b.sched.Start(); err != nil {
			return false, err
		}
	}
	b.sched.Poll(elapsed)
	if !b.headless.TakeRepaint() {
		return false, nil
	}
	b.paint()
	return true, nil
}

// RunHeadless starts the loop if needed and runs frames frames at exactly
// the target rate on a synthetic clock.
func (b *Board) RunHeadless(frames int) error {
	if b.headless == nil {
		return ErrNotHeadless
	}
	if frames < 0 {
		return fmt.Errorf("drawingboard: frame count must not be negative, got %d", frames)
	}
	c := b.sched.clock
	for range frames {
		// nudge past the period so ShouldTrigger's strict comparison holds
		next := c.lastTrigger + c.TargetFramePeriod()*(1+1e-9)
		if _, err := b.Step(next); err != nil {
			return err
		}
	}
	return nil
}
