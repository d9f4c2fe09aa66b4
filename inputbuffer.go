package drawingboard

import "sync"

// InputBuffer accumulates raw keyboard and mouse events between frames and
// exposes them to the frame step as edges.
//
// Producers (OnKeyTyped, OnMouseDown, OnMouseUp, OnMouseWheel) may run on a
// different goroutine than the frame step; all state is guarded by a mutex.
// Consumer callbacks are always invoked with the lock released so they may
// feed new events back in.
type InputBuffer struct {
	mu sync.Mutex

	pressed  []rune // pressed this cycle, insertion order, no duplicates
	released []rune // pressed during the previous cycle

	mouseDown    bool
	dragging     bool
	pressedEdge  bool
	releasedEdge bool
	wheelUp      int
	wheelDown    int

	drained bool // keyboard drained during the current cycle
}

// NewInputBuffer returns an empty buffer with an open cycle.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// OnKeyTyped records a typed character. Typing the same character twice in
// one cycle is a no-op.
func (b *InputBuffer) OnKeyTyped(ch rune) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range b.pressed {
		if k == ch {
			return
		}
	}
	b.pressed = append(b.pressed, ch)
}

// OnMouseDown records a button press.
func (b *InputBuffer) OnMouseDown() {
	b.mu.Lock()
	b.mouseDown = true
	b.dragging = true
	b.pressedEdge = true
	b.mu.Unlock()
}

// OnMouseUp records a button release.
func (b *InputBuffer) OnMouseUp() {
	b.mu.Lock()
	b.mouseDown = false
	b.dragging = false
	b.releasedEdge = true
	b.mu.Unlock()
}

// OnMouseWheel records wheel notches. Positive deltas scroll up.
func (b *InputBuffer) OnMouseWheel(delta int) {
	b.mu.Lock()
	switch {
	case delta > 0:
		b.wheelUp += delta
	case delta < 0:
		b.wheelDown -= delta
	}
	b.mu.Unlock()
}

// IsMouseDown reports whether a button is currently held.
func (b *InputBuffer) IsMouseDown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouseDown
}

// IsDragging reports whether the pointer is being dragged.
func (b *InputBuffer) IsDragging() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dragging
}

// beginCycle opens a new frame cycle, allowing one more keyboard drain.
func (b *InputBuffer) beginCycle() {
	b.mu.Lock()
	b.drained = false
	b.mu.Unlock()
}

// DrainKeyboard reports the keys pressed this cycle to onPressed and the keys
// pressed in the previous cycle to onReleased, then rotates the sets. Either
// callback may be nil. A key typed in cycle N is therefore reported as
// pressed in N and as released in N+1, never both in the same cycle.
//
// Draining twice within one cycle panics with an *InvariantError.
func (b *InputBuffer) DrainKeyboard(onPressed, onReleased func(rune)) {
	b.mu.Lock()
	if b.drained {
		b.mu.Unlock()
		invariant("DrainKeyboard", "keyboard buffer drained twice in one frame")
	}
	b.drained = true
	pressed := b.pressed
	released := b.released
	b.released = pressed
	b.pressed = released[:0:0]
	b.mu.Unlock()

	if onPressed != nil {
		for _, k := range pressed {
			onPressed(k)
		}
	}
	if onReleased != nil {
		for _, k := range released {
			onReleased(k)
		}
	}
}

// ConsumeMouseEdges returns and clears the one-shot press and release flags.
func (b *InputBuffer) ConsumeMouseEdges() (pressed, released bool) {
	b.mu.Lock()
	pressed, released = b.pressedEdge, b.releasedEdge
	b.pressedEdge, b.releasedEdge = false, false
	b.mu.Unlock()
	return pressed, released
}

// ConsumeWheel returns and clears the buffered wheel notches.
func (b *InputBuffer) ConsumeWheel() (up, down int) {
	b.mu.Lock()
	up, down = b.wheelUp, b.wheelDown
	b.wheelUp, b.wheelDown = 0, 0
	b.mu.Unlock()
	return up, down
}
