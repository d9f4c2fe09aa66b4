package drawingboard

// injectKind identifies a synthetic input event.
type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectKey
	injectWheel
)

// injectedEvent is a single queued synthetic event. Pointer events carry
// canvas coordinates, the same space MouseX and MouseY report.
type injectedEvent struct {
	kind  injectKind
	x, y  float64
	ch    rune
	delta int
}

// cursorInjector is implemented by hosts that can override the pointer.
type cursorInjector interface {
	injectCursor(x, y float64)
}

// InjectPress queues a pointer press at (x, y). Queued events are consumed
// one per painted frame, before the frame runs.
func (b *Board) InjectPress(x, y float64) {
	b.injectQueue = append(b.injectQueue, injectedEvent{kind: injectPress, x: x, y: y})
}

// InjectMove queues a pointer move to (x, y) with the button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (b *Board) InjectMove(x, y float64) {
	b.injectQueue = append(b.injectQueue, injectedEvent{kind: injectMove, x: x, y: y})
}

// InjectRelease queues a pointer release at (x, y).
func (b *Board) InjectRelease(x, y float64) {
	b.injectQueue = append(b.injectQueue, injectedEvent{kind: injectRelease, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (b *Board) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2.
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.InjectMove(Lerp(t, 0, 1, fromX, toX), Lerp(t, 0, 1, fromY, toY))
	}
	b.InjectRelease(toX, toY)
}

// InjectKey queues a typed character.
func (b *Board) InjectKey(ch rune) {
	b.injectQueue = append(b.injectQueue, injectedEvent{kind: injectKey, ch: ch})
}

// InjectWheel queues wheel notches; positive scrolls up.
func (b *Board) InjectWheel(delta int) {
	b.injectQueue = append(b.injectQueue, injectedEvent{kind: injectWheel, delta: delta})
}

// PendingInjections returns the number of queued synthetic events.
func (b *Board) PendingInjections() int { return len(b.injectQueue) }

// processInjectedInput pops one event and feeds it through the same path
// as real input. Reports whether an event was consumed.
func (b *Board) processInjectedInput() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	in := b.sched.input
	switch evt.kind {
	case injectPress, injectMove, injectRelease:
		if ci, ok := b.sched.host.(cursorInjector); ok {
			ci.injectCursor(evt.x, evt.y)
		}
		switch evt.kind {
		case injectPress:
			in.OnMouseDown()
		case injectRelease:
			in.OnMouseUp()
		}
	case injectKey:
		in.OnKeyTyped(evt.ch)
	case injectWheel:
		in.OnMouseWheel(evt.delta)
	}
	return true
}
