package drawingboard

import (
	"slices"
	"sync"
	"testing"
)

// drainCycle opens a cycle and drains the keyboard once.
func drainCycle(in *InputBuffer) (pressed, released []rune) {
	in.beginCycle()
	in.DrainKeyboard(
		func(r rune) { pressed = append(pressed, r) },
		func(r rune) { released = append(released, r) },
	)
	return pressed, released
}

func TestInputBufferKeyEdgeDelay(t *testing.T) {
	in := NewInputBuffer()
	in.OnKeyTyped('a')

	p, r := drainCycle(in)
	if !slices.Equal(p, []rune{'a'}) || len(r) != 0 {
		t.Errorf("cycle 1: pressed %q released %q, want [a] []", p, r)
	}
	p, r = drainCycle(in)
	if len(p) != 0 || !slices.Equal(r, []rune{'a'}) {
		t.Errorf("cycle 2: pressed %q released %q, want [] [a]", p, r)
	}
	p, r = drainCycle(in)
	if len(p) != 0 || len(r) != 0 {
		t.Errorf("cycle 3: pressed %q released %q, want nothing", p, r)
	}
}

func TestInputBufferKeyOrderAndDedup(t *testing.T) {
	in := NewInputBuffer()
	for _, r := range "abab" {
		in.OnKeyTyped(r)
	}
	p, _ := drainCycle(in)
	if !slices.Equal(p, []rune{'a', 'b'}) {
		t.Errorf("pressed = %q, want [a b]", p)
	}
}

func TestInputBufferNilCallbacksStillRotate(t *testing.T) {
	in := NewInputBuffer()
	in.OnKeyTyped('x')
	in.beginCycle()
	in.DrainKeyboard(nil, nil)
	_, r := drainCycle(in)
	if !slices.Equal(r, []rune{'x'}) {
		t.Errorf("released = %q, want [x]", r)
	}
}

func TestInputBufferDoubleDrainPanics(t *testing.T) {
	in := NewInputBuffer()
	in.beginCycle()
	in.DrainKeyboard(nil, nil)
	ie := expectInvariant(t, func() { in.DrainKeyboard(nil, nil) })
	if ie.Op != "DrainKeyboard" {
		t.Errorf("Op = %q, want DrainKeyboard", ie.Op)
	}
}

func TestInputBufferCallbackMayFeedBack(t *testing.T) {
	in := NewInputBuffer()
	in.OnKeyTyped('a')
	in.beginCycle()
	in.DrainKeyboard(func(rune) { in.OnKeyTyped('z') }, nil)

	p, r := drainCycle(in)
	if !slices.Equal(p, []rune{'z'}) || !slices.Equal(r, []rune{'a'}) {
		t.Errorf("pressed %q released %q, want [z] [a]", p, r)
	}
}

func TestInputBufferMouseEdges(t *testing.T) {
	in := NewInputBuffer()
	in.OnMouseDown()
	if !in.IsMouseDown() || !in.IsDragging() {
		t.Error("mouse should be down and dragging after OnMouseDown")
	}
	if p, r := in.ConsumeMouseEdges(); !p || r {
		t.Errorf("edges = %v,%v, want true,false", p, r)
	}
	if p, r := in.ConsumeMouseEdges(); p || r {
		t.Errorf("edges consumed twice: %v,%v", p, r)
	}

	in.OnMouseUp()
	if in.IsMouseDown() || in.IsDragging() {
		t.Error("mouse should be up after OnMouseUp")
	}
	if p, r := in.ConsumeMouseEdges(); p || !r {
		t.Errorf("edges = %v,%v, want false,true", p, r)
	}
}

func TestInputBufferClickWithinOneFrame(t *testing.T) {
	in := NewInputBuffer()
	in.OnMouseDown()
	in.OnMouseUp()
	if p, r := in.ConsumeMouseEdges(); !p || !r {
		t.Errorf("edges = %v,%v, want both", p, r)
	}
}

func TestInputBufferWheel(t *testing.T) {
	in := NewInputBuffer()
	in.OnMouseWheel(2)
	in.OnMouseWheel(-1)
	in.OnMouseWheel(0)
	if up, down := in.ConsumeWheel(); up != 2 || down != 1 {
		t.Errorf("ConsumeWheel = %d,%d, want 2,1", up, down)
	}
	if up, down := in.ConsumeWheel(); up != 0 || down != 0 {
		t.Errorf("ConsumeWheel after consume = %d,%d, want 0,0", up, down)
	}
}

func TestInputBufferConcurrentProducers(t *testing.T) {
	in := NewInputBuffer()
	const producers = 8
	var wg sync.WaitGroup
	for g := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				in.OnKeyTyped('a' + rune(g))
				in.OnMouseWheel(1)
			}
		}()
	}
	wg.Wait()

	p, _ := drainCycle(in)
	if len(p) != producers {
		t.Errorf("pressed %d distinct keys, want %d", len(p), producers)
	}
	if up, _ := in.ConsumeWheel(); up != producers*100 {
		t.Errorf("wheel up = %d, want %d", up, producers*100)
	}
}
