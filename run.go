package drawingboard

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenHost runs a Board inside an Ebitengine window. Ebitengine's Update
// plays the role of the idle notification: every tick it forwards real
// input into the InputBuffer and polls the scheduler. When a frame is due
// the board paints into an offscreen canvas, which Draw then presents.
type ebitenHost struct {
	board  *Board
	canvas *ebiten.Image
	fps    *fpsOverlay

	dirty   bool
	running bool

	injected       bool
	injectX        int
	injectY        int
	lastRX, lastRY int

	chars []rune
}

func newEbitenHost(b *Board, w, h int) *ebitenHost {
	return &ebitenHost{board: b, canvas: ebiten.NewImage(w, h)}
}

// CursorPosition returns the injected pointer while an injection is active,
// and the real cursor otherwise. Moving the real mouse ends the injection.
func (h *ebitenHost) CursorPosition() (int, int) {
	if h.injected {
		return h.injectX, h.injectY
	}
	return ebiten.CursorPosition()
}

func (h *ebitenHost) RequestRepaint() { h.dirty = true }

func (h *ebitenHost) injectCursor(x, y float64) {
	h.injected = true
	h.injectX, h.injectY = int(x), int(y)
}

// run opens the window and blocks until it closes.
func (h *ebitenHost) run() error {
	b := h.board
	ebiten.SetWindowTitle(b.title)
	ebiten.SetWindowSize(b.width, b.height)
	if b.x != 0 || b.y != 0 {
		ebiten.SetWindowPosition(b.x, b.y)
	}
	ebiten.SetTPS(tpsFor(b.sched.clock.TargetFrameRate()))
	ebiten.SetScreenClearedEveryFrame(false)
	if b.showFPS {
		h.fps = newFPSOverlay()
	}
	h.lastRX, h.lastRY = ebiten.CursorPosition()
	h.running = true
	defer func() { h.running = false }()

	err := ebiten.RunGame(h)
	b.sched.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (h *ebitenHost) Update() error {
	s := h.board.sched
	if s.State() == StateStopped {
		return ebiten.Termination
	}
	h.pollInput()
	if s.Poll(s.clock.Tick()) && h.dirty {
		h.dirty = false
		h.board.paint()
	}
	if h.fps != nil {
		h.fps.update(s.clock)
	}
	return nil
}

// pollInput forwards this tick's real input events to the InputBuffer.
func (h *ebitenHost) pollInput() {
	in := h.board.sched.input

	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, ch := range h.chars {
		in.OnKeyTyped(ch)
	}

	rx, ry := ebiten.CursorPosition()
	if rx != h.lastRX || ry != h.lastRY {
		h.injected = false
		h.lastRX, h.lastRY = rx, ry
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.injected = false
		in.OnMouseDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.injected = false
		in.OnMouseUp()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		notches := int(dy)
		if notches == 0 {
			// trackpads report fractional deltas; count any movement once
			if dy > 0 {
				notches = 1
			} else {
				notches = -1
			}
		}
		in.OnMouseWheel(notches)
	}
}

// Draw implements ebiten.Game.
func (h *ebitenHost) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.canvas, nil)
	if h.fps != nil {
		h.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The canvas keeps its size; the window
// scales it.
func (h *ebitenHost) Layout(_, _ int) (int, int) {
	return h.board.width, h.board.height
}
