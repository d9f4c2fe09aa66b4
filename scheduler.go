package drawingboard

import (
	"fmt"
	"time"
)

// Host is the window integration a Scheduler runs inside. The host owns the
// real event loop: it polls the scheduler when idle, feeds raw input into
// the scheduler's InputBuffer, and calls Paint when a repaint was requested.
type Host interface {
	// CursorPosition returns the pointer in canvas coordinates.
	CursorPosition() (x, y int)
	// RequestRepaint marks the canvas dirty. The host calls Scheduler.Paint
	// once per request.
	RequestRepaint()
}

// Callbacks are the user hooks driven by the frame loop. Only Draw is
// required; every other slot is optional and skipped when nil.
type Callbacks struct {
	Init func() // first triggered frame only, paused or not
	Draw func() // every painted frame

	KeyPressed  func(rune)
	KeyReleased func(rune)

	MousePressed   func()
	MouseReleased  func()
	MouseDragged   func()
	MouseWheelUp   func()
	MouseWheelDown func()

	DrawButton func(*Button)
	DrawSlider func(*Slider)
}

// Scheduler is the fixed-rate frame loop. Poll decides whether a frame is
// due and requests a repaint; Paint runs the frame: user drawing, input
// dispatch, widget state machines and widget drawing, in that order.
type Scheduler struct {
	host  Host
	cb    *Callbacks
	clock *Clock
	input *InputBuffer

	sliders []*Slider
	buttons []*Button

	rectMode func() RectMode

	// frame hooks run around each painted frame
	beginFrame func()
	endFrame   func()

	state       State
	initialized bool
	debug       bool

	mouseX, mouseY float64
}

// NewScheduler creates a scheduler targeting the given frame rate.
func NewScheduler(host Host, cb *Callbacks, targetRate float64) (*Scheduler, error) {
	clock, err := NewClock(targetRate)
	if err != nil {
		return nil, err
	}
	if cb == nil {
		cb = &Callbacks{}
	}
	return &Scheduler{
		host:     host,
		cb:       cb,
		clock:    clock,
		input:    NewInputBuffer(),
		rectMode: func() RectMode { return RectCenter },
	}, nil
}

// Clock returns the scheduler's clock.
func (s *Scheduler) Clock() *Clock { return s.clock }

// Input returns the buffer the host feeds raw events into.
func (s *Scheduler) Input() *InputBuffer { return s.input }

// State returns the lifecycle state.
func (s *Scheduler) State() State { return s.state }

// SetRectModeFunc sets the provider of the rect mode used for button
// hit-testing. It is queried every frame so hit regions follow the mode the
// user draws with.
func (s *Scheduler) SetRectModeFunc(fn func() RectMode) {
	if fn != nil {
		s.rectMode = fn
	}
}

// SetDebug enables per-frame timing logs at debug level.
func (s *Scheduler) SetDebug(on bool) { s.debug = on }

// AddButton registers a button. Buttons are updated and drawn in
// registration order.
func (s *Scheduler) AddButton(b *Button) { s.buttons = append(s.buttons, b) }

// AddSlider registers a slider. Sliders are updated and drawn in
// registration order, before any button.
func (s *Scheduler) AddSlider(sl *Slider) { s.sliders = append(s.sliders, sl) }

// Buttons returns the registered buttons.
func (s *Scheduler) Buttons() []*Button { return s.buttons }

// Sliders returns the registered sliders.
func (s *Scheduler) Sliders() []*Slider { return s.sliders }

// MousePosition returns the pointer position sampled at the start of the
// current painted frame.
func (s *Scheduler) MousePosition() (x, y float64) { return s.mouseX, s.mouseY }

// Start moves the scheduler to Running. Draw must be set.
func (s *Scheduler) Start() error {
	switch s.state {
	case StateStopped:
		return ErrBoardClosed
	case StateNotStarted:
	default:
		return nil
	}
	if s.cb.Draw == nil {
		return ErrNoDrawCallback
	}
	s.state = StateRunning
	Logger().Info("frame loop started", "targetFrameRate", s.clock.TargetFrameRate())
	return nil
}

// Pause stops drawing and dispatch. The clock keeps ticking.
func (s *Scheduler) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
		Logger().Info("frame loop paused", "frame", s.clock.FrameCount())
	}
}

// Resume undoes Pause.
func (s *Scheduler) Resume() {
	if s.state == StatePaused {
		s.state = StateRunning
		Logger().Info("frame loop resumed", "frame", s.clock.FrameCount())
	}
}

// Close stops the loop for good.
func (s *Scheduler) Close() {
	if s.state != StateStopped {
		s.state = StateStopped
		Logger().Info("frame loop stopped", "frames", s.clock.FrameCount())
	}
}

// Poll is called by the host whenever it is idle, with the seconds elapsed
// since the clock started. It triggers at most one frame per target period:
// the clock advances, the rate estimate is updated and, unless paused, a
// repaint is requested. A paused first frame still runs Init. It reports
// whether a frame was triggered.
func (s *Scheduler) Poll(elapsed float64) bool {
	if s.state == StateNotStarted || s.state == StateStopped {
		return false
	}
	if !s.clock.ShouldTrigger(elapsed) {
		s.clock.Observe(elapsed)
		return false
	}
	s.clock.Advance(elapsed)
	s.clock.RecordFrame(elapsed)
	if s.state == StatePaused {
		s.runInit()
		return true
	}
	s.host.RequestRepaint()
	return true
}

// frameStats holds per-phase timings of one painted frame.
type frameStats struct {
	draw     time.Duration
	dispatch time.Duration
	widgets  time.Duration
}

// Paint runs one frame. The pointer is sampled once, before Init and Draw,
// so Draw sees this frame's position. Widget draw callbacks always run after
// Draw so widgets render on top of the user's scene, sliders before buttons.
func (s *Scheduler) Paint() {
	if s.state != StateRunning {
		return
	}
	var stats frameStats
	t0 := time.Now()

	s.input.beginCycle()
	if s.beginFrame != nil {
		s.beginFrame()
	}
	ix, iy := s.host.CursorPosition()
	s.mouseX, s.mouseY = float64(ix), float64(iy)
	s.runInit()
	s.cb.Draw()
	t1 := time.Now()
	stats.draw = t1.Sub(t0)

	s.dispatchKeyboard()
	s.dispatchPointer()
	t2 := time.Now()
	stats.dispatch = t2.Sub(t1)

	if s.cb.DrawSlider != nil {
		for _, sl := range s.sliders {
			s.cb.DrawSlider(sl)
		}
	}
	if s.cb.DrawButton != nil {
		for _, b := range s.buttons {
			s.cb.DrawButton(b)
		}
	}
	stats.widgets = time.Since(t2)

	if s.endFrame != nil {
		s.endFrame()
	}
	if s.debug {
		s.debugLog(stats)
	}
}

func (s *Scheduler) runInit() {
	if s.initialized {
		return
	}
	s.initialized = true
	if s.cb.Init != nil {
		s.cb.Init()
	}
}

// dispatchKeyboard drains the keyboard buffer into the key callbacks. With
// no key callback set the whole step is skipped.
func (s *Scheduler) dispatchKeyboard() {
	if s.cb.KeyPressed == nil && s.cb.KeyReleased == nil {
		return
	}
	s.input.DrainKeyboard(s.cb.KeyPressed, s.cb.KeyReleased)
}

// dispatchPointer runs the widget state machines at the frame's pointer
// position and then the mouse callbacks.
func (s *Scheduler) dispatchPointer() {
	x, y := s.mouseX, s.mouseY

	pressed, released := s.input.ConsumeMouseEdges()
	dragging := s.input.IsDragging()
	s.updateWidgets(x, y, pressed, released, dragging)

	if dragging && s.cb.MouseDragged != nil {
		s.cb.MouseDragged()
	}
	if pressed && s.cb.MousePressed != nil {
		s.cb.MousePressed()
	}
	if released && s.cb.MouseReleased != nil {
		s.cb.MouseReleased()
	}

	up, down := s.input.ConsumeWheel()
	if s.cb.MouseWheelUp != nil {
		for range up {
			s.cb.MouseWheelUp()
		}
	}
	if s.cb.MouseWheelDown != nil {
		for range down {
			s.cb.MouseWheelDown()
		}
	}
}

// updateWidgets advances every widget state machine by one frame.
//
// Order: hover, press edge (lock sliders, press buttons), drag tracking,
// release edge (unlock sliders, trigger buttons), tweens.
func (s *Scheduler) updateWidgets(x, y float64, pressed, released, dragging bool) {
	mode := s.rectMode()
	for _, b := range s.buttons {
		b.hover(mode, x, y)
	}
	if pressed {
		for _, sl := range s.sliders {
			sl.grab(x, y)
		}
		for _, b := range s.buttons {
			b.press(mode, x, y)
		}
	}
	if dragging {
		for _, sl := range s.sliders {
			sl.track(x, y)
		}
	}
	if released {
		for _, sl := range s.sliders {
			sl.unlock()
		}
		for _, b := range s.buttons {
			b.release(mode, x, y)
		}
	}
	dt := float32(s.clock.LastFrameDelta())
	for _, sl := range s.sliders {
		sl.advanceTween(dt)
	}
}

func (s *Scheduler) String() string {
	return fmt.Sprintf("Scheduler{state: %s, frames: %d, rate: %.1f/%.1f}",
		s.state, s.clock.FrameCount(), s.clock.FrameRate(), s.clock.TargetFrameRate())
}
