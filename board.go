package drawingboard

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config describes a new Board. Zero values select defaults.
type Config struct {
	// Title is the window title. Default "Application".
	Title string
	// Width and Height are the canvas size in pixels. Default 640x480.
	Width, Height int
	// X and Y position the window. Zero centres it.
	X, Y int
	// TargetFrameRate is the frame rate the loop aims for. Default 30.
	TargetFrameRate float64
	// ShowFPS overlays the measured frame rate in the window.
	ShowFPS bool
	// Headless renders in software without opening a window. The caller
	// drives frames with Step or RunHeadless.
	Headless bool
	// ScreenshotDir is where Screenshot writes files. Default "screenshots".
	ScreenshotDir string
	// Debug enables per-frame timing logs and transform balance checks.
	Debug bool
}

const (
	defaultTitle         = "Application"
	defaultWidth         = 640
	defaultHeight        = 480
	defaultScreenshotDir = "screenshots"
)

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width == 0 {
		c.Width = defaultWidth
	}
	if c.Height == 0 {
		c.Height = defaultHeight
	}
	if c.TargetFrameRate == 0 {
		c.TargetFrameRate = defaultTargetRate
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
}

// Board is a drawing canvas with a fixed-rate frame loop. Set the embedded
// callbacks (at least Draw), register widgets, and call Start:
//
//	b, err := drawingboard.NewBoard(drawingboard.Config{Width: 600, Height: 400})
//	if err != nil {
//		log.Fatal(err)
//	}
//	b.Draw = func() {
//		b.Background(240)
//		b.Circle(b.MouseX(), b.MouseY(), 20)
//	}
//	if err := b.Start(); err != nil {
//		log.Fatal(err)
//	}
//
// All drawing methods must be called from callbacks, on the frame loop's
// goroutine.
type Board struct {
	Callbacks

	// ScreenshotDir is the directory Screenshot writes into.
	ScreenshotDir string

	title   string
	width   int
	height  int
	x, y    int
	showFPS bool

	sched      *Scheduler
	surface    Surface
	transforms *TransformStack
	style      Style
	styles     styleStack
	random     *Random

	window   *ebitenHost
	headless *HeadlessHost

	injectQueue     []injectedEvent
	testRunner      *TestRunner
	screenshotQueue []string
	debug           bool
}

// NewBoard creates a board. The window, if any, opens on Start.
func NewBoard(cfg Config) (*Board, error) {
	cfg.applyDefaults()
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	b := &Board{
		ScreenshotDir: cfg.ScreenshotDir,
		title:         cfg.Title,
		width:         cfg.Width,
		height:        cfg.Height,
		x:             cfg.X,
		y:             cfg.Y,
		showFPS:       cfg.ShowFPS,
		style:         DefaultStyle(),
		random:        NewRandom(uint64(time.Now().UnixNano())),
		debug:         cfg.Debug,
	}

	var host Host
	if cfg.Headless {
		b.headless = NewHeadlessHost()
		b.surface = NewGGSurface(cfg.Width, cfg.Height)
		host = b.headless
	} else {
		b.window = newEbitenHost(b, cfg.Width, cfg.Height)
		b.surface = NewEbitenSurface(b.window.canvas)
		host = b.window
	}

	sched, err := NewScheduler(host, &b.Callbacks, cfg.TargetFrameRate)
	if err != nil {
		return nil, err
	}
	sched.SetRectModeFunc(func() RectMode { return b.style.RectMode })
	sched.SetDebug(cfg.Debug)
	sched.beginFrame = b.beginFrame
	sched.endFrame = b.endFrame
	b.sched = sched
	b.transforms = NewTransformStack(b.surface)
	return b, nil
}

// NewBoardWithSurface creates a headless board drawing onto a caller-supplied
// surface. Frames are driven with Step or RunHeadless.
func NewBoardWithSurface(cfg Config, s Surface) (*Board, error) {
	cfg.Headless = true
	b, err := NewBoard(cfg)
	if err != nil {
		return nil, err
	}
	b.surface = s
	b.width, b.height = s.Size()
	b.transforms = NewTransformStack(s)
	return b, nil
}

// beginFrame resets the transform so every frame starts from identity.
func (b *Board) beginFrame() {
	b.surface.ResetTransform()
	b.transforms.reset()
}

func (b *Board) endFrame() {
	if b.debug {
		debugCheckTransforms(b.transforms, b.sched.clock.FrameCount())
	}
	b.flushScreenshots()
}

// paint runs one frame: scripted input first, then the scheduler's frame.
func (b *Board) paint() {
	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.processInjectedInput()
	b.sched.Paint()
}

// --- lifecycle ---

// Start validates the callbacks and runs the frame loop. For a windowed
// board it blocks until the window is closed or Close is called. For a
// headless board it returns immediately; drive frames with Step.
func (b *Board) Start() error {
	if err := b.sched.Start(); err != nil {
		return err
	}
	if b.headless != nil {
		return nil
	}
	return b.window.run()
}

// Pause stops drawing and input dispatch until Resume.
func (b *Board) Pause() { b.sched.Pause() }

// Resume restarts drawing after Pause.
func (b *Board) Resume() { b.sched.Resume() }

// Close stops the loop and closes the window.
func (b *Board) Close() { b.sched.Close() }

// State returns the frame loop's lifecycle state.
func (b *Board) State() State { return b.sched.State() }

// Scheduler exposes the frame loop.
func (b *Board) Scheduler() *Scheduler { return b.sched }

// Surface returns the drawing surface.
func (b *Board) Surface() Surface { return b.surface }

// AddButton registers a button for hover/press/trigger handling and for
// the DrawButton callback.
func (b *Board) AddButton(btn *Button) { b.sched.AddButton(btn) }

// AddSlider registers a slider for drag handling and for the DrawSlider
// callback.
func (b *Board) AddSlider(s *Slider) { b.sched.AddSlider(s) }

// SetDebugMode toggles per-frame timing logs and transform balance checks.
func (b *Board) SetDebugMode(on bool) {
	b.debug = on
	b.sched.SetDebug(on)
}

// SetTargetFrameRate changes the frame rate the loop aims for. Rates that
// are not positive are rejected.
func (b *Board) SetTargetFrameRate(rate float64) error {
	if err := b.sched.clock.SetTargetFrameRate(rate); err != nil {
		return err
	}
	if b.window != nil && b.window.running {
		ebiten.SetTPS(tpsFor(rate))
	}
	return nil
}

// TargetFrameRate returns the configured frame rate.
func (b *Board) TargetFrameRate() float64 { return b.sched.clock.TargetFrameRate() }

// Title returns the window title.
func (b *Board) Title() string { return b.title }

// SetTitle changes the window title.
func (b *Board) SetTitle(title string) {
	b.title = title
	if b.window != nil && b.window.running {
		ebiten.SetWindowTitle(title)
	}
}

// --- telemetry ---

// FrameRate returns the smoothed measured frame rate.
func (b *Board) FrameRate() float64 { return b.sched.clock.FrameRate() }

// FrameCount returns the number of frames triggered so far.
func (b *Board) FrameCount() int { return b.sched.clock.FrameCount() }

// TotalElapsedTime returns the seconds elapsed since the loop started, as
// last seen by the frame loop.
func (b *Board) TotalElapsedTime() float64 { return b.sched.clock.Elapsed() }

// MouseX returns the pointer x sampled by the current frame.
func (b *Board) MouseX() float64 { x, _ := b.sched.MousePosition(); return x }

// MouseY returns the pointer y sampled by the current frame.
func (b *Board) MouseY() float64 { _, y := b.sched.MousePosition(); return y }

// IsMouseDown reports whether a mouse button is held.
func (b *Board) IsMouseDown() bool { return b.sched.input.IsMouseDown() }

// Width returns the canvas width.
func (b *Board) Width() int { return b.width }

// Height returns the canvas height.
func (b *Board) Height() int { return b.height }

func (b *Board) Xmin() float64    { return 0 }
func (b *Board) Xcenter() float64 { return float64(b.width) / 2 }
func (b *Board) Xmax() float64    { return float64(b.width) }
func (b *Board) Ymin() float64    { return 0 }
func (b *Board) Ycenter() float64 { return float64(b.height) / 2 }
func (b *Board) Ymax() float64    { return float64(b.height) }

// --- random ---

// RandomSeed reseeds the board's random source.
func (b *Board) RandomSeed(seed uint64) { b.random.Seed(seed) }

// Random returns a value in [0, max).
func (b *Board) Random(max float64) float64 { return b.random.Max(max) }

// RandomRange returns a value in [min, max). min must be less than max.
func (b *Board) RandomRange(min, max float64) (float64, error) { return b.random.Range(min, max) }

// Rand exposes the board's random source.
func (b *Board) Rand() *Random { return b.random }

// --- style ---

// Style returns a copy of the current style.
func (b *Board) Style() Style { return b.style }

// SetStyle replaces the current style.
func (b *Board) SetStyle(st Style) { b.style = st }

// SaveStyle pushes a snapshot of the current style.
func (b *Board) SaveStyle() { b.styles.push(b.style) }

// RestoreStyle pops the style saved by the matching SaveStyle. Restoring
// with nothing saved panics with an *InvariantError.
func (b *Board) RestoreStyle() { b.style = b.styles.pop() }

// ColorMode sets how integer color components are interpreted.
func (b *Board) ColorMode(m ColorMode) { b.style.ColorMode = m }

// RectMode sets how Rectangle and button bounds are interpreted.
func (b *Board) RectMode(m RectMode) { b.style.RectMode = m }

// ImageMode sets how DrawImage positions images.
func (b *Board) ImageMode(m ImageMode) { b.style.ImageMode = m }

// Stroke sets the stroke color from 1 to 4 components in the current color
// mode.
func (b *Board) Stroke(v ...int) error {
	c, err := b.style.ColorMode.Color(v...)
	if err != nil {
		return err
	}
	b.style.StrokeColor = c
	return nil
}

// SetStroke sets the stroke color directly.
func (b *Board) SetStroke(c color.Color) { b.style.StrokeColor = toNRGBA(c) }

// NoStroke disables strokes.
func (b *Board) NoStroke() { b.style.StrokeColor = color.NRGBA{} }

// StrokeWidth sets the stroke width in pixels.
func (b *Board) StrokeWidth(w float64) { b.style.StrokeWidth = w }

// StrokeCap sets the line cap.
func (b *Board) StrokeCap(c StrokeCap) { b.style.Cap = c }

// Fill enables filling with a color from 1 to 4 components in the current
// color mode.
func (b *Board) Fill(v ...int) error {
	c, err := b.style.ColorMode.Color(v...)
	if err != nil {
		return err
	}
	b.style.FillColor = c
	b.style.Filled = true
	return nil
}

// SetFill enables filling with c.
func (b *Board) SetFill(c color.Color) {
	b.style.FillColor = toNRGBA(c)
	b.style.Filled = true
}

// NoFill disables filling.
func (b *Board) NoFill() { b.style.Filled = false }

// TextColor sets the text color from 1 to 4 components in the current color
// mode.
func (b *Board) TextColor(v ...int) error {
	c, err := b.style.ColorMode.Color(v...)
	if err != nil {
		return err
	}
	b.style.TextColor = c
	return nil
}

// SetTextColor sets the text color directly.
func (b *Board) SetTextColor(c color.Color) { b.style.TextColor = toNRGBA(c) }

// Background covers the canvas with a color from 1 to 4 components in the
// current color mode. A translucent color blends over the previous frame.
func (b *Board) Background(v ...int) error {
	c, err := b.style.ColorMode.Color(v...)
	if err != nil {
		return err
	}
	b.surface.Paint(c)
	return nil
}

// SetBackground covers the canvas with c.
func (b *Board) SetBackground(c color.Color) { b.surface.Paint(toNRGBA(c)) }

// Font selects the font used by Text. nil selects the default font.
func (b *Board) Font(f *Font) {
	if f == nil {
		f = DefaultFont()
	}
	b.style.Font = f
}

// FontStyle selects a variant of the built-in Go font.
func (b *Board) FontStyle(s FontStyle) { b.style.Font = GoFont(s) }

// FontSize sets the text size in points.
func (b *Board) FontSize(size float64) { b.style.FontSize = size }

// TextAlign sets how Text positions strings relative to their anchor.
func (b *Board) TextAlign(h HAlign, v VAlign) {
	b.style.HAlign = h
	b.style.VAlign = v
}

// --- transforms ---

// Translate moves the origin by (dx, dy) in the current local space.
func (b *Board) Translate(dx, dy float64) { b.transforms.Translate(dx, dy) }

// RotateDegrees rotates the local space clockwise by deg degrees.
func (b *Board) RotateDegrees(deg float64) { b.transforms.Rotate(deg) }

// RotateRadians rotates the local space clockwise by rad radians.
func (b *Board) RotateRadians(rad float64) { b.transforms.Rotate(rad * radToDeg) }

// PushMatrix opens a transform frame closed by PopMatrix.
func (b *Board) PushMatrix() { b.transforms.PushMatrix() }

// PopMatrix undoes every Translate and Rotate since the matching
// PushMatrix. Popping with no open frame panics with an *InvariantError.
func (b *Board) PopMatrix() { b.transforms.PopMatrix() }

// UndoRotations cancels all rotations made outside Push/Pop pairs.
func (b *Board) UndoRotations() { b.transforms.UndoRotations() }

// UndoTranslations cancels all translations made outside Push/Pop pairs.
func (b *Board) UndoTranslations() { b.transforms.UndoTranslations() }

// tpsFor returns the ebiten tick rate needed to poll the scheduler at least
// once per target period.
func tpsFor(rate float64) int {
	return max(60, int(math.Ceil(rate)))
}
