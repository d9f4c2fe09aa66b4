package drawingboard

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"my-file.png", "my-file.png"},
		{"a/b\\c:d", "a_b_c_d"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"ABC123", "ABC123"},
		{"special!@#$%", "special_____"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.input); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	b, _ := newTestBoard(t, 10, 10)
	b.Screenshot("first")
	b.Screenshot("second")
	if len(b.screenshotQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(b.screenshotQueue))
	}
	if b.screenshotQueue[0] != "first" || b.screenshotQueue[1] != "second" {
		t.Errorf("queue = %v", b.screenshotQueue)
	}
}

func TestScreenshotWrittenAtEndOfFrame(t *testing.T) {
	b := newHeadless(t, 20, 20)
	b.Draw = func() {
		_ = b.Background(0, 255, 0)
		b.Screenshot("frame shot")
	}
	if err := b.RunHeadless(1); err != nil {
		t.Fatal(err)
	}
	if len(b.screenshotQueue) != 0 {
		t.Errorf("queue not flushed: %v", b.screenshotQueue)
	}
	files, _ := filepath.Glob(filepath.Join(b.ScreenshotDir, "*.png"))
	if len(files) != 1 {
		t.Fatalf("files = %v, want 1", files)
	}
	if !strings.HasSuffix(files[0], "_000001_frame_shot.png") {
		t.Errorf("file name = %s", filepath.Base(files[0]))
	}
	img, err := LoadImage(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if r, g, _, _ := img.At(10, 10).RGBA(); r != 0 || g != 0xffff {
		t.Errorf("screenshot pixel = %v, want green", img.At(10, 10))
	}
}

func TestScreenshotWriteFailureIsLogged(t *testing.T) {
	buf := captureLogs(t)
	b := newHeadless(t, 10, 10)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	b.ScreenshotDir = filepath.Join(blocker, "sub") // parent is a file
	b.Draw = func() { b.Screenshot("x") }
	if err := b.RunHeadless(1); err != nil {
		t.Fatalf("RunHeadless = %v, a failed screenshot must not stop the loop", err)
	}
	if !strings.Contains(buf.String(), "screenshot") {
		t.Errorf("no warning logged:\n%s", buf.String())
	}
}

func TestSaveAsFormats(t *testing.T) {
	b := newHeadless(t, 16, 8)
	b.Draw = func() { _ = b.Background(255, 0, 0) }
	if err := b.RunHeadless(1); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	saves := []struct {
		name string
		save func(string) error
	}{
		{"out.png", b.SaveAsPNG},
		{"out.jpg", func(p string) error { return b.SaveAsJPEG(p, 90) }},
		{"out.gif", b.SaveAsGIF},
	}
	for _, s := range saves {
		path := filepath.Join(dir, s.name)
		if err := s.save(path); err != nil {
			t.Errorf("save %s: %v", s.name, err)
			continue
		}
		img, err := LoadImage(path)
		if err != nil {
			t.Errorf("decode %s: %v", s.name, err)
			continue
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
			t.Errorf("%s bounds = %v, want 16x8", s.name, img.Bounds())
		}
		if r, g, _, _ := img.At(8, 4).RGBA(); r < 0xf000 || g > 0x1000 {
			t.Errorf("%s pixel = %v, want red", s.name, img.At(8, 4))
		}
	}
}

func TestSaveAsPNGBadPath(t *testing.T) {
	b := newHeadless(t, 4, 4)
	if err := b.SaveAsPNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("SaveAsPNG into a missing directory returned nil")
	}
}

func TestSaveBeforeWindowOpens(t *testing.T) {
	b := &Board{window: &ebitenHost{}}
	path := filepath.Join(t.TempDir(), "early.png")
	saves := map[string]func() error{
		"png":  func() error { return b.SaveAsPNG(path) },
		"jpeg": func() error { return b.SaveAsJPEG(path, 80) },
		"gif":  func() error { return b.SaveAsGIF(path) },
	}
	for name, save := range saves {
		if err := save(); !errors.Is(err, ErrWindowNotRunning) {
			t.Errorf("%s: err = %v, want ErrWindowNotRunning", name, err)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file written before the window opened: %v", err)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 0, 0, 128,      // half-transparent red
		10, 20, 30, 255,    // opaque
		0, 0, 0, 0,         // transparent
		200, 200, 200, 100, // out-of-range channel clamps
	}
	img := unpremultiply(pixels, 2, 2)
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{127, 0, 0, 128}},
		{1, 0, color.NRGBA{10, 20, 30, 255}},
		{0, 1, color.NRGBA{0, 0, 0, 0}},
		{1, 1, color.NRGBA{255, 255, 255, 100}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("LoadImage of a missing file returned nil")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	os.WriteFile(bad, []byte("not an image"), 0o644)
	if _, err := LoadImage(bad); err == nil {
		t.Error("LoadImage of garbage returned nil")
	}
}
