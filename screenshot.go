package drawingboard

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Screenshot queues a labelled screenshot, captured at the end of the
// current frame after widgets are drawn. The PNG is written to
// ScreenshotDir with a timestamped file name.
func (b *Board) Screenshot(label string) {
	b.screenshotQueue = append(b.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot. Failures are logged,
// never returned, so a full disk cannot stop the frame loop.
func (b *Board) flushScreenshots() {
	if len(b.screenshotQueue) == 0 {
		return
	}
	defer func() { b.screenshotQueue = b.screenshotQueue[:0] }()

	if err := os.MkdirAll(b.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", b.ScreenshotDir, "error", err)
		return
	}

	img := b.surface.Snapshot()
	stamp := time.Now().Format("20060102_150405")
	frame := b.FrameCount()

	for _, label := range b.screenshotQueue {
		name := fmt.Sprintf("%s_%06d_%s.png", stamp, frame, sanitizeLabel(label))
		path := filepath.Join(b.ScreenshotDir, name)
		if err := writeImage(path, img, encodePNG); err != nil {
			Logger().Warn("screenshot: write failed", "path", path, "error", err)
		}
	}
}

// Snapshot returns a copy of the canvas as it is now. On a windowed board
// the canvas lives on the GPU and can only be read while the window is
// open, from a callback.
func (b *Board) Snapshot() *image.NRGBA { return b.surface.Snapshot() }

// ErrWindowNotRunning is returned by the SaveAs methods of a windowed board
// before its window has opened or after it has closed.
var ErrWindowNotRunning = errors.New("drawingboard: window is not running")

func (b *Board) readCanvas() (*image.NRGBA, error) {
	if b.window != nil && !b.window.running {
		return nil, ErrWindowNotRunning
	}
	return b.surface.Snapshot(), nil
}

// SaveAsPNG writes the canvas to path as PNG. On a windowed board call it
// from a callback.
func (b *Board) SaveAsPNG(path string) error {
	return b.save(path, encodePNG)
}

// SaveAsJPEG writes the canvas to path as JPEG at the given quality (1-100).
func (b *Board) SaveAsJPEG(path string, quality int) error {
	return b.save(path, func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	})
}

// SaveAsGIF writes the canvas to path as a single-frame GIF.
func (b *Board) SaveAsGIF(path string) error {
	return b.save(path, func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	})
}

func (b *Board) save(path string, encode func(io.Writer, image.Image) error) error {
	img, err := b.readCanvas()
	if err != nil {
		return err
	}
	return writeImage(path, img, encode)
}

func encodePNG(w io.Writer, img image.Image) error { return png.Encode(w, img) }

// writeImage encodes img to a file at path.
func writeImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// unpremultiply converts premultiplied RGBA pixels, as read back from the
// GPU, to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for p := img.Pix; len(p) >= 4; p = p[4:] {
		a := int(p[3])
		if a == 0 || a == 255 {
			continue
		}
		for c := range 3 {
			p[c] = uint8(min(int(p[c])*255/a, 255))
		}
	}
	return img
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and turns
// everything else into '_'. An empty label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r > unicode.MaxASCII:
			return '_'
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
