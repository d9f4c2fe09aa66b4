package drawingboard

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontStyle selects a variant of the built-in Go font family.
type FontStyle uint8

const (
	FontRegular FontStyle = 0
	FontBold    FontStyle = 1
	FontItalic  FontStyle = 2
)

// Font is a TrueType font usable by every Surface. The raw data is parsed
// lazily, once per backend, the first time a backend draws with it. Faces
// are sized at draw time, so one Font serves every FontSize.
type Font struct {
	name string
	data []byte

	ebOnce   sync.Once
	ebSource *text.GoTextFaceSource
	ebErr    error

	ttOnce sync.Once
	tt     *truetype.Font
	ttErr  error

	mu      sync.Mutex
	ggFaces map[float64]font.Face
}

// LoadFont parses TTF data and returns a Font. The data is validated
// eagerly so a broken file fails here rather than mid-frame.
func LoadFont(name string, ttf []byte) (*Font, error) {
	f := &Font{name: name, data: ttf}
	if _, err := f.truetype(); err != nil {
		return nil, err
	}
	return f, nil
}

// Name returns the name given to LoadFont.
func (f *Font) Name() string { return f.name }

// ebitenSource returns the text/v2 face source.
func (f *Font) ebitenSource() (*text.GoTextFaceSource, error) {
	f.ebOnce.Do(func() {
		f.ebSource, f.ebErr = text.NewGoTextFaceSource(bytes.NewReader(f.data))
		if f.ebErr != nil {
			f.ebErr = fmt.Errorf("drawingboard: parse font %q: %w", f.name, f.ebErr)
		}
	})
	return f.ebSource, f.ebErr
}

// ebitenFace returns a text/v2 face at the given size.
func (f *Font) ebitenFace(size float64) (*text.GoTextFace, error) {
	src, err := f.ebitenSource()
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func (f *Font) truetype() (*truetype.Font, error) {
	f.ttOnce.Do(func() {
		f.tt, f.ttErr = truetype.Parse(f.data)
		if f.ttErr != nil {
			f.ttErr = fmt.Errorf("drawingboard: parse font %q: %w", f.name, f.ttErr)
		}
	})
	return f.tt, f.ttErr
}

// ggFace returns a cached x/image face at the given size for the gg surface.
func (f *Font) ggFace(size float64) (font.Face, error) {
	tt, err := f.truetype()
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.ggFaces[size]; ok {
		return face, nil
	}
	if f.ggFaces == nil {
		f.ggFaces = make(map[float64]font.Face)
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: size})
	f.ggFaces[size] = face
	return face, nil
}

var (
	goFontsOnce sync.Once
	goFonts     [4]*Font
)

// GoFont returns the built-in Go font in the requested style.
func GoFont(style FontStyle) *Font {
	goFontsOnce.Do(func() {
		goFonts[FontRegular] = &Font{name: "Go Regular", data: goregular.TTF}
		goFonts[FontBold] = &Font{name: "Go Bold", data: gobold.TTF}
		goFonts[FontItalic] = &Font{name: "Go Italic", data: goitalic.TTF}
		goFonts[FontBold|FontItalic] = &Font{name: "Go Bold Italic", data: gobolditalic.TTF}
	})
	return goFonts[style&(FontBold|FontItalic)]
}

// DefaultFont returns the regular Go font.
func DefaultFont() *Font { return GoFont(FontRegular) }
