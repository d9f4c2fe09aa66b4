package drawingboard

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestGoFontStyles(t *testing.T) {
	tests := []struct {
		style FontStyle
		want  string
	}{
		{FontRegular, "Go Regular"},
		{FontBold, "Go Bold"},
		{FontItalic, "Go Italic"},
		{FontBold | FontItalic, "Go Bold Italic"},
	}
	for _, tt := range tests {
		if got := GoFont(tt.style).Name(); got != tt.want {
			t.Errorf("GoFont(%d).Name() = %q, want %q", tt.style, got, tt.want)
		}
	}
	if DefaultFont() != GoFont(FontRegular) {
		t.Error("DefaultFont is not the regular Go font")
	}
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont("mono", gomono.TTF)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Name() != "mono" {
		t.Errorf("Name = %q", f.Name())
	}
	if _, err := LoadFont("junk", []byte("not a font")); err == nil {
		t.Error("LoadFont accepted garbage")
	}
}

func TestFontFaceCache(t *testing.T) {
	f := DefaultFont()
	a, err := f.ggFace(14)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := f.ggFace(14)
	c, _ := f.ggFace(20)
	if a != b {
		t.Error("same size returned a new face")
	}
	if a == c {
		t.Error("different sizes share a face")
	}
}

func TestBoardFontSelection(t *testing.T) {
	b, rs := newTestBoard(t, 100, 100)
	b.FontStyle(FontBold)
	if b.Style().Font.Name() != "Go Bold" {
		t.Errorf("font = %q", b.Style().Font.Name())
	}
	b.Font(nil)
	if b.Style().Font != DefaultFont() {
		t.Error("Font(nil) did not select the default font")
	}

	b.TextStyled("x", 0, 0, true, true)
	if rs.last.Font.Name() != "Go Bold Italic" {
		t.Errorf("TextStyled font = %q", rs.last.Font.Name())
	}
	if b.Style().Font != DefaultFont() {
		t.Error("TextStyled changed the current font")
	}
}
