package drawingboard

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how integer color components are interpreted by Stroke,
// Fill, Background and TextColor. Every component, including hue, is given in
// [0, 255]; hue is remapped onto [0, 360) degrees and saturation, brightness
// and lightness onto [0, 1].
type ColorMode uint8

const (
	ColorRGB ColorMode = iota // red, green, blue
	ColorHSB                  // hue, saturation, brightness (HSV)
	ColorHSL                  // hue, saturation, lightness
)

const componentMax = 255

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	grey  = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
)

func (m ColorMode) String() string {
	switch m {
	case ColorRGB:
		return "RGB"
	case ColorHSB:
		return "HSB"
	case ColorHSL:
		return "HSL"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// componentNames returns the names used in range errors.
func (m ColorMode) componentNames() [3]string {
	if m == ColorRGB {
		return [3]string{"R", "G", "B"}
	}
	return [3]string{"hue", "saturation", "brightness/lightness"}
}

// Color builds a color from 1 to 4 components:
//
//	(grey)            grey, opaque
//	(grey, alpha)     grey with alpha
//	(a, b, c)         three channels, opaque
//	(a, b, c, alpha)  three channels with alpha
//
// In HSB and HSL modes a grey value is treated as (0, 0, grey). Components
// outside [0, 255] are rejected with a *ColorRangeError, never clamped.
func (m ColorMode) Color(v ...int) (color.NRGBA, error) {
	var c [3]int
	alpha := componentMax
	switch len(v) {
	case 1, 2:
		if m == ColorRGB {
			c = [3]int{v[0], v[0], v[0]}
		} else {
			c = [3]int{0, 0, v[0]}
		}
		if len(v) == 2 {
			alpha = v[1]
		}
	case 3, 4:
		c = [3]int{v[0], v[1], v[2]}
		if len(v) == 4 {
			alpha = v[3]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("%w: got %d", ErrComponentCount, len(v))
	}

	names := m.componentNames()
	for i, x := range c {
		if x < 0 || x > componentMax {
			return color.NRGBA{}, &ColorRangeError{Component: names[i], Value: x, Max: componentMax, Mode: m}
		}
	}
	if alpha < 0 || alpha > componentMax {
		return color.NRGBA{}, &ColorRangeError{Component: "alpha", Value: alpha, Max: componentMax, Mode: m}
	}

	var r, g, b uint8
	switch m {
	case ColorHSB:
		r, g, b = hsb(c[0], c[1], c[2]).Clamped().RGB255()
	case ColorHSL:
		r, g, b = hsl(c[0], c[1], c[2]).Clamped().RGB255()
	default:
		r, g, b = uint8(c[0]), uint8(c[1]), uint8(c[2])
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

func hsb(h, s, v int) colorful.Color {
	return colorful.Hsv(hueDegrees(h), unit(s), unit(v))
}

func hsl(h, s, l int) colorful.Color {
	return colorful.Hsl(hueDegrees(h), unit(s), unit(l))
}

// hueDegrees maps [0, 255] onto [0, 360). 255 wraps to red like 0.
func hueDegrees(h int) float64 {
	d := 360 * float64(h) / componentMax
	if d >= 360 {
		d -= 360
	}
	return d
}

func unit(v int) float64 { return float64(v) / componentMax }

// toNRGBA converts any color.Color to straight-alpha NRGBA.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// premultiplied returns c as premultiplied RGBA float32 components in [0, 1],
// the form ebiten vertex colors take.
func premultiplied(c color.NRGBA) (r, g, b, a float32) {
	a = float32(c.A) / 255
	return float32(c.R) / 255 * a, float32(c.G) / 255 * a, float32(c.B) / 255 * a, a
}
