package core

import "fmt"

// Color is a 32-bit ARGB color (0xAARRGGBB).
type Color uint32

// Predefined colors for game elements.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorYellow      Color = 0xFFFFFF00
	ColorBackground  Color = 0xFF0A0A1A
	ColorStar        Color = 0xAAFFFFFF
	ColorGlow        Color = 0x44FFFFFF
	ColorOverlay     Color = 0xAA000000
)

// ARGB builds a color from its channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Scale multiplies each color channel by num/den, keeping alpha.
// Integer arithmetic matches how damaged bricks are darkened (6/10).
func (c Color) Scale(num, den int) Color {
	if den == 0 {
		return c
	}
	ch := func(v uint8) uint8 {
		return uint8(int(v) * num / den) //#nosec G115 -- num/den <= 1 for darkening
	}
	return ARGB(c.A(), ch(c.R()), ch(c.G()), ch(c.B()))
}

// Hex returns the color as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// RGBA implements image/color.Color so hosts can pass Color directly
// to drawing libraries. Channels are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * a / 0xFF
	g = uint32(c.G()) * a / 0xFF
	b = uint32(c.B()) * a / 0xFF
	// Expand 8-bit to 16-bit
	return r | r<<8, g | g<<8, b | b<<8, a | a<<8
}
