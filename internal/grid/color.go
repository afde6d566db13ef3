package grid

import "fmt"

// Color is a packed 8-bit tint: 3 bits red, 3 bits green, 2 bits blue.
// Renderers multiply sprite pixels by the unpacked channels, so ColorMax
// leaves a tile untinted and 0 blacks it out. 0 doubles as the sentinel
// for out-of-range reads.
type Color uint8

// ColorMax is fully white: every channel at its ceiling.
const ColorMax Color = 0xff

// RGB packs 8-bit channels into a Color, keeping the top 3/3/2 bits.
func RGB(r, g, b uint8) Color {
	return Color(r&0xe0 | (g>>3)&0x1c | b>>6)
}

// R returns the red channel scaled back to 0-255.
func (c Color) R() uint8 {
	return uint8(uint16(c>>5&0x07) * 255 / 7)
}

// G returns the green channel scaled back to 0-255.
func (c Color) G() uint8 {
	return uint8(uint16(c>>2&0x07) * 255 / 7)
}

// B returns the blue channel scaled back to 0-255.
func (c Color) B() uint8 {
	return uint8(uint16(c&0x03) * 255 / 3)
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}
