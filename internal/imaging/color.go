package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque color with 8-bit components.
//
// RGB is a value type: grids store copies, and transforms build new values
// rather than editing a sample in place.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Inverted returns the channel-wise complement 255-c.
func (c RGB) Inverted() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Gray returns a gray with every channel set to the truncated mean (r+g+b)/3.
func (c RGB) Gray() RGB {
	v := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
	return RGB{R: v, G: v, B: v}
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return strings.ToUpper(c.toColorful().Hex())
}

// HSL converts the color to HSL space.
func (c RGB) HSL() HSLColor {
	h, s, l := c.toColorful().Hsl()
	return HSLColor{
		H: int(h),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a sampled color in several representations.
type ColorResult struct {
	X   int      `json:"x"`
	Y   int      `json:"y"`
	Hex string   `json:"hex"` // "#RRGGBB"
	RGB RGB      `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// Sample reads the color at a single pixel.
//
// Parameters:
//   - g: The grid to sample from.
//   - x: Column (0-based, 0 = leftmost pixel).
//   - y: Row (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) as hex, RGB and HSL.
//   - error: Wraps ErrOutOfBounds if the coordinates fall outside the grid.
//
// # Color Conversion
//
// Hex and HSL are derived from the stored 8-bit RGB through go-colorful. Hue is
// truncated to whole degrees; saturation and lightness are rounded percentages.
func Sample(g *Grid, x, y int) (*ColorResult, error) {
	c, err := g.Get(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample color: %w", err)
	}
	return &ColorResult{
		X:   x,
		Y:   y,
		Hex: c.Hex(),
		RGB: c,
		HSL: c.HSL(),
	}, nil
}
