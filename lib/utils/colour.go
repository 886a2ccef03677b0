package utils

import (
	"fmt"
	"image/color"
	"regexp"
)

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour as GL expects it.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	return colourPattern.MatchString(c)
}

func ColourParse(s string) (c color.RGBA) {
	_, _ = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	return
}

func ColourFromRGBA(c color.RGBA) Colour {
	return Colour{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5), uint8(c.A*255+0.5))
}
