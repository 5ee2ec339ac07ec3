// Package color converts between the color formats shown by the color picker app.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHex is the color the picker opens with
const DefaultHex = "#3B82F6"

// ErrInvalidHex is returned for strings that are not #RRGGBB colors
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const hexDigits = "0123456789ABCDEF"

// RGB is a color with 8-bit channels
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex validates a #RRGGBB color and returns it upper-cased
func ParseHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q (expected #RRGGBB)", ErrInvalidHex, s)
	}
	return strings.ToUpper(s), nil
}

// HexToRGB converts a #RRGGBB color to its channels
func HexToRGB(hex string) (RGB, error) {
	normalized, err := ParseHex(hex)
	if err != nil {
		return RGB{}, err
	}
	v, err := strconv.ParseUint(normalized[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("failed to parse hex color %q: %w", hex, err)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// String formats the color as rgb(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex formats the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSL formats the color as hsl(h, s%, l%) with each part rounded
func (c RGB) HSL() string {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", roundHalfUp(h*360), roundHalfUp(s*100), roundHalfUp(l*100))
}

// Random returns a random #RRGGBB color. intN must return a value in [0, n).
func Random(intN func(n int) int) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for i := 0; i < 6; i++ {
		sb.WriteByte(hexDigits[intN(len(hexDigits))])
	}
	return sb.String()
}

// roundHalfUp matches how the picker rounds displayed values
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
