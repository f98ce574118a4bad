package svg

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor turns #rgb or #rrggbb into an opaque color. Anything
// it cannot read comes back black, the same fallback imports use for
// missing fills.
func ParseHexColor(s string) color.NRGBA {
	black := color.NRGBA{A: 0xff}
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return black
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return black
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return black
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
