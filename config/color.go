package config

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied color with components in [0, 1].
type Color gg.RGBA

func (c Color) RGBA() gg.RGBA {
	return gg.RGBA(c)
}

// ParseColor accepts #RGB, #RGBA, #RRGGBB, #RRGGBBAA or an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if !isHex(hex) {
			return Color{}, fmt.Errorf("malformed hex color %q", s)
		}

		return Color(gg.Hex(hex)), nil
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color(gg.FromColor(named)), nil
	}

	return Color{}, fmt.Errorf("unknown color %q", s)
}

func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}

	return c
}

func isHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}

	for _, ch := range s {
		switch {
		case '0' <= ch && ch <= '9', 'a' <= ch && ch <= 'f', 'A' <= ch && ch <= 'F':
		default:
			return false
		}
	}

	return true
}
