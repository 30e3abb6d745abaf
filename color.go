package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	bodyGray     = color.RGBA{245, 245, 245, 255}
	subtitleGray = color.RGBA{100, 100, 100, 255}
)

// parseHexColor converts "#rrggbb" (the leading '#' is optional) to an opaque RGBA.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimLeft(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
