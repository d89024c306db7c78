package terminal

import (
	"fmt"
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// ParseRGB parses "#rrggbb" or "rrggbb" hex notation
func ParseRGB(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := absInt(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to the nearest 256-color palette index.
// Grayscale-ish colors prefer the grayscale ramp (232-255) when it is
// a strictly better match than the color cube.
func RGBTo256(c RGB) uint8 {
	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	maxDiff := absInt(int(c.R) - gray)
	if d := absInt(int(c.G) - gray); d > maxDiff {
		maxDiff = d
	}
	if d := absInt(int(c.B) - gray); d > maxDiff {
		maxDiff = d
	}

	cr, cg, cb := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cube := 16 + 36*cr + 6*cg + cb

	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return 16 // cube black
	}
	if gray > 243 {
		return 231 // cube white
	}
	grayIdx := uint8(232 + (gray-8)/10)

	grayLevel := 8 + int(grayIdx-232)*10
	grayDist := absInt(int(c.R)-grayLevel) + absInt(int(c.G)-grayLevel) + absInt(int(c.B)-grayLevel)
	cubeDist := absInt(int(c.R)-int(cubeValues[cr])) +
		absInt(int(c.G)-int(cubeValues[cg])) +
		absInt(int(c.B)-int(cubeValues[cb]))
	if grayDist < cubeDist {
		return grayIdx
	}
	return cube
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
