package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

type rgb struct{ r, g, b float64 }

// parseRGB reads a #rrggbb color. Anything else reports false.
func parseRGB(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, true
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.r), channel(c.g), channel(c.b))
}

func channel(v float64) int {
	return min(255, max(0, int(v)))
}

// scale multiplies every channel by factor and lifts it to at least floor.
func (c rgb) scale(factor, floor float64) rgb {
	f := func(v float64) float64 { return max(math.Floor(v*factor), floor) }
	return rgb{f(c.r), f(c.g), f(c.b)}
}

func (c rgb) mix(o rgb, ratio float64) rgb {
	ratio = min(1, max(0, ratio))
	f := func(a, b float64) float64 { return math.Floor(a*(1-ratio) + b*ratio) }
	return rgb{f(c.r, o.r), f(c.g, o.g), f(c.b, o.b)}
}

func (c rgb) luminance() float64 {
	return 0.2126*linear(c.r) + 0.7152*linear(c.g) + 0.0722*linear(c.b)
}

func linear(v float64) float64 {
	v /= 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// darkenColor halves a color for slot backgrounds on dark themes.
func darkenColor(hex string) string {
	c, ok := parseRGB(hex)
	if !ok {
		return hex
	}
	return c.scale(0.50, 40).hex()
}

// muteColor dims a color far enough to read as not pickable.
func muteColor(hex string) string {
	c, ok := parseRGB(hex)
	if !ok {
		return hex
	}
	return c.scale(0.30, 30).hex()
}

// alternateShade shifts a slot background so adjacent slots stay apart.
func alternateShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.10)
	}
	return blendColors(hex, "#ffffff", 0.30)
}

func blendColors(a, b string, ratio float64) string {
	ca, okA := parseRGB(a)
	cb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	return ca.mix(cb, ratio).hex()
}

func relativeLuminance(hex string) float64 {
	c, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return c.luminance()
}

func contrastRatio(a, b string) float64 {
	hi, lo := relativeLuminance(a), relativeLuminance(b)
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

// chooseTextColor returns whichever of the two text colors reads better on bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

func reverseTextColor(darkBg, lightText string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: darkBg, Light: lightText}
}
