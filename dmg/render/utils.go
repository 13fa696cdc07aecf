// Package render holds presentation helpers shared by terminal-style
// backends: mapping the four-shade DMG palette onto half-block glyphs
// so two vertically adjacent pixels fit in one character cell.
package render

import "github.com/corewave/dmgcore/dmg/video"

// ShadeOf maps a rendered pixel to a 0-3 shade index, darkest first.
func ShadeOf(c video.Color) int {
	switch c {
	case video.Black:
		return 0
	case video.DarkGray:
		return 1
	case video.LightGray:
		return 2
	default:
		return 3
	}
}

// HalfBlockChar returns the Unicode half-block glyph that renders a
// pair of vertically stacked shades in one character cell: a full
// block when they match, upper/lower half blocks otherwise.
func HalfBlockChar(topShade, bottomShade int) rune {
	switch {
	case topShade == bottomShade:
		return '█'
	case topShade == 3 && bottomShade != 3:
		return '▄'
	default:
		return '▀'
	}
}
