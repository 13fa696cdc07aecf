package video

import "github.com/corewave/dmgcore/dmg/bit"

// TileRow is one 8-pixel row of a tile pattern: two bit-planes, bit 7
// the leftmost pixel. Combining the corresponding bits of Low and High
// (Low contributing the low bit, High the high bit) yields each
// pixel's 2-bit color index.
type TileRow struct {
	Low, High byte
}

// At returns the color index (0-3) of pixel x (0 = leftmost).
func (t TileRow) At(x int) uint8 {
	i := uint8(7 - x)
	var v uint8
	if bit.IsSet(i, t.Low) {
		v |= 1
	}
	if bit.IsSet(i, t.High) {
		v |= 2
	}
	return v
}

// AtFlipped is At with the row read right-to-left, for horizontally
// flipped sprites.
func (t TileRow) AtFlipped(x int) uint8 {
	return t.At(7 - x)
}
