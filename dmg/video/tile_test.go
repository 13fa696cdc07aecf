package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileRowAtCombinesLowAndHighPlanes(t *testing.T) {
	row := TileRow{Low: 0b10000000, High: 0b10000000}
	assert.Equal(t, uint8(3), row.At(0)) // both planes set: index 3

	row = TileRow{Low: 0b01000000, High: 0b00000000}
	assert.Equal(t, uint8(1), row.At(1))

	row = TileRow{Low: 0b00000000, High: 0b00100000}
	assert.Equal(t, uint8(2), row.At(2))

	row = TileRow{Low: 0, High: 0}
	assert.Equal(t, uint8(0), row.At(7))
}

func TestTileRowAtFlippedReadsRightToLeft(t *testing.T) {
	row := TileRow{Low: 0b10000000, High: 0}
	assert.Equal(t, row.At(0), row.AtFlipped(7))
	assert.Equal(t, row.At(7), row.AtFlipped(0))
}
