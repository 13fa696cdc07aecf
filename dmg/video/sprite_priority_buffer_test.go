package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpritePriorityBufferFirstClaimWins(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()

	buf.tryClaim(10, 5, 10)
	assert.Equal(t, 5, buf.ownerOf(10))
}

func TestSpritePriorityBufferLowerXWins(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()

	buf.tryClaim(10, 5, 20) // sprite at X=20 claims first
	buf.tryClaim(10, 7, 10) // sprite at X=10 claims same pixel, lower X wins

	assert.Equal(t, 7, buf.ownerOf(10))
}

func TestSpritePriorityBufferTieGoesToLowerOAMIndex(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()

	buf.tryClaim(10, 7, 10)
	buf.tryClaim(10, 3, 10) // same X, lower OAM index wins

	assert.Equal(t, 3, buf.ownerOf(10))
}

func TestSpritePriorityBufferHigherXLoses(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()

	buf.tryClaim(10, 3, 10)
	buf.tryClaim(10, 1, 20) // higher X, even with a lower OAM index, loses

	assert.Equal(t, 3, buf.ownerOf(10))
}

func TestSpritePriorityBufferOutOfRangeIsIgnored(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()

	buf.tryClaim(-1, 1, 0)
	buf.tryClaim(Width, 1, 0)

	assert.Equal(t, -1, buf.ownerOf(-1))
	assert.Equal(t, -1, buf.ownerOf(Width))
}

func TestSpritePriorityBufferClearResetsOwnership(t *testing.T) {
	var buf spritePriorityBuffer
	buf.clear()
	buf.tryClaim(0, 1, 0)
	assert.Equal(t, 1, buf.ownerOf(0))

	buf.clear()
	assert.Equal(t, -1, buf.ownerOf(0))
}
