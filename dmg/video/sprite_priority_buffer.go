package video

// spritePriorityBuffer resolves sprite-to-pixel ownership for DMG's
// sprite drawing priority: the sprite with the lowest X wins a pixel,
// ties going to the lower OAM index. A per-pixel ownership model
// avoids sorting the scanline's sprites: each sprite, visited in OAM
// order, tries to claim every pixel it covers, winning only if no
// current owner beats it on (X, OAM index).
type spritePriorityBuffer struct {
	owner  [Width]int
	ownerX [Width]int
}

func (s *spritePriorityBuffer) clear() {
	for i := range s.owner {
		s.owner[i] = -1
		s.ownerX[i] = 0xFF
	}
}

func (s *spritePriorityBuffer) tryClaim(pixelX, oamIndex, spriteX int) {
	if pixelX < 0 || pixelX >= Width {
		return
	}

	current := s.owner[pixelX]
	if current == -1 {
		s.owner[pixelX] = oamIndex
		s.ownerX[pixelX] = spriteX
		return
	}

	currentX := s.ownerX[pixelX]
	if spriteX < currentX || (spriteX == currentX && oamIndex < current) {
		s.owner[pixelX] = oamIndex
		s.ownerX[pixelX] = spriteX
	}
}

func (s *spritePriorityBuffer) ownerOf(pixelX int) int {
	if pixelX < 0 || pixelX >= Width {
		return -1
	}
	return s.owner[pixelX]
}
