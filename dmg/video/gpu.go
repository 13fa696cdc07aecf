// Package video implements the scanline-based PPU: the LCD mode state
// machine, background/window/sprite rasterization, and the
// 160x144 framebuffer it renders into.
package video

import (
	"github.com/corewave/dmgcore/dmg/addr"
	"github.com/corewave/dmgcore/dmg/bit"
)

// Mode is one of the four LCD controller states, matching STAT bits 1-0.
type Mode uint8

const (
	ModeHBlank   Mode = 0
	ModeVBlank   Mode = 1
	ModeOAM      Mode = 2
	ModeTransfer Mode = 3
)

const scanlineCycles = 456

// PPU renders the DMG display one scanline at a time, driven by the
// same T-cycle count the CPU and timer advance on.
type PPU struct {
	bus Bus
	fb  FrameBuffer

	mode           Mode
	ly             int
	scanlineCycles int

	sprites spritePriorityBuffer
}

// New returns a PPU wired to bus, reset as if powering on mid V-Blank.
func New(bus Bus) *PPU {
	return &PPU{bus: bus, mode: ModeVBlank, ly: 144, scanlineCycles: scanlineCycles}
}

// FrameBuffer returns the most recently rendered frame.
func (p *PPU) FrameBuffer() *FrameBuffer {
	return &p.fb
}

func (p *PPU) lcdEnabled() bool {
	return bit.IsSet(7, p.bus.Read(addr.LCDC))
}

// Advance steps the PPU by cycles T-cycles, rendering a scanline each
// time one completes and requesting V-Blank/STAT interrupts as the
// mode machine dictates.
func (p *PPU) Advance(cycles int) {
	if !p.lcdEnabled() {
		p.setMode(ModeVBlank)
		p.scanlineCycles = scanlineCycles
		p.setLY(0)
		return
	}

	p.scanlineCycles -= cycles
	p.refreshMode()

	for p.scanlineCycles <= 0 {
		p.scanlineCycles += scanlineCycles
		p.advanceLine()
		p.refreshMode()
	}
}

// refreshMode recomputes the mode implied by (ly, scanlineCycles) and
// transitions into it, firing the STAT interrupt on entry if armed.
func (p *PPU) refreshMode() {
	var next Mode
	switch {
	case p.ly >= 144:
		next = ModeVBlank
	case p.scanlineCycles > scanlineCycles-80:
		next = ModeOAM
	case p.scanlineCycles > scanlineCycles-80-172:
		next = ModeTransfer
	default:
		next = ModeHBlank
	}

	if next == p.mode {
		return
	}
	p.setMode(next)

	var statBit uint8
	switch next {
	case ModeHBlank:
		statBit = 3
	case ModeVBlank:
		statBit = 4
	case ModeOAM:
		statBit = 5
	default:
		return // mode 3 never raises STAT
	}
	if bit.IsSet(statBit, p.bus.Read(addr.STAT)) {
		p.bus.RequestInterrupt(addr.LCDSTAT)
	}
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	stat := p.bus.Read(addr.STAT)
	stat = (stat &^ 0x03) | uint8(m)
	p.bus.Write(addr.STAT, stat)
}

func (p *PPU) advanceLine() {
	p.ly++
	if p.ly == 144 {
		p.bus.RequestInterrupt(addr.VBlank)
	}
	if p.ly > 153 {
		p.ly = 0
	}
	p.setLY(p.ly)
	if p.ly <= 143 {
		p.renderScanline(p.ly)
	}
}

func (p *PPU) setLY(line int) {
	p.ly = line
	p.bus.Write(addr.LY, byte(line))

	stat := p.bus.Read(addr.STAT)
	lyc := p.bus.Read(addr.LYC)
	if byte(line) == lyc {
		stat = bit.Set(2, stat)
		if bit.IsSet(6, stat) {
			p.bus.RequestInterrupt(addr.LCDSTAT)
		}
	} else {
		stat = bit.Reset(2, stat)
	}
	p.bus.Write(addr.STAT, stat)
}

func (p *PPU) renderScanline(ly int) {
	lcdc := p.bus.Read(addr.LCDC)

	if bit.IsSet(0, lcdc) {
		p.renderBackgroundAndWindow(ly, lcdc)
	} else {
		bgp := p.bus.Read(addr.BGP)
		color := colorFromIndex(bgp & 0x03)
		for x := 0; x < Width; x++ {
			p.fb.Set(x, ly, color)
		}
	}

	if bit.IsSet(1, lcdc) {
		p.renderSprites(ly, lcdc)
	}
}

func (p *PPU) tileRow(tilesBase uint16, signed bool, tileIndex byte, rowInTile int) TileRow {
	var addrBase uint16
	if signed {
		addrBase = uint16(int(tilesBase) + int(int8(tileIndex))*16)
	} else {
		addrBase = tilesBase + uint16(tileIndex)*16
	}
	rowAddr := addrBase + uint16(rowInTile*2)
	return TileRow{Low: p.bus.Read(rowAddr), High: p.bus.Read(rowAddr + 1)}
}

func (p *PPU) renderBackgroundAndWindow(ly int, lcdc byte) {
	scy := p.bus.Read(addr.SCY)
	scx := p.bus.Read(addr.SCX)
	wy := p.bus.Read(addr.WY)
	wx := int(p.bus.Read(addr.WX)) - 7

	signed := !bit.IsSet(4, lcdc)
	tilesBase := addr.TileData0
	if signed {
		tilesBase = addr.TileData2
	}

	bgMap := addr.TileMap0
	if bit.IsSet(3, lcdc) {
		bgMap = addr.TileMap1
	}
	winMap := addr.TileMap0
	if bit.IsSet(6, lcdc) {
		winMap = addr.TileMap1
	}

	windowActive := bit.IsSet(5, lcdc) && int(wy) <= ly
	bgp := p.bus.Read(addr.BGP)

	for x := 0; x < Width; x++ {
		inWindow := windowActive && x >= wx
		var mapBase uint16
		var bx, by int
		if inWindow {
			mapBase = winMap
			bx = x - wx
			by = ly - int(wy)
		} else {
			mapBase = bgMap
			bx = (int(scx) + x) & 0xFF
			by = (int(scy) + ly) & 0xFF
		}

		tileAddr := mapBase + uint16((by/8)*32+(bx/8))
		tileIndex := p.bus.Read(tileAddr)
		row := p.tileRow(tilesBase, signed, tileIndex, by%8)
		index := row.At(bx % 8)

		color := (bgp >> (index * 2)) & 0x03
		p.fb.Set(x, ly, colorFromIndex(color))
	}
}

func (p *PPU) renderSprites(ly int, lcdc byte) {
	sprites := scanSprites(p.bus, ly, &p.sprites)

	for _, s := range sprites {
		rowInSprite := ly - s.y
		if s.flipY {
			rowInSprite = s.height - 1 - rowInSprite
		}

		tile := s.tile
		if s.height == 16 {
			tile &^= 0x01
		}
		rowAddr := addr.TileData0 + uint16(tile)*16 + uint16(rowInSprite)*2
		row := TileRow{Low: p.bus.Read(rowAddr), High: p.bus.Read(rowAddr + 1)}

		palette := addr.OBP0
		if s.obp1 {
			palette = addr.OBP1
		}
		obp := p.bus.Read(palette)

		for px := 0; px < 8; px++ {
			if !s.ownsPixel(px) {
				continue
			}
			x := s.x + px
			if x < 0 || x >= Width {
				continue
			}

			var index uint8
			if s.flipX {
				index = row.AtFlipped(px)
			} else {
				index = row.At(px)
			}
			if index == 0 {
				continue
			}

			color := (obp >> (index * 2)) & 0x03
			p.fb.Set(x, ly, colorFromIndex(color))
		}
	}
}
