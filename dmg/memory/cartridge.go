package memory

import (
	"fmt"
	"strings"
	"unicode"
)

// mbcKind identifies which bank controller a cartridge header selects.
type mbcKind uint8

const (
	mbcNone mbcKind = iota
	mbcMBC1
	mbcMBC2
)

const (
	titleAddress         = 0x0134
	titleLength          = 15
	cartridgeTypeAddress = 0x0147
	romSizeAddress       = 0x0148
	ramSizeAddress       = 0x0149
	minCartridgeSize     = 0x8000
)

// Cartridge holds the raw ROM image plus the header fields the MMU
// needs to pick and configure a bank controller.
type Cartridge struct {
	data     []byte
	title    string
	kind     mbcKind
	ramBanks uint8
}

// NewCartridge returns an empty, bank-0-only cartridge; useful for
// booting the core with nothing inserted.
func NewCartridge() *Cartridge {
	return &Cartridge{data: make([]byte, minCartridgeSize)}
}

// NewCartridgeWithData parses a ROM image's header and returns a
// Cartridge, or an error if the image is too short or names an
// unsupported bank controller (MBC3/5/6/7, RTC, rumble - all
// explicitly out of scope).
func NewCartridgeWithData(data []byte) (*Cartridge, error) {
	if len(data) < minCartridgeSize {
		return nil, fmt.Errorf("cartridge image too short: got %d bytes, need at least %d", len(data), minCartridgeSize)
	}

	cart := &Cartridge{
		data:  make([]byte, len(data)),
		title: cleanTitle(data[titleAddress : titleAddress+titleLength]),
	}
	copy(cart.data, data)

	cartType := data[cartridgeTypeAddress]
	switch cartType {
	case 0x00:
		cart.kind = mbcNone
	case 0x01, 0x02, 0x03:
		cart.kind = mbcMBC1
	case 0x05, 0x06:
		cart.kind = mbcMBC2
	default:
		return nil, fmt.Errorf("unsupported cartridge type 0x%02X (only ROM-only, MBC1 and MBC2 are supported)", cartType)
	}

	cart.ramBanks = ramBankCount(data[ramSizeAddress])

	return cart, nil
}

// ramBankCount maps header byte 0x0149 to a bank count, clamped to the
// four 8 KiB banks the MMU's external RAM storage supports.
func ramBankCount(code byte) uint8 {
	switch code {
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04, 0x05:
		return 4
	default:
		return 0
	}
}

// Title returns the cleaned-up ROM title from the cartridge header.
func (c *Cartridge) Title() string {
	return c.title
}

func cleanTitle(raw []byte) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		switch {
		case r == 0:
			continue
		case unicode.IsPrint(r):
			runes = append(runes, r)
		}
	}
	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(untitled)"
	}
	return title
}
