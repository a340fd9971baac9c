// Package bus implements the 65C816 system bus: address decoding between
// work RAM, save RAM, ROM (LoROM/HiROM mapping), interrupt-vector mirrors,
// and delegated I/O regions for the PPU and APU.
package bus

import (
	"errors"
	"fmt"

	"snes816/log"
)

const (
	wramSize  = 128 * 1024
	sramSize  = 32 * 1024
	ioShadowSize = 24 * 1024 // covers offsets 0x2000-0x7FFF

	romTailVectors = 32 // last 32 bytes of ROM hold the vector table
)

// ErrInvalidROM is returned by LoadROM when the ROM (after optional
// copier-header strip) is shorter than the minimum bank size.
var ErrInvalidROM = errors.New("bus: ROM length below 0x8000 after header strip")

// Hooks are the non-owning handles the Bus uses to delegate I/O-mapped
// reads/writes to the PPU and APU without importing their packages. The
// System wires these at construction time so Bus never imports ppu or apu directly.
type Hooks struct {
	ReadPPUReg  func(addr uint16) uint8
	WritePPUReg func(addr uint16, val uint8)
	ReadAPUPort func(port int) uint8
	WriteAPUPort func(port int, val uint8)
}

// Bus owns WRAM, SRAM, ROM and the I/O shadow, and decodes every CPU
// address.
type Bus struct {
	hooks Hooks

	wram     [wramSize]byte
	sram     [sramSize]byte
	ioShadow [ioShadowSize]byte
	rom      []byte

	// Diagnostic vector report, filled by LoadROM.
	LastVectors VectorReport
}

// VectorReport holds the five interrupt vector words parsed from the ROM
// tail. It is diagnostic only, not normative.
type VectorReport struct {
	COP, BRK, NMI, RESET, IRQ uint16
}

func New(hooks Hooks) *Bus {
	return &Bus{hooks: hooks}
}

// Reset zeroes WRAM, SRAM and the I/O shadow. ROM contents are untouched.
func (b *Bus) Reset() {
	clear(b.wram[:])
	clear(b.sram[:])
	clear(b.ioShadow[:])
}

// LoadROM stores a copy of rom, stripping a 512-byte copier header when
// present, and parses (but does not validate) the vector table at the
// tail of the resulting image.
func (b *Bus) LoadROM(rom []byte) error {
	data := rom
	if len(data)%0x8000 == 0x200 {
		data = data[0x200:]
	}
	if len(data) < 0x8000 {
		return fmt.Errorf("%w: got %#x bytes", ErrInvalidROM, len(data))
	}

	b.rom = make([]byte, len(data))
	copy(b.rom, data)

	tail := b.rom[len(b.rom)-romTailVectors:]
	rd16 := func(off int) uint16 { return uint16(tail[off]) | uint16(tail[off+1])<<8 }
	b.LastVectors = VectorReport{
		COP:   rd16(0x14),
		BRK:   rd16(0x16),
		NMI:   rd16(0x1A),
		RESET: rd16(0x1C),
		IRQ:   rd16(0x1E),
	}

	log.ModBus.InfoZ("ROM loaded").
		Uint("size", uint64(len(b.rom))).
		Hex16("reset", b.LastVectors.RESET).
		Hex16("nmi", b.LastVectors.NMI).
		Hex16("irq", b.LastVectors.IRQ).
		End()
	return nil
}

// ROMLen reports the size of the currently loaded ROM image.
func (b *Bus) ROMLen() int { return len(b.rom) }

func bank(addr uint32) uint8   { return uint8(addr >> 16) }
func offset(addr uint32) uint16 { return uint16(addr) }

func isSystemBank(bk uint8) bool {
	return (bk <= 0x3F) || (bk >= 0x80 && bk <= 0xBF)
}

func isWRAMBank(bk uint8) bool { return bk == 0x7E || bk == 0x7F }

func isHiROMBank(bk uint8) bool {
	return (bk >= 0x40 && bk <= 0x7D) || (bk >= 0xC0 && bk <= 0xFF)
}

// Read8 decodes a 24-bit CPU address into the chip or region that owns it.
func (b *Bus) Read8(addr uint32) uint8 {
	addr &= 0xFFFFFF
	bk, off := bank(addr), offset(addr)

	switch {
	case isWRAMBank(bk):
		return b.wram[int(bk-0x7E)<<16|int(off)]

	case isSystemBank(bk):
		switch {
		case off < 0x2000:
			return b.wram[off]
		case off >= 0x2100 && off <= 0x21FF:
			if b.hooks.ReadPPUReg != nil {
				return b.hooks.ReadPPUReg(off)
			}
			return b.openBus()
		case off >= 0x2200 && off <= 0x3FFF:
			return b.ioShadow[off-0x2000]
		case off >= 0x4000 && off <= 0x4003:
			if b.hooks.ReadAPUPort != nil {
				return b.hooks.ReadAPUPort(int(off - 0x4000))
			}
			return b.openBus()
		case off >= 0x4004 && off <= 0x5FFF:
			return b.ioShadow[off-0x2000]
		case off >= 0x6000 && off <= 0x7FFF:
			return b.sram[off-0x6000]
		case off >= 0x8000:
			return b.readLoROM(bk, off)
		default:
			return b.openBus()
		}

	case isHiROMBank(bk):
		return b.readLinear(addr)

	default:
		return b.openBus()
	}
}

func (b *Bus) readLoROM(bk uint8, off uint16) uint8 {
	if off >= 0xFFE0 {
		return b.readVectorTail(off)
	}
	if len(b.rom) == 0 {
		return b.openBus()
	}
	romOff := int(bk&0x7F)*0x8000 + int(off-0x8000)
	if romOff < 0 || romOff >= len(b.rom) {
		return b.openBus()
	}
	return b.rom[romOff]
}

func (b *Bus) readVectorTail(off uint16) uint8 {
	if len(b.rom) < romTailVectors {
		return b.openBus()
	}
	tailOff := int(off) - 0xFFE0
	return b.rom[len(b.rom)-romTailVectors+tailOff]
}

func (b *Bus) readLinear(addr uint32) uint8 {
	if len(b.rom) == 0 {
		return b.openBus()
	}
	romOff := int(addr) % len(b.rom)
	return b.rom[romOff]
}

func (b *Bus) openBus() uint8 {
	return 0xFF
}

// Write8 mirrors the read decode table; writes aimed at ROM are dropped.
func (b *Bus) Write8(addr uint32, val uint8) {
	addr &= 0xFFFFFF
	bk, off := bank(addr), offset(addr)

	switch {
	case isWRAMBank(bk):
		b.wram[int(bk-0x7E)<<16|int(off)] = val
		return

	case isSystemBank(bk):
		switch {
		case off < 0x2000:
			b.wram[off] = val
		case off >= 0x2100 && off <= 0x21FF:
			if b.hooks.WritePPUReg != nil {
				b.hooks.WritePPUReg(off, val)
			}
		case off >= 0x2200 && off <= 0x3FFF:
			b.ioShadow[off-0x2000] = val
		case off >= 0x4000 && off <= 0x4003:
			if b.hooks.WriteAPUPort != nil {
				b.hooks.WriteAPUPort(int(off-0x4000), val)
			}
		case off >= 0x4004 && off <= 0x5FFF:
			b.ioShadow[off-0x2000] = val
		case off >= 0x6000 && off <= 0x7FFF:
			b.sram[off-0x6000] = val
		case off >= 0x8000:
			log.ModBus.DebugZ("write to ROM dropped").Hex24("addr", addr).End()
		}

	case isHiROMBank(bk):
		log.ModBus.DebugZ("write to ROM dropped").Hex24("addr", addr).End()

	default:
		log.ModBus.DebugZ("write to unmapped region dropped").Hex24("addr", addr).End()
	}
}

func (b *Bus) Read16(addr uint32) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (b *Bus) Write16(addr uint32, val uint16) {
	b.Write8(addr, uint8(val))
	b.Write8(addr+1, uint8(val>>8))
}

func (b *Bus) Read24(addr uint32) uint32 {
	b0 := b.Read8(addr)
	b1 := b.Read8(addr + 1)
	b2 := b.Read8(addr + 2)
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
}

func (b *Bus) Write24(addr uint32, val uint32) {
	b.Write8(addr, uint8(val))
	b.Write8(addr+1, uint8(val>>8))
	b.Write8(addr+2, uint8(val>>16))
}
