// Package cpu implements the 65C816 interpreter: fetch, decode, execute,
// and flag/mode management.
package cpu

import (
	"snes816/bus"
	"snes816/log"
)

// Flag bits of the P status register.
type Flag uint8

const (
	FlagC Flag = 1 << 0 // carry
	FlagZ Flag = 1 << 1 // zero
	FlagI Flag = 1 << 2 // IRQ disable
	FlagD Flag = 1 << 3 // decimal
	FlagX Flag = 1 << 4 // index width (1 = 8-bit)
	FlagM Flag = 1 << 5 // accumulator/memory width (1 = 8-bit)
	FlagV Flag = 1 << 6 // overflow
	FlagN Flag = 1 << 7 // negative
)

// Vector addresses (bank 0).
const (
	vecCOPNative    = uint16(0xFFE4)
	vecCOPEmu       = uint16(0xFFF4)
	vecBRKNative    = uint16(0xFFE6)
	vecBRKEmu       = uint16(0xFFFE)
	vecNMINative    = uint16(0xFFEA)
	vecNMIEmu       = uint16(0xFFFA)
	vecReset        = uint16(0xFFFC)
	vecIRQNative    = uint16(0xFFEE)
	vecIRQEmu       = uint16(0xFFFE)
)

// CPU is a 65C816 interpreter driven one step at a time by System.
type CPU struct {
	Bus *bus.Bus

	A, X, Y, S, D uint16
	DB, PB        uint8
	PC            uint16
	P             Flag
	E             bool // emulation mode

	Cycles int64

	// Interrupt lines, raised through System and consumed at the next
	// instruction boundary.
	nmiPending bool
	irqLine    bool

	dbg Debugger
}

func New(b *bus.Bus) *CPU {
	return &CPU{Bus: b, dbg: nopDebugger{}}
}

func (c *CPU) SetDebugger(dbg Debugger) {
	if dbg == nil {
		dbg = nopDebugger{}
	}
	c.dbg = dbg
}

// Reset puts the CPU in its post-power-on/reset state.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.D = 0
	c.DB = 0
	c.PB = 0
	c.S = 0x01FF
	c.P = FlagM | FlagX | FlagI
	c.E = true
	c.nmiPending = false
	c.irqLine = false
	c.PC = c.Bus.Read16(addr24(0, vecReset))
	c.Cycles = 0
	c.dbg.Reset()

	log.ModCPU.InfoZ("reset").Hex16("pc", c.PC).End()
}

// RaiseNMI is called by System when the PPU asserts its NMI line at the
// start of vblank.
func (c *CPU) RaiseNMI() { c.nmiPending = true }

// SetIRQLine reflects the level of the (single, shared) IRQ line.
func (c *CPU) SetIRQLine(asserted bool) { c.irqLine = asserted }

func addr24(bk uint8, off uint16) uint32 {
	return uint32(bk)<<16 | uint32(off)
}

func (c *CPU) pc24() uint32 { return addr24(c.PB, c.PC) }

/* bus access */

func (c *CPU) Read8(addr uint32) uint8    { return c.Bus.Read8(addr) }
func (c *CPU) Write8(addr uint32, v uint8) { c.Bus.Write8(addr, v) }
func (c *CPU) Read16(addr uint32) uint16  { return c.Bus.Read16(addr) }
func (c *CPU) Write16(addr uint32, v uint16) { c.Bus.Write16(addr, v) }
func (c *CPU) Read24(addr uint32) uint32  { return c.Bus.Read24(addr) }

func (c *CPU) fetch8() uint8 {
	v := c.Bus.Read8(c.pc24())
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) fetch24() uint32 {
	lo := c.fetch16()
	hi := c.fetch8()
	return uint32(lo) | uint32(hi)<<16
}

/* flags */

func (c *CPU) getFlag(f Flag) bool { return c.P&f != 0 }

func (c *CPU) setFlag(f Flag, on bool) {
	if on {
		c.P |= f
	} else {
		c.P &^= f
	}
}

// enforceEmulationInvariants re-applies emulation mode's forced M/X/S rules
// any time P, E, X or Y may have changed.
func (c *CPU) enforceEmulationInvariants() {
	if c.E {
		c.P |= FlagM | FlagX
		c.S = 0x0100 | (c.S & 0xFF)
	}
	if c.getFlag(FlagX) {
		c.X &= 0xFF
		c.Y &= 0xFF
	}
}

func widthOf(narrow bool) int {
	if narrow {
		return 1
	}
	return 2
}

func (c *CPU) widthA() int  { return widthOf(c.getFlag(FlagM)) }
func (c *CPU) widthXY() int { return widthOf(c.getFlag(FlagX)) }

func (c *CPU) updateNZ(val uint16, width int) {
	if width == 1 {
		c.setFlag(FlagZ, val&0xFF == 0)
		c.setFlag(FlagN, val&0x80 != 0)
	} else {
		c.setFlag(FlagZ, val == 0)
		c.setFlag(FlagN, val&0x8000 != 0)
	}
}

func (c *CPU) setA(val uint16, width int) {
	if width == 1 {
		c.A = (c.A &^ 0xFF) | (val & 0xFF)
	} else {
		c.A = val
	}
}

func (c *CPU) setX(val uint16, width int) {
	if width == 1 {
		c.X = val & 0xFF
	} else {
		c.X = val
	}
}

func (c *CPU) setY(val uint16, width int) {
	if width == 1 {
		c.Y = val & 0xFF
	} else {
		c.Y = val
	}
}

/* stack */

func (c *CPU) pushByte(val uint8) {
	c.Bus.Write8(addr24(0, c.S), val)
	c.S--
	if c.E {
		c.S = 0x0100 | (c.S & 0xFF)
	}
}

func (c *CPU) popByte() uint8 {
	c.S++
	if c.E {
		c.S = 0x0100 | (c.S & 0xFF)
	}
	return c.Bus.Read8(addr24(0, c.S))
}

func (c *CPU) pushWord(val uint16) {
	c.pushByte(uint8(val >> 8))
	c.pushByte(uint8(val))
}

func (c *CPU) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) pushA(width int) {
	if width == 1 {
		c.pushByte(uint8(c.A))
	} else {
		c.pushWord(c.A)
	}
}

func (c *CPU) popA(width int) {
	if width == 1 {
		c.setA(uint16(c.popByte()), 1)
	} else {
		c.setA(c.popWord(), 2)
	}
}

/* fetch / decode / execute */

// Step delivers a pending NMI or IRQ if there is one; otherwise it
// executes exactly one instruction.
func (c *CPU) Step() {
	if c.nmiPending {
		c.nmiPending = false
		c.deliverInterrupt(true)
		return
	}
	if c.irqLine && !c.getFlag(FlagI) {
		c.deliverInterrupt(false)
		return
	}

	opcode := c.fetch8()
	c.dbg.Trace(c.PC - 1)

	op := opTable[opcode]
	if op.exec == nil {
		log.ModCPU.WarnZ("unknown opcode").
			Hex16("pc", c.PC-1).
			Hex8("opcode", opcode).
			End()
		c.Cycles += 2
		return
	}
	op.exec(c)
	c.Cycles += int64(op.cycles)
}

// Run executes instructions until at least ncycles have elapsed.
func (c *CPU) Run(ncycles int64) {
	until := c.Cycles + ncycles
	for c.Cycles < until {
		c.Step()
	}
}
