package cpu

// Effective-address calculators for the 65C816's addressing modes.
// Each returns a full 24-bit bus address. Modes that don't address memory
// (immediate, accumulator, implied, stack-relative pulls) are handled
// directly in their opcode bodies instead.

// dp: D + fetch8(), bank 0.
func (c *CPU) addrDP() uint32 {
	return addr24(0, c.D+uint16(c.fetch8()))
}

// dp,X / dp,Y
func (c *CPU) addrDPX() uint32 { return addr24(0, c.D+uint16(c.fetch8())+c.X) }
func (c *CPU) addrDPY() uint32 { return addr24(0, c.D+uint16(c.fetch8())+c.Y) }

// abs: (DB<<16) | fetch16()
func (c *CPU) addrAbs() uint32 { return addr24(c.DB, c.fetch16()) }

// abs,X / abs,Y: 16-bit offset wraps within the bank.
func (c *CPU) addrAbsX() uint32 { return addr24(c.DB, c.fetch16()+c.X) }
func (c *CPU) addrAbsY() uint32 { return addr24(c.DB, c.fetch16()+c.Y) }

// Absolute long / long,X
func (c *CPU) addrLong() uint32  { return c.fetch24() }
func (c *CPU) addrLongX() uint32 { return c.fetch24() + uint32(c.X) }

// (dp): 16-bit pointer at D+fetch8(), bank = DB
func (c *CPU) addrDPIndirect() uint32 {
	ptr := c.D + uint16(c.fetch8())
	return addr24(c.DB, c.Read16(addr24(0, ptr)))
}

// [dp]: 24-bit pointer at D+fetch8()
func (c *CPU) addrDPIndirectLong() uint32 {
	ptr := c.D + uint16(c.fetch8())
	return c.Read24(addr24(0, ptr))
}

// (dp,X): (DB<<16) | read16(D+fetch8()+X)
func (c *CPU) addrDPIndirectX() uint32 {
	ptr := c.D + uint16(c.fetch8()) + c.X
	return addr24(c.DB, c.Read16(addr24(0, ptr)))
}

// (dp),Y: (DB<<16) | (read16(D+fetch8()) + Y)
func (c *CPU) addrDPIndirectY() uint32 {
	ptr := c.D + uint16(c.fetch8())
	base := c.Read16(addr24(0, ptr))
	return addr24(c.DB, base+c.Y)
}

// [dp],Y: read24(D+fetch8()) + Y
func (c *CPU) addrDPIndirectLongY() uint32 {
	ptr := c.D + uint16(c.fetch8())
	return c.Read24(addr24(0, ptr)) + uint32(c.Y)
}

// sr,S: S + fetch8(), bank 0
func (c *CPU) addrSR() uint32 {
	return addr24(0, c.S+uint16(c.fetch8()))
}

// (sr,S),Y: (DB<<16) | (read16(S+fetch8()) + Y)
func (c *CPU) addrSRIndirectY() uint32 {
	ptr := c.S + uint16(c.fetch8())
	base := c.Read16(addr24(0, ptr))
	return addr24(c.DB, base+c.Y)
}

// The (abs), (abs,X) and [abs] modes only ever feed JMP/JSR, which need
// to set PC (and sometimes PB) directly rather than read an operand
// through an effective address; their address arithmetic lives next to
// the jump opcodes in jumps.go instead of here.
