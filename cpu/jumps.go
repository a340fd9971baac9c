package cpu

// Jumps, calls and branches. PC/PB are set directly here rather than via
// the effective-address calculators in addressing.go, since some of
// these modes change PB and none of them read/write a data operand.

func opJMPAbs(c *CPU)     { c.PC = c.fetch16() }
func opJMPLong(c *CPU)     { addr := c.fetch24(); c.PC = uint16(addr); c.PB = uint8(addr >> 16) }
func opJMPInd(c *CPU)      { ptr := c.fetch16(); c.PC = c.Read16(addr24(0, ptr)) }
func opJMPIndX(c *CPU)     { ptr := c.fetch16() + c.X; c.PC = c.Read16(addr24(c.PB, ptr)) }
func opJMPIndLong(c *CPU)  { ptr := c.fetch16(); addr := c.Read24(addr24(0, ptr)); c.PC = uint16(addr); c.PB = uint8(addr >> 16) }

func opJSRAbs(c *CPU) {
	target := c.fetch16()
	c.pushWord(c.PC - 1)
	c.PC = target
}

func opJSRIndX(c *CPU) {
	ptr := c.fetch16() + c.X
	target := c.Read16(addr24(c.PB, ptr))
	c.pushWord(c.PC - 1)
	c.PC = target
}

func opJSLLong(c *CPU) {
	addr := c.fetch24()
	c.pushByte(c.PB)
	c.pushWord(c.PC - 1)
	c.PC = uint16(addr)
	c.PB = uint8(addr >> 16)
}

func opRTS(c *CPU) { c.PC = c.popWord() + 1 }

func opRTL(c *CPU) {
	pc := c.popWord()
	pb := c.popByte()
	c.PC = pc + 1
	c.PB = pb
}

func opRTI(c *CPU) {
	c.P = Flag(c.popByte())
	c.PC = c.popWord()
	if !c.E {
		c.PB = c.popByte()
	}
	c.enforceEmulationInvariants()
}

func (c *CPU) branch(taken bool) {
	off := int8(c.fetch8())
	if !taken {
		return
	}
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(off))
	c.Cycles++
	if old&0xFF00 != c.PC&0xFF00 {
		c.Cycles++
	}
}

func opBRA(c *CPU) { c.branch(true) }

func opBRL(c *CPU) {
	off := int16(c.fetch16())
	c.PC = uint16(int32(c.PC) + int32(off))
}

func opBCC(c *CPU) { c.branch(!c.getFlag(FlagC)) }
func opBCS(c *CPU) { c.branch(c.getFlag(FlagC)) }
func opBEQ(c *CPU) { c.branch(c.getFlag(FlagZ)) }
func opBNE(c *CPU) { c.branch(!c.getFlag(FlagZ)) }
func opBPL(c *CPU) { c.branch(!c.getFlag(FlagN)) }
func opBMI(c *CPU) { c.branch(c.getFlag(FlagN)) }
func opBVC(c *CPU) { c.branch(!c.getFlag(FlagV)) }
func opBVS(c *CPU) { c.branch(c.getFlag(FlagV)) }
