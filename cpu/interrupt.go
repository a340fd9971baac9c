package cpu

// deliverInterrupt pushes PC/P (and PB in native mode) and jumps to the
// NMI or IRQ vector, honoring emulation mode's shorter push sequence.
func (c *CPU) deliverInterrupt(isNMI bool) {
	prevPC := c.PC
	if !c.E {
		c.pushByte(c.PB)
	}
	c.pushWord(c.PC)

	p := c.P
	p &^= FlagD
	if c.E {
		p &^= Flag(1 << 4) // B flag clear for hardware interrupts in emulation mode
	}
	c.pushByte(uint8(p))
	c.setFlag(FlagI, true)

	var vec uint16
	switch {
	case isNMI && c.E:
		vec = vecNMIEmu
	case isNMI && !c.E:
		vec = vecNMINative
	case !isNMI && c.E:
		vec = vecIRQEmu
	default:
		vec = vecIRQNative
	}

	c.PB = 0
	c.PC = c.Read16(addr24(0, vec))
	c.Cycles += 7

	c.dbg.Interrupt(prevPC, c.PC, isNMI)
}

func opBRK(c *CPU) {
	_ = c.fetch8() // signature byte, discarded

	if !c.E {
		c.pushByte(c.PB)
	}
	c.pushWord(c.PC)

	p := c.P | Flag(1<<4) // set B
	c.pushByte(uint8(p))
	c.setFlag(FlagI, true)

	vec := vecBRKEmu
	if !c.E {
		vec = vecBRKNative
	}
	c.PB = 0
	c.PC = c.Read16(addr24(0, vec))
}

func opCOP(c *CPU) {
	_ = c.fetch8()

	if !c.E {
		c.pushByte(c.PB)
	}
	c.pushWord(c.PC)
	c.pushByte(uint8(c.P))
	c.setFlag(FlagI, true)

	vec := vecCOPEmu
	if !c.E {
		vec = vecCOPNative
	}
	c.PB = 0
	c.PC = c.Read16(addr24(0, vec))
}

func opWAI(c *CPU) {
	// Modelled as a no-op that merely consumes cycles.
}

func opSTP(c *CPU) {
	// Modelled as a no-op that merely consumes cycles.
}
