package cpu

// PHx/PLx push and pull the named register. Width-dependent ones follow
// the current M or X flag; PHB/PHK/PLB/PHD/PLD always move a full byte
// or word regardless of M/X.

func opPHA(c *CPU) { c.pushA(c.widthA()) }
func opPLA(c *CPU) { c.popA(c.widthA()); c.updateNZ(c.A&widthMask(c.widthA()), c.widthA()) }

func opPHX(c *CPU) {
	if c.widthXY() == 1 {
		c.pushByte(uint8(c.X))
	} else {
		c.pushWord(c.X)
	}
}

func opPLX(c *CPU) {
	w := c.widthXY()
	if w == 1 {
		c.setX(uint16(c.popByte()), 1)
	} else {
		c.setX(c.popWord(), 2)
	}
	c.updateNZ(c.X&widthMask(w), w)
}

func opPHY(c *CPU) {
	if c.widthXY() == 1 {
		c.pushByte(uint8(c.Y))
	} else {
		c.pushWord(c.Y)
	}
}

func opPLY(c *CPU) {
	w := c.widthXY()
	if w == 1 {
		c.setY(uint16(c.popByte()), 1)
	} else {
		c.setY(c.popWord(), 2)
	}
	c.updateNZ(c.Y&widthMask(w), w)
}

func opPHP(c *CPU) { c.pushByte(uint8(c.P)) }

func opPLP(c *CPU) {
	c.P = Flag(c.popByte())
	c.enforceEmulationInvariants()
}

func opPHB(c *CPU) { c.pushByte(c.DB) }
func opPLB(c *CPU) {
	c.DB = c.popByte()
	c.updateNZ(uint16(c.DB), 1)
}

func opPHK(c *CPU) { c.pushByte(c.PB) }

func opPHD(c *CPU) { c.pushWord(c.D) }
func opPLD(c *CPU) {
	c.D = c.popWord()
	c.updateNZ(c.D, 2)
}
