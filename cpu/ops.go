package cpu

func widthMask(width int) uint16 {
	if width == 1 {
		return 0xFF
	}
	return 0xFFFF
}

/* load / store */

func (c *CPU) readWidth(addr uint32, width int) uint16 {
	if width == 1 {
		return uint16(c.Read8(addr))
	}
	return c.Read16(addr)
}

func (c *CPU) writeWidth(addr uint32, val uint16, width int) {
	if width == 1 {
		c.Write8(addr, uint8(val))
	} else {
		c.Write16(addr, val)
	}
}

func (c *CPU) lda(addr uint32) {
	w := c.widthA()
	v := c.readWidth(addr, w)
	c.setA(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) ldaImm() {
	w := c.widthA()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.setA(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) ldx(addr uint32) {
	w := c.widthXY()
	v := c.readWidth(addr, w)
	c.setX(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) ldxImm() {
	w := c.widthXY()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.setX(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) ldy(addr uint32) {
	w := c.widthXY()
	v := c.readWidth(addr, w)
	c.setY(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) ldyImm() {
	w := c.widthXY()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.setY(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) sta(addr uint32) { c.writeWidth(addr, c.A, c.widthA()) }
func (c *CPU) stx(addr uint32) { c.writeWidth(addr, c.X, c.widthXY()) }
func (c *CPU) sty(addr uint32) { c.writeWidth(addr, c.Y, c.widthXY()) }
func (c *CPU) stz(addr uint32) { c.writeWidth(addr, 0, c.widthA()) }

/* logical */

func (c *CPU) logic(addr uint32, f func(a, v uint16) uint16) {
	w := c.widthA()
	mask := widthMask(w)
	v := c.readWidth(addr, w) & mask
	result := f(c.A&mask, v) & mask
	c.setA(result, w)
	c.updateNZ(result, w)
}

func (c *CPU) logicImm(f func(a, v uint16) uint16) {
	w := c.widthA()
	mask := widthMask(w)
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	result := f(c.A&mask, v&mask) & mask
	c.setA(result, w)
	c.updateNZ(result, w)
}

func opAND(a, v uint16) uint16 { return a & v }
func opORA(a, v uint16) uint16 { return a | v }
func opEOR(a, v uint16) uint16 { return a ^ v }

/* arithmetic */

func bcdAddByte(a, b, carry uint8) (uint8, bool) {
	lo := (a & 0xF) + (b & 0xF) + carry
	var loCarry uint8
	if lo > 9 {
		lo -= 10
		loCarry = 1
	}
	hi := (a >> 4) + (b >> 4) + loCarry
	var hiCarry bool
	if hi > 9 {
		hi -= 10
		hiCarry = true
	}
	return (hi << 4) | lo, hiCarry
}

func bcdSubByte(a, b, borrow uint8) (uint8, bool) {
	lo := int8(a&0xF) - int8(b&0xF) - int8(borrow)
	var loBorrow uint8
	if lo < 0 {
		lo += 10
		loBorrow = 1
	}
	hi := int8(a>>4) - int8(b>>4) - int8(loBorrow)
	var hiBorrow bool
	if hi < 0 {
		hi += 10
		hiBorrow = true
	}
	return (uint8(hi) << 4) | uint8(lo), hiBorrow
}

func bcdAdd(a, b, carryIn uint16, width int) (uint16, bool) {
	loR, loCarry := bcdAddByte(uint8(a), uint8(b), uint8(carryIn))
	if width == 1 {
		return uint16(loR), loCarry
	}
	var loCarryIn uint8
	if loCarry {
		loCarryIn = 1
	}
	hiR, hiCarry := bcdAddByte(uint8(a>>8), uint8(b>>8), loCarryIn)
	return uint16(loR) | uint16(hiR)<<8, hiCarry
}

func bcdSub(a, b, borrowIn uint16, width int) (uint16, bool) {
	loR, loBorrow := bcdSubByte(uint8(a), uint8(b), uint8(borrowIn))
	if width == 1 {
		return uint16(loR), loBorrow
	}
	var loBorrowIn uint8
	if loBorrow {
		loBorrowIn = 1
	}
	hiR, hiBorrow := bcdSubByte(uint8(a>>8), uint8(b>>8), loBorrowIn)
	return uint16(loR) | uint16(hiR)<<8, hiBorrow
}

func (c *CPU) adcValue(value uint16) {
	w := c.widthA()
	mask := widthMask(w)
	a := c.A & mask
	value &= mask
	var carryIn uint16
	if c.getFlag(FlagC) {
		carryIn = 1
	}

	signBit := uint16(0x80)
	if w == 2 {
		signBit = 0x8000
	}

	var result uint16
	var carryOut bool
	if c.getFlag(FlagD) {
		result, carryOut = bcdAdd(a, value, carryIn, w)
	} else {
		sum := uint32(a) + uint32(value) + uint32(carryIn)
		result = uint16(sum) & mask
		carryOut = sum > uint32(mask)
	}
	overflow := (a&signBit) == (value&signBit) && (result&signBit) != (a&signBit)

	c.setFlag(FlagC, carryOut)
	c.setFlag(FlagV, overflow)
	c.setA(result, w)
	c.updateNZ(result, w)
}

func (c *CPU) sbcValue(value uint16) {
	w := c.widthA()
	mask := widthMask(w)
	if !c.getFlag(FlagD) {
		c.adcValue(^value & mask)
		return
	}

	a := c.A & mask
	value &= mask
	var borrowIn uint16
	if !c.getFlag(FlagC) {
		borrowIn = 1
	}
	result, borrowOut := bcdSub(a, value, borrowIn, w)

	signBit := uint16(0x80)
	if w == 2 {
		signBit = 0x8000
	}
	overflow := (a&signBit) != (value&signBit) && (result&signBit) != (a&signBit)

	c.setFlag(FlagC, !borrowOut)
	c.setFlag(FlagV, overflow)
	c.setA(result, w)
	c.updateNZ(result, w)
}

func (c *CPU) adcMem(addr uint32) { c.adcValue(c.readWidth(addr, c.widthA())) }
func (c *CPU) sbcMem(addr uint32) { c.sbcValue(c.readWidth(addr, c.widthA())) }

func (c *CPU) adcImm() {
	w := c.widthA()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.adcValue(v)
}

func (c *CPU) sbcImm() {
	w := c.widthA()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.sbcValue(v)
}

/* compare */

func (c *CPU) compare(reg uint16, value uint16, width int) {
	mask := widthMask(width)
	a := reg & mask
	v := value & mask
	result := (a - v) & mask
	c.setFlag(FlagC, a >= v)
	c.updateNZ(result, width)
}

func (c *CPU) cmpMem(addr uint32) { c.compare(c.A, c.readWidth(addr, c.widthA()), c.widthA()) }
func (c *CPU) cpxMem(addr uint32) { c.compare(c.X, c.readWidth(addr, c.widthXY()), c.widthXY()) }
func (c *CPU) cpyMem(addr uint32) { c.compare(c.Y, c.readWidth(addr, c.widthXY()), c.widthXY()) }

func (c *CPU) cmpImm() {
	w := c.widthA()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.compare(c.A, v, w)
}

func (c *CPU) cpxImm() {
	w := c.widthXY()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.compare(c.X, v, w)
}

func (c *CPU) cpyImm() {
	w := c.widthXY()
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.compare(c.Y, v, w)
}

/* BIT */

func (c *CPU) bit(addr uint32) {
	w := c.widthA()
	mask := widthMask(w)
	value := c.readWidth(addr, w) & mask
	a := c.A & mask
	c.setFlag(FlagZ, a&value == 0)

	nbit, vbit := uint16(0x80), uint16(0x40)
	if w == 2 {
		nbit, vbit = 0x8000, 0x4000
	}
	c.setFlag(FlagN, value&nbit != 0)
	c.setFlag(FlagV, value&vbit != 0)
}

func (c *CPU) bitImm() {
	w := c.widthA()
	mask := widthMask(w)
	var v uint16
	if w == 1 {
		v = uint16(c.fetch8())
	} else {
		v = c.fetch16()
	}
	c.setFlag(FlagZ, (c.A&mask)&(v&mask) == 0)
}

/* TSB / TRB */

func (c *CPU) tsb(addr uint32) {
	w := c.widthA()
	mask := widthMask(w)
	mem := c.readWidth(addr, w) & mask
	a := c.A & mask
	c.setFlag(FlagZ, a&mem == 0)
	c.writeWidth(addr, mem|a, w)
}

func (c *CPU) trb(addr uint32) {
	w := c.widthA()
	mask := widthMask(w)
	mem := c.readWidth(addr, w) & mask
	a := c.A & mask
	c.setFlag(FlagZ, a&mem == 0)
	c.writeWidth(addr, mem&^a, w)
}

/* inc / dec */

func (c *CPU) incMem(addr uint32) {
	w := c.widthA()
	mask := widthMask(w)
	v := (c.readWidth(addr, w) + 1) & mask
	c.writeWidth(addr, v, w)
	c.updateNZ(v, w)
}

func (c *CPU) decMem(addr uint32) {
	w := c.widthA()
	mask := widthMask(w)
	v := (c.readWidth(addr, w) - 1) & mask
	c.writeWidth(addr, v, w)
	c.updateNZ(v, w)
}

func (c *CPU) incA() {
	w := c.widthA()
	mask := widthMask(w)
	v := (c.A&mask + 1) & mask
	c.setA(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) decA() {
	w := c.widthA()
	mask := widthMask(w)
	v := (c.A&mask - 1) & mask
	c.setA(v, w)
	c.updateNZ(v, w)
}

func (c *CPU) incX() {
	w := c.widthXY()
	mask := widthMask(w)
	v := (c.X&mask + 1) & mask
	c.setX(v, w)
	c.updateNZ(v, w)
}
func (c *CPU) decX() {
	w := c.widthXY()
	mask := widthMask(w)
	v := (c.X&mask - 1) & mask
	c.setX(v, w)
	c.updateNZ(v, w)
}
func (c *CPU) incY() {
	w := c.widthXY()
	mask := widthMask(w)
	v := (c.Y&mask + 1) & mask
	c.setY(v, w)
	c.updateNZ(v, w)
}
func (c *CPU) decY() {
	w := c.widthXY()
	mask := widthMask(w)
	v := (c.Y&mask - 1) & mask
	c.setY(v, w)
	c.updateNZ(v, w)
}

/* shift / rotate */

func (c *CPU) shift(addr uint32, acc bool, f func(v, mask uint16, carryIn bool) (uint16, bool)) {
	w := c.widthA()
	mask := widthMask(w)
	var v uint16
	if acc {
		v = c.A & mask
	} else {
		v = c.readWidth(addr, w) & mask
	}
	result, carryOut := f(v, mask, c.getFlag(FlagC))
	result &= mask
	if acc {
		c.setA(result, w)
	} else {
		c.writeWidth(addr, result, w)
	}
	c.setFlag(FlagC, carryOut)
	c.updateNZ(result, w)
}

func aslFn(v, mask uint16, _ bool) (uint16, bool) {
	topBit := (mask >> 1) + 1
	return v << 1, v&topBit != 0
}

func lsrFn(v, _ uint16, _ bool) (uint16, bool) {
	return v >> 1, v&1 != 0
}

func rolFn(v, mask uint16, carryIn bool) (uint16, bool) {
	topBit := (mask >> 1) + 1
	var cin uint16
	if carryIn {
		cin = 1
	}
	result := (v << 1) | cin
	return result, v&topBit != 0
}

func rorFn(v, mask uint16, carryIn bool) (uint16, bool) {
	topBit := (mask >> 1) + 1
	var cin uint16
	if carryIn {
		cin = topBit
	}
	result := (v >> 1) | cin
	return result, v&1 != 0
}

/* transfers */

func (c *CPU) tax() { c.setX(c.A, c.widthXY()); c.updateNZ(c.X&widthMask(c.widthXY()), c.widthXY()) }
func (c *CPU) tay() { c.setY(c.A, c.widthXY()); c.updateNZ(c.Y&widthMask(c.widthXY()), c.widthXY()) }
func (c *CPU) txa() { c.setA(c.X, c.widthA()); c.updateNZ(c.A&widthMask(c.widthA()), c.widthA()) }
func (c *CPU) tya() { c.setA(c.Y, c.widthA()); c.updateNZ(c.A&widthMask(c.widthA()), c.widthA()) }
func (c *CPU) txy() { c.setY(c.X, c.widthXY()); c.updateNZ(c.Y&widthMask(c.widthXY()), c.widthXY()) }
func (c *CPU) tyx() { c.setX(c.Y, c.widthXY()); c.updateNZ(c.X&widthMask(c.widthXY()), c.widthXY()) }

func (c *CPU) tsx() { c.setX(c.S, c.widthXY()); c.updateNZ(c.X&widthMask(c.widthXY()), c.widthXY()) }
func (c *CPU) txs() {
	if c.E {
		c.S = 0x0100 | (c.X & 0xFF)
	} else {
		c.S = c.X
	}
}

func (c *CPU) tcd() { c.D = c.A; c.updateNZ(c.D, 2) }
func (c *CPU) tdc() { c.A = c.D; c.updateNZ(c.A, 2) }

func (c *CPU) tcs() {
	if c.E {
		c.S = 0x0100 | (c.A & 0xFF)
	} else {
		c.S = c.A
	}
}
func (c *CPU) tsc() { c.A = c.S; c.updateNZ(c.A, 2) }

func (c *CPU) xba() {
	lo := uint8(c.A)
	hi := uint8(c.A >> 8)
	c.A = uint16(lo)<<8 | uint16(hi)
	c.updateNZ(uint16(hi), 1)
}

/* flags */

func (c *CPU) rep() {
	mask := Flag(c.fetch8())
	c.P &^= mask
	c.enforceEmulationInvariants()
}

func (c *CPU) sep() {
	mask := Flag(c.fetch8())
	c.P |= mask
	c.enforceEmulationInvariants()
}

func (c *CPU) xce() {
	oldC := c.getFlag(FlagC)
	oldE := c.E
	c.E = oldC
	c.setFlag(FlagC, oldE)
	c.enforceEmulationInvariants()
}

/* block move */

func (c *CPU) mvn() {
	dstBank := c.fetch8()
	srcBank := c.fetch8()
	v := c.Read8(addr24(srcBank, c.X))
	c.Write8(addr24(dstBank, c.Y), v)
	c.X++
	c.Y++
	c.A--
	c.DB = dstBank
	if c.A != 0xFFFF {
		c.PC -= 3
	}
}

func (c *CPU) mvp() {
	dstBank := c.fetch8()
	srcBank := c.fetch8()
	v := c.Read8(addr24(srcBank, c.X))
	c.Write8(addr24(dstBank, c.Y), v)
	c.X--
	c.Y--
	c.A--
	c.DB = dstBank
	if c.A != 0xFFFF {
		c.PC -= 3
	}
}

/* stack ops needing an effective address (PEI/PEA/PER) */

func (c *CPU) pei() {
	ptr := c.D + uint16(c.fetch8())
	c.pushWord(c.Read16(addr24(0, ptr)))
}

func (c *CPU) pea() {
	c.pushWord(c.fetch16())
}

func (c *CPU) per() {
	off := int16(c.fetch16())
	c.pushWord(uint16(int32(c.PC) + int32(off)))
}
