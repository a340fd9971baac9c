package cpu

// opInfo is one entry of opTable: the function that executes the
// opcode and its base cycle count. The only extra cycles are added by
// branch(), via c.Cycles: +1 when a branch is taken and +1 more when it
// crosses a page. No width-dependent or indexed page-cross cycles are
// added.
type opInfo struct {
	exec   func(*CPU)
	cycles int
}

// addrFn is shorthand for the effective-address calculators in
// addressing.go, used below to build read/write/rmw opcode bodies from
// a single addressing mode plus a generic operation.
type addrFn func(*CPU) uint32

func ld(af addrFn, op func(*CPU, uint32)) func(*CPU) {
	return func(c *CPU) { op(c, af(c)) }
}

var opTable [256]opInfo

func reg(exec func(*CPU), cycles int) opInfo { return opInfo{exec, cycles} }

func init() {
	for i := range opTable {
		opTable[i] = opInfo{}
	}

	/* LDA */
	opTable[0xA9] = reg(func(c *CPU) { c.ldaImm() }, 2)
	opTable[0xA5] = reg(ld((*CPU).addrDP, (*CPU).lda), 3)
	opTable[0xB5] = reg(ld((*CPU).addrDPX, (*CPU).lda), 4)
	opTable[0xAD] = reg(ld((*CPU).addrAbs, (*CPU).lda), 4)
	opTable[0xBD] = reg(ld((*CPU).addrAbsX, (*CPU).lda), 4)
	opTable[0xB9] = reg(ld((*CPU).addrAbsY, (*CPU).lda), 4)
	opTable[0xAF] = reg(ld((*CPU).addrLong, (*CPU).lda), 5)
	opTable[0xBF] = reg(ld((*CPU).addrLongX, (*CPU).lda), 5)
	opTable[0xA1] = reg(ld((*CPU).addrDPIndirectX, (*CPU).lda), 6)
	opTable[0xB1] = reg(ld((*CPU).addrDPIndirectY, (*CPU).lda), 6)
	opTable[0xB2] = reg(ld((*CPU).addrDPIndirect, (*CPU).lda), 5)
	opTable[0xA7] = reg(ld((*CPU).addrDPIndirectLong, (*CPU).lda), 6)
	opTable[0xB7] = reg(ld((*CPU).addrDPIndirectLongY, (*CPU).lda), 6)
	opTable[0xA3] = reg(ld((*CPU).addrSR, (*CPU).lda), 4)
	opTable[0xB3] = reg(ld((*CPU).addrSRIndirectY, (*CPU).lda), 7)

	/* LDX / LDY */
	opTable[0xA2] = reg(func(c *CPU) { c.ldxImm() }, 2)
	opTable[0xA6] = reg(ld((*CPU).addrDP, (*CPU).ldx), 3)
	opTable[0xB6] = reg(ld((*CPU).addrDPY, (*CPU).ldx), 4)
	opTable[0xAE] = reg(ld((*CPU).addrAbs, (*CPU).ldx), 4)
	opTable[0xBE] = reg(ld((*CPU).addrAbsY, (*CPU).ldx), 4)
	opTable[0xA0] = reg(func(c *CPU) { c.ldyImm() }, 2)
	opTable[0xA4] = reg(ld((*CPU).addrDP, (*CPU).ldy), 3)
	opTable[0xB4] = reg(ld((*CPU).addrDPX, (*CPU).ldy), 4)
	opTable[0xAC] = reg(ld((*CPU).addrAbs, (*CPU).ldy), 4)
	opTable[0xBC] = reg(ld((*CPU).addrAbsX, (*CPU).ldy), 4)

	/* STA */
	opTable[0x85] = reg(ld((*CPU).addrDP, (*CPU).sta), 3)
	opTable[0x95] = reg(ld((*CPU).addrDPX, (*CPU).sta), 4)
	opTable[0x8D] = reg(ld((*CPU).addrAbs, (*CPU).sta), 4)
	opTable[0x9D] = reg(ld((*CPU).addrAbsX, (*CPU).sta), 5)
	opTable[0x99] = reg(ld((*CPU).addrAbsY, (*CPU).sta), 5)
	opTable[0x8F] = reg(ld((*CPU).addrLong, (*CPU).sta), 5)
	opTable[0x9F] = reg(ld((*CPU).addrLongX, (*CPU).sta), 5)
	opTable[0x81] = reg(ld((*CPU).addrDPIndirectX, (*CPU).sta), 6)
	opTable[0x91] = reg(ld((*CPU).addrDPIndirectY, (*CPU).sta), 6)
	opTable[0x92] = reg(ld((*CPU).addrDPIndirect, (*CPU).sta), 5)
	opTable[0x87] = reg(ld((*CPU).addrDPIndirectLong, (*CPU).sta), 6)
	opTable[0x97] = reg(ld((*CPU).addrDPIndirectLongY, (*CPU).sta), 6)
	opTable[0x83] = reg(ld((*CPU).addrSR, (*CPU).sta), 4)
	opTable[0x93] = reg(ld((*CPU).addrSRIndirectY, (*CPU).sta), 7)

	/* STX / STY / STZ */
	opTable[0x86] = reg(ld((*CPU).addrDP, (*CPU).stx), 3)
	opTable[0x96] = reg(ld((*CPU).addrDPY, (*CPU).stx), 4)
	opTable[0x8E] = reg(ld((*CPU).addrAbs, (*CPU).stx), 4)
	opTable[0x84] = reg(ld((*CPU).addrDP, (*CPU).sty), 3)
	opTable[0x94] = reg(ld((*CPU).addrDPX, (*CPU).sty), 4)
	opTable[0x8C] = reg(ld((*CPU).addrAbs, (*CPU).sty), 4)
	opTable[0x64] = reg(ld((*CPU).addrDP, (*CPU).stz), 3)
	opTable[0x74] = reg(ld((*CPU).addrDPX, (*CPU).stz), 4)
	opTable[0x9C] = reg(ld((*CPU).addrAbs, (*CPU).stz), 4)
	opTable[0x9E] = reg(ld((*CPU).addrAbsX, (*CPU).stz), 5)

	/* logical */
	logicOps := []struct {
		imm               byte
		f                 func(a, v uint16) uint16
		dp, dpx, abs, absx, absy, long, longx, dpix, dpiy, dpi, dpil, dpily, sr, sry byte
	}{
		{0x29, opAND, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x2F, 0x3F, 0x21, 0x31, 0x32, 0x27, 0x37, 0x23, 0x33},
		{0x09, opORA, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x0F, 0x1F, 0x01, 0x11, 0x12, 0x07, 0x17, 0x03, 0x13},
		{0x49, opEOR, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x4F, 0x5F, 0x41, 0x51, 0x52, 0x47, 0x57, 0x43, 0x53},
	}
	for _, lo := range logicOps {
		f := lo.f
		opTable[lo.imm] = reg(func(c *CPU) { c.logicImm(f) }, 2)
		opTable[lo.dp] = reg(func(c *CPU) { c.logic(c.addrDP(), f) }, 3)
		opTable[lo.dpx] = reg(func(c *CPU) { c.logic(c.addrDPX(), f) }, 4)
		opTable[lo.abs] = reg(func(c *CPU) { c.logic(c.addrAbs(), f) }, 4)
		opTable[lo.absx] = reg(func(c *CPU) { c.logic(c.addrAbsX(), f) }, 4)
		opTable[lo.absy] = reg(func(c *CPU) { c.logic(c.addrAbsY(), f) }, 4)
		opTable[lo.long] = reg(func(c *CPU) { c.logic(c.addrLong(), f) }, 5)
		opTable[lo.longx] = reg(func(c *CPU) { c.logic(c.addrLongX(), f) }, 5)
		opTable[lo.dpix] = reg(func(c *CPU) { c.logic(c.addrDPIndirectX(), f) }, 6)
		opTable[lo.dpiy] = reg(func(c *CPU) { c.logic(c.addrDPIndirectY(), f) }, 6)
		opTable[lo.dpi] = reg(func(c *CPU) { c.logic(c.addrDPIndirect(), f) }, 5)
		opTable[lo.dpil] = reg(func(c *CPU) { c.logic(c.addrDPIndirectLong(), f) }, 6)
		opTable[lo.dpily] = reg(func(c *CPU) { c.logic(c.addrDPIndirectLongY(), f) }, 6)
		opTable[lo.sr] = reg(func(c *CPU) { c.logic(c.addrSR(), f) }, 4)
		opTable[lo.sry] = reg(func(c *CPU) { c.logic(c.addrSRIndirectY(), f) }, 7)
	}

	/* ADC / SBC */
	opTable[0x69] = reg(func(c *CPU) { c.adcImm() }, 2)
	opTable[0x65] = reg(ld((*CPU).addrDP, (*CPU).adcMem), 3)
	opTable[0x75] = reg(ld((*CPU).addrDPX, (*CPU).adcMem), 4)
	opTable[0x6D] = reg(ld((*CPU).addrAbs, (*CPU).adcMem), 4)
	opTable[0x7D] = reg(ld((*CPU).addrAbsX, (*CPU).adcMem), 4)
	opTable[0x79] = reg(ld((*CPU).addrAbsY, (*CPU).adcMem), 4)
	opTable[0x6F] = reg(ld((*CPU).addrLong, (*CPU).adcMem), 5)
	opTable[0x7F] = reg(ld((*CPU).addrLongX, (*CPU).adcMem), 5)
	opTable[0x61] = reg(ld((*CPU).addrDPIndirectX, (*CPU).adcMem), 6)
	opTable[0x71] = reg(ld((*CPU).addrDPIndirectY, (*CPU).adcMem), 6)
	opTable[0x72] = reg(ld((*CPU).addrDPIndirect, (*CPU).adcMem), 5)
	opTable[0x67] = reg(ld((*CPU).addrDPIndirectLong, (*CPU).adcMem), 6)
	opTable[0x77] = reg(ld((*CPU).addrDPIndirectLongY, (*CPU).adcMem), 6)
	opTable[0x63] = reg(ld((*CPU).addrSR, (*CPU).adcMem), 4)
	opTable[0x73] = reg(ld((*CPU).addrSRIndirectY, (*CPU).adcMem), 7)

	opTable[0xE9] = reg(func(c *CPU) { c.sbcImm() }, 2)
	opTable[0xE5] = reg(ld((*CPU).addrDP, (*CPU).sbcMem), 3)
	opTable[0xF5] = reg(ld((*CPU).addrDPX, (*CPU).sbcMem), 4)
	opTable[0xED] = reg(ld((*CPU).addrAbs, (*CPU).sbcMem), 4)
	opTable[0xFD] = reg(ld((*CPU).addrAbsX, (*CPU).sbcMem), 4)
	opTable[0xF9] = reg(ld((*CPU).addrAbsY, (*CPU).sbcMem), 4)
	opTable[0xEF] = reg(ld((*CPU).addrLong, (*CPU).sbcMem), 5)
	opTable[0xFF] = reg(ld((*CPU).addrLongX, (*CPU).sbcMem), 5)
	opTable[0xE1] = reg(ld((*CPU).addrDPIndirectX, (*CPU).sbcMem), 6)
	opTable[0xF1] = reg(ld((*CPU).addrDPIndirectY, (*CPU).sbcMem), 6)
	opTable[0xF2] = reg(ld((*CPU).addrDPIndirect, (*CPU).sbcMem), 5)
	opTable[0xE7] = reg(ld((*CPU).addrDPIndirectLong, (*CPU).sbcMem), 6)
	opTable[0xF7] = reg(ld((*CPU).addrDPIndirectLongY, (*CPU).sbcMem), 6)
	opTable[0xE3] = reg(ld((*CPU).addrSR, (*CPU).sbcMem), 4)
	opTable[0xF3] = reg(ld((*CPU).addrSRIndirectY, (*CPU).sbcMem), 7)

	/* CMP / CPX / CPY */
	opTable[0xC9] = reg(func(c *CPU) { c.cmpImm() }, 2)
	opTable[0xC5] = reg(ld((*CPU).addrDP, (*CPU).cmpMem), 3)
	opTable[0xD5] = reg(ld((*CPU).addrDPX, (*CPU).cmpMem), 4)
	opTable[0xCD] = reg(ld((*CPU).addrAbs, (*CPU).cmpMem), 4)
	opTable[0xDD] = reg(ld((*CPU).addrAbsX, (*CPU).cmpMem), 4)
	opTable[0xD9] = reg(ld((*CPU).addrAbsY, (*CPU).cmpMem), 4)
	opTable[0xCF] = reg(ld((*CPU).addrLong, (*CPU).cmpMem), 5)
	opTable[0xDF] = reg(ld((*CPU).addrLongX, (*CPU).cmpMem), 5)
	opTable[0xC1] = reg(ld((*CPU).addrDPIndirectX, (*CPU).cmpMem), 6)
	opTable[0xD1] = reg(ld((*CPU).addrDPIndirectY, (*CPU).cmpMem), 6)
	opTable[0xD2] = reg(ld((*CPU).addrDPIndirect, (*CPU).cmpMem), 5)
	opTable[0xC7] = reg(ld((*CPU).addrDPIndirectLong, (*CPU).cmpMem), 6)
	opTable[0xD7] = reg(ld((*CPU).addrDPIndirectLongY, (*CPU).cmpMem), 6)
	opTable[0xC3] = reg(ld((*CPU).addrSR, (*CPU).cmpMem), 4)
	opTable[0xD3] = reg(ld((*CPU).addrSRIndirectY, (*CPU).cmpMem), 7)

	opTable[0xE0] = reg(func(c *CPU) { c.cpxImm() }, 2)
	opTable[0xE4] = reg(ld((*CPU).addrDP, (*CPU).cpxMem), 3)
	opTable[0xEC] = reg(ld((*CPU).addrAbs, (*CPU).cpxMem), 4)
	opTable[0xC0] = reg(func(c *CPU) { c.cpyImm() }, 2)
	opTable[0xC4] = reg(ld((*CPU).addrDP, (*CPU).cpyMem), 3)
	opTable[0xCC] = reg(ld((*CPU).addrAbs, (*CPU).cpyMem), 4)

	/* BIT */
	opTable[0x89] = reg(func(c *CPU) { c.bitImm() }, 2)
	opTable[0x24] = reg(ld((*CPU).addrDP, (*CPU).bit), 3)
	opTable[0x34] = reg(ld((*CPU).addrDPX, (*CPU).bit), 4)
	opTable[0x2C] = reg(ld((*CPU).addrAbs, (*CPU).bit), 4)
	opTable[0x3C] = reg(ld((*CPU).addrAbsX, (*CPU).bit), 4)

	/* TSB / TRB */
	opTable[0x04] = reg(ld((*CPU).addrDP, (*CPU).tsb), 5)
	opTable[0x0C] = reg(ld((*CPU).addrAbs, (*CPU).tsb), 6)
	opTable[0x14] = reg(ld((*CPU).addrDP, (*CPU).trb), 5)
	opTable[0x1C] = reg(ld((*CPU).addrAbs, (*CPU).trb), 6)

	/* INC / DEC */
	opTable[0x1A] = reg(func(c *CPU) { c.incA() }, 2)
	opTable[0x3A] = reg(func(c *CPU) { c.decA() }, 2)
	opTable[0xE6] = reg(ld((*CPU).addrDP, (*CPU).incMem), 5)
	opTable[0xF6] = reg(ld((*CPU).addrDPX, (*CPU).incMem), 6)
	opTable[0xEE] = reg(ld((*CPU).addrAbs, (*CPU).incMem), 6)
	opTable[0xFE] = reg(ld((*CPU).addrAbsX, (*CPU).incMem), 7)
	opTable[0xC6] = reg(ld((*CPU).addrDP, (*CPU).decMem), 5)
	opTable[0xD6] = reg(ld((*CPU).addrDPX, (*CPU).decMem), 6)
	opTable[0xCE] = reg(ld((*CPU).addrAbs, (*CPU).decMem), 6)
	opTable[0xDE] = reg(ld((*CPU).addrAbsX, (*CPU).decMem), 7)
	opTable[0xE8] = reg(func(c *CPU) { c.incX() }, 2)
	opTable[0xCA] = reg(func(c *CPU) { c.decX() }, 2)
	opTable[0xC8] = reg(func(c *CPU) { c.incY() }, 2)
	opTable[0x88] = reg(func(c *CPU) { c.decY() }, 2)

	/* shift / rotate, accumulator and memory forms */
	shiftOps := []struct {
		accOp, dpOp, dpxOp, absOp, absxOp byte
		f                                 func(v, mask uint16, carryIn bool) (uint16, bool)
	}{
		{0x0A, 0x06, 0x16, 0x0E, 0x1E, aslFn},
		{0x4A, 0x46, 0x56, 0x4E, 0x5E, lsrFn},
		{0x2A, 0x26, 0x36, 0x2E, 0x3E, rolFn},
		{0x6A, 0x66, 0x76, 0x6E, 0x7E, rorFn},
	}
	for _, so := range shiftOps {
		f := so.f
		opTable[so.accOp] = reg(func(c *CPU) { c.shift(0, true, f) }, 2)
		opTable[so.dpOp] = reg(func(c *CPU) { c.shift(c.addrDP(), false, f) }, 5)
		opTable[so.dpxOp] = reg(func(c *CPU) { c.shift(c.addrDPX(), false, f) }, 6)
		opTable[so.absOp] = reg(func(c *CPU) { c.shift(c.addrAbs(), false, f) }, 6)
		opTable[so.absxOp] = reg(func(c *CPU) { c.shift(c.addrAbsX(), false, f) }, 7)
	}

	/* transfers */
	opTable[0xAA] = reg(func(c *CPU) { c.tax() }, 2)
	opTable[0xA8] = reg(func(c *CPU) { c.tay() }, 2)
	opTable[0x8A] = reg(func(c *CPU) { c.txa() }, 2)
	opTable[0x98] = reg(func(c *CPU) { c.tya() }, 2)
	opTable[0x9B] = reg(func(c *CPU) { c.txy() }, 2)
	opTable[0xBB] = reg(func(c *CPU) { c.tyx() }, 2)
	opTable[0xBA] = reg(func(c *CPU) { c.tsx() }, 2)
	opTable[0x9A] = reg(func(c *CPU) { c.txs() }, 2)
	opTable[0x5B] = reg(func(c *CPU) { c.tcd() }, 2)
	opTable[0x7B] = reg(func(c *CPU) { c.tdc() }, 2)
	opTable[0x1B] = reg(func(c *CPU) { c.tcs() }, 2)
	opTable[0x3B] = reg(func(c *CPU) { c.tsc() }, 2)
	opTable[0xEB] = reg(func(c *CPU) { c.xba() }, 3)

	/* flags */
	opTable[0x18] = reg(func(c *CPU) { c.setFlag(FlagC, false) }, 2)
	opTable[0x38] = reg(func(c *CPU) { c.setFlag(FlagC, true) }, 2)
	opTable[0x58] = reg(func(c *CPU) { c.setFlag(FlagI, false) }, 2)
	opTable[0x78] = reg(func(c *CPU) { c.setFlag(FlagI, true) }, 2)
	opTable[0xD8] = reg(func(c *CPU) { c.setFlag(FlagD, false) }, 2)
	opTable[0xF8] = reg(func(c *CPU) { c.setFlag(FlagD, true) }, 2)
	opTable[0xB8] = reg(func(c *CPU) { c.setFlag(FlagV, false) }, 2)
	opTable[0xC2] = reg(func(c *CPU) { c.rep() }, 3)
	opTable[0xE2] = reg(func(c *CPU) { c.sep() }, 3)
	opTable[0xFB] = reg(func(c *CPU) { c.xce() }, 2)

	/* stack */
	opTable[0x48] = reg(opPHA, 3)
	opTable[0x68] = reg(opPLA, 4)
	opTable[0xDA] = reg(opPHX, 3)
	opTable[0xFA] = reg(opPLX, 4)
	opTable[0x5A] = reg(opPHY, 3)
	opTable[0x7A] = reg(opPLY, 4)
	opTable[0x08] = reg(opPHP, 3)
	opTable[0x28] = reg(opPLP, 4)
	opTable[0x8B] = reg(opPHB, 3)
	opTable[0xAB] = reg(opPLB, 4)
	opTable[0x4B] = reg(opPHK, 3)
	opTable[0x0B] = reg(opPHD, 4)
	opTable[0x2B] = reg(opPLD, 5)
	opTable[0xD4] = reg(func(c *CPU) { c.pei() }, 6)
	opTable[0xF4] = reg(func(c *CPU) { c.pea() }, 5)
	opTable[0x62] = reg(func(c *CPU) { c.per() }, 6)

	/* jumps / calls / returns */
	opTable[0x4C] = reg(opJMPAbs, 3)
	opTable[0x5C] = reg(opJMPLong, 4)
	opTable[0x6C] = reg(opJMPInd, 5)
	opTable[0x7C] = reg(opJMPIndX, 6)
	opTable[0xDC] = reg(opJMPIndLong, 6)
	opTable[0x20] = reg(opJSRAbs, 6)
	opTable[0xFC] = reg(opJSRIndX, 8)
	opTable[0x22] = reg(opJSLLong, 8)
	opTable[0x60] = reg(opRTS, 6)
	opTable[0x6B] = reg(opRTL, 6)
	opTable[0x40] = reg(opRTI, 7)

	/* branches */
	opTable[0x80] = reg(opBRA, 2)
	opTable[0x82] = reg(opBRL, 4)
	opTable[0x90] = reg(opBCC, 2)
	opTable[0xB0] = reg(opBCS, 2)
	opTable[0xF0] = reg(opBEQ, 2)
	opTable[0xD0] = reg(opBNE, 2)
	opTable[0x10] = reg(opBPL, 2)
	opTable[0x30] = reg(opBMI, 2)
	opTable[0x50] = reg(opBVC, 2)
	opTable[0x70] = reg(opBVS, 2)

	/* interrupts / control */
	opTable[0x00] = reg(opBRK, 7)
	opTable[0x02] = reg(opCOP, 7)
	opTable[0xCB] = reg(opWAI, 3)
	opTable[0xDB] = reg(opSTP, 3)
	opTable[0xEA] = reg(func(c *CPU) {}, 2)
	opTable[0x42] = reg(func(c *CPU) { _ = c.fetch8() }, 2) // WDM, reserved

	/* block move */
	opTable[0x54] = reg(func(c *CPU) { c.mvn() }, 7)
	opTable[0x44] = reg(func(c *CPU) { c.mvp() }, 7)
}
