package cpu

import "fmt"

// mode identifies how DisasmOp's operand bytes are formatted; it does
// not drive execution, only text output for --trace.
type mode int

const (
	modeImp mode = iota
	modeAcc
	modeImmM // operand width follows the M flag
	modeImmX // operand width follows the X flag
	modeImm8
	modeDP
	modeDPX
	modeDPY
	modeAbs
	modeAbsX
	modeAbsY
	modeLong
	modeLongX
	modeDPInd
	modeDPIndX
	modeDPIndY
	modeDPIndLong
	modeDPIndLongY
	modeSR
	modeSRIndY
	modeRel8
	modeRel16
	modeBlockMove
)

// DisasmOp names one opcode for text disassembly.
type DisasmOp struct {
	Mnemonic string
	Mode     mode
}

var disasmOps [256]DisasmOp

func dop(op int, mnemonic string, m mode) { disasmOps[op] = DisasmOp{mnemonic, m} }

func init() {
	dop(0xA9, "LDA", modeImmM)
	dop(0xA5, "LDA", modeDP)
	dop(0xB5, "LDA", modeDPX)
	dop(0xAD, "LDA", modeAbs)
	dop(0xBD, "LDA", modeAbsX)
	dop(0xB9, "LDA", modeAbsY)
	dop(0xAF, "LDA", modeLong)
	dop(0xBF, "LDA", modeLongX)
	dop(0xA1, "LDA", modeDPIndX)
	dop(0xB1, "LDA", modeDPIndY)
	dop(0xB2, "LDA", modeDPInd)
	dop(0xA7, "LDA", modeDPIndLong)
	dop(0xB7, "LDA", modeDPIndLongY)
	dop(0xA3, "LDA", modeSR)
	dop(0xB3, "LDA", modeSRIndY)

	dop(0xA2, "LDX", modeImmX)
	dop(0xA6, "LDX", modeDP)
	dop(0xB6, "LDX", modeDPY)
	dop(0xAE, "LDX", modeAbs)
	dop(0xBE, "LDX", modeAbsY)
	dop(0xA0, "LDY", modeImmX)
	dop(0xA4, "LDY", modeDP)
	dop(0xB4, "LDY", modeDPX)
	dop(0xAC, "LDY", modeAbs)
	dop(0xBC, "LDY", modeAbsX)

	dop(0x85, "STA", modeDP)
	dop(0x95, "STA", modeDPX)
	dop(0x8D, "STA", modeAbs)
	dop(0x9D, "STA", modeAbsX)
	dop(0x99, "STA", modeAbsY)
	dop(0x8F, "STA", modeLong)
	dop(0x9F, "STA", modeLongX)
	dop(0x81, "STA", modeDPIndX)
	dop(0x91, "STA", modeDPIndY)
	dop(0x92, "STA", modeDPInd)
	dop(0x87, "STA", modeDPIndLong)
	dop(0x97, "STA", modeDPIndLongY)
	dop(0x83, "STA", modeSR)
	dop(0x93, "STA", modeSRIndY)

	dop(0x86, "STX", modeDP)
	dop(0x96, "STX", modeDPY)
	dop(0x8E, "STX", modeAbs)
	dop(0x84, "STY", modeDP)
	dop(0x94, "STY", modeDPX)
	dop(0x8C, "STY", modeAbs)
	dop(0x64, "STZ", modeDP)
	dop(0x74, "STZ", modeDPX)
	dop(0x9C, "STZ", modeAbs)
	dop(0x9E, "STZ", modeAbsX)

	logic := []struct {
		name                                                                       string
		imm, dp, dpx, abs, absx, absy, long, longx, dpix, dpiy, dpi, dpil, dpily, sr, sry int
	}{
		{"AND", 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x2F, 0x3F, 0x21, 0x31, 0x32, 0x27, 0x37, 0x23, 0x33},
		{"ORA", 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x0F, 0x1F, 0x01, 0x11, 0x12, 0x07, 0x17, 0x03, 0x13},
		{"EOR", 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x4F, 0x5F, 0x41, 0x51, 0x52, 0x47, 0x57, 0x43, 0x53},
		{"ADC", 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x6F, 0x7F, 0x61, 0x71, 0x72, 0x67, 0x77, 0x63, 0x73},
		{"SBC", 0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xEF, 0xFF, 0xE1, 0xF1, 0xF2, 0xE7, 0xF7, 0xE3, 0xF3},
		{"CMP", 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xCF, 0xDF, 0xC1, 0xD1, 0xD2, 0xC7, 0xD7, 0xC3, 0xD3},
	}
	for _, l := range logic {
		dop(l.imm, l.name, modeImmM)
		dop(l.dp, l.name, modeDP)
		dop(l.dpx, l.name, modeDPX)
		dop(l.abs, l.name, modeAbs)
		dop(l.absx, l.name, modeAbsX)
		dop(l.absy, l.name, modeAbsY)
		dop(l.long, l.name, modeLong)
		dop(l.longx, l.name, modeLongX)
		dop(l.dpix, l.name, modeDPIndX)
		dop(l.dpiy, l.name, modeDPIndY)
		dop(l.dpi, l.name, modeDPInd)
		dop(l.dpil, l.name, modeDPIndLong)
		dop(l.dpily, l.name, modeDPIndLongY)
		dop(l.sr, l.name, modeSR)
		dop(l.sry, l.name, modeSRIndY)
	}

	dop(0xE0, "CPX", modeImmX)
	dop(0xE4, "CPX", modeDP)
	dop(0xEC, "CPX", modeAbs)
	dop(0xC0, "CPY", modeImmX)
	dop(0xC4, "CPY", modeDP)
	dop(0xCC, "CPY", modeAbs)

	dop(0x89, "BIT", modeImmM)
	dop(0x24, "BIT", modeDP)
	dop(0x34, "BIT", modeDPX)
	dop(0x2C, "BIT", modeAbs)
	dop(0x3C, "BIT", modeAbsX)

	dop(0x04, "TSB", modeDP)
	dop(0x0C, "TSB", modeAbs)
	dop(0x14, "TRB", modeDP)
	dop(0x1C, "TRB", modeAbs)

	dop(0x1A, "INC", modeAcc)
	dop(0x3A, "DEC", modeAcc)
	dop(0xE6, "INC", modeDP)
	dop(0xF6, "INC", modeDPX)
	dop(0xEE, "INC", modeAbs)
	dop(0xFE, "INC", modeAbsX)
	dop(0xC6, "DEC", modeDP)
	dop(0xD6, "DEC", modeDPX)
	dop(0xCE, "DEC", modeAbs)
	dop(0xDE, "DEC", modeAbsX)
	dop(0xE8, "INX", modeImp)
	dop(0xCA, "DEX", modeImp)
	dop(0xC8, "INY", modeImp)
	dop(0x88, "DEY", modeImp)

	shift := []struct {
		name                       string
		acc, dp, dpx, abs, absx int
	}{
		{"ASL", 0x0A, 0x06, 0x16, 0x0E, 0x1E},
		{"LSR", 0x4A, 0x46, 0x56, 0x4E, 0x5E},
		{"ROL", 0x2A, 0x26, 0x36, 0x2E, 0x3E},
		{"ROR", 0x6A, 0x66, 0x76, 0x6E, 0x7E},
	}
	for _, s := range shift {
		dop(s.acc, s.name, modeAcc)
		dop(s.dp, s.name, modeDP)
		dop(s.dpx, s.name, modeDPX)
		dop(s.abs, s.name, modeAbs)
		dop(s.absx, s.name, modeAbsX)
	}

	dop(0xAA, "TAX", modeImp)
	dop(0xA8, "TAY", modeImp)
	dop(0x8A, "TXA", modeImp)
	dop(0x98, "TYA", modeImp)
	dop(0x9B, "TXY", modeImp)
	dop(0xBB, "TYX", modeImp)
	dop(0xBA, "TSX", modeImp)
	dop(0x9A, "TXS", modeImp)
	dop(0x5B, "TCD", modeImp)
	dop(0x7B, "TDC", modeImp)
	dop(0x1B, "TCS", modeImp)
	dop(0x3B, "TSC", modeImp)
	dop(0xEB, "XBA", modeImp)

	dop(0x18, "CLC", modeImp)
	dop(0x38, "SEC", modeImp)
	dop(0x58, "CLI", modeImp)
	dop(0x78, "SEI", modeImp)
	dop(0xD8, "CLD", modeImp)
	dop(0xF8, "SED", modeImp)
	dop(0xB8, "CLV", modeImp)
	dop(0xC2, "REP", modeImm8)
	dop(0xE2, "SEP", modeImm8)
	dop(0xFB, "XCE", modeImp)

	dop(0x48, "PHA", modeImp)
	dop(0x68, "PLA", modeImp)
	dop(0xDA, "PHX", modeImp)
	dop(0xFA, "PLX", modeImp)
	dop(0x5A, "PHY", modeImp)
	dop(0x7A, "PLY", modeImp)
	dop(0x08, "PHP", modeImp)
	dop(0x28, "PLP", modeImp)
	dop(0x8B, "PHB", modeImp)
	dop(0xAB, "PLB", modeImp)
	dop(0x4B, "PHK", modeImp)
	dop(0x0B, "PHD", modeImp)
	dop(0x2B, "PLD", modeImp)
	dop(0xD4, "PEI", modeDP)
	dop(0xF4, "PEA", modeAbs)
	dop(0x62, "PER", modeRel16)

	dop(0x4C, "JMP", modeAbs)
	dop(0x5C, "JML", modeLong)
	dop(0x6C, "JMP", modeDPInd)
	dop(0x7C, "JMP", modeDPIndX)
	dop(0xDC, "JML", modeDPIndLong)
	dop(0x20, "JSR", modeAbs)
	dop(0xFC, "JSR", modeDPIndX)
	dop(0x22, "JSL", modeLong)
	dop(0x60, "RTS", modeImp)
	dop(0x6B, "RTL", modeImp)
	dop(0x40, "RTI", modeImp)

	dop(0x80, "BRA", modeRel8)
	dop(0x82, "BRL", modeRel16)
	dop(0x90, "BCC", modeRel8)
	dop(0xB0, "BCS", modeRel8)
	dop(0xF0, "BEQ", modeRel8)
	dop(0xD0, "BNE", modeRel8)
	dop(0x10, "BPL", modeRel8)
	dop(0x30, "BMI", modeRel8)
	dop(0x50, "BVC", modeRel8)
	dop(0x70, "BVS", modeRel8)

	dop(0x00, "BRK", modeImm8)
	dop(0x02, "COP", modeImm8)
	dop(0xCB, "WAI", modeImp)
	dop(0xDB, "STP", modeImp)
	dop(0xEA, "NOP", modeImp)
	dop(0x42, "WDM", modeImm8)

	dop(0x54, "MVN", modeBlockMove)
	dop(0x44, "MVP", modeBlockMove)
}

// Disassemble formats the instruction at pc (within bank pb) as text,
// returning it along with the byte length consumed. It peeks the bus
// directly rather than stepping the CPU.
func Disassemble(c *CPU, pb uint8, pc uint16) (string, int) {
	opcode := c.Read8(addr24(pb, pc))
	d := disasmOps[opcode]
	if d.Mnemonic == "" {
		return fmt.Sprintf("??? ($%02X)", opcode), 1
	}

	read8 := func(off uint16) uint8 { return c.Read8(addr24(pb, pc+off)) }
	read16 := func(off uint16) uint16 {
		return uint16(read8(off)) | uint16(read8(off+1))<<8
	}
	read24 := func(off uint16) uint32 {
		return uint32(read16(off)) | uint32(read8(off+2))<<16
	}

	switch d.Mode {
	case modeImp, modeAcc:
		return d.Mnemonic, 1
	case modeImmM, modeImmX:
		w := c.widthA()
		if d.Mode == modeImmX {
			w = c.widthXY()
		}
		if w == 1 {
			return fmt.Sprintf("%s #$%02X", d.Mnemonic, read8(1)), 2
		}
		return fmt.Sprintf("%s #$%04X", d.Mnemonic, read16(1)), 3
	case modeImm8:
		return fmt.Sprintf("%s #$%02X", d.Mnemonic, read8(1)), 2
	case modeDP:
		return fmt.Sprintf("%s $%02X", d.Mnemonic, read8(1)), 2
	case modeDPX:
		return fmt.Sprintf("%s $%02X,X", d.Mnemonic, read8(1)), 2
	case modeDPY:
		return fmt.Sprintf("%s $%02X,Y", d.Mnemonic, read8(1)), 2
	case modeAbs:
		return fmt.Sprintf("%s $%04X", d.Mnemonic, read16(1)), 3
	case modeAbsX:
		return fmt.Sprintf("%s $%04X,X", d.Mnemonic, read16(1)), 3
	case modeAbsY:
		return fmt.Sprintf("%s $%04X,Y", d.Mnemonic, read16(1)), 3
	case modeLong:
		return fmt.Sprintf("%s $%06X", d.Mnemonic, read24(1)), 4
	case modeLongX:
		return fmt.Sprintf("%s $%06X,X", d.Mnemonic, read24(1)), 4
	case modeDPInd:
		return fmt.Sprintf("%s ($%02X)", d.Mnemonic, read8(1)), 2
	case modeDPIndX:
		return fmt.Sprintf("%s ($%02X,X)", d.Mnemonic, read8(1)), 2
	case modeDPIndY:
		return fmt.Sprintf("%s ($%02X),Y", d.Mnemonic, read8(1)), 2
	case modeDPIndLong:
		return fmt.Sprintf("%s [$%02X]", d.Mnemonic, read8(1)), 2
	case modeDPIndLongY:
		return fmt.Sprintf("%s [$%02X],Y", d.Mnemonic, read8(1)), 2
	case modeSR:
		return fmt.Sprintf("%s $%02X,S", d.Mnemonic, read8(1)), 2
	case modeSRIndY:
		return fmt.Sprintf("%s ($%02X,S),Y", d.Mnemonic, read8(1)), 2
	case modeRel8:
		off := int8(read8(1))
		return fmt.Sprintf("%s $%04X", d.Mnemonic, uint16(int32(pc)+2+int32(off))), 2
	case modeRel16:
		off := int16(read16(1))
		return fmt.Sprintf("%s $%04X", d.Mnemonic, uint16(int32(pc)+3+int32(off))), 3
	case modeBlockMove:
		return fmt.Sprintf("%s $%02X,$%02X", d.Mnemonic, read8(2), read8(1)), 3
	default:
		return d.Mnemonic, 1
	}
}
