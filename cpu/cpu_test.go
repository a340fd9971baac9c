package cpu

import (
	"testing"

	"snes816/bus"
)

func newTestCPU(t *testing.T, rom []byte) *CPU {
	t.Helper()
	b := bus.New(bus.Hooks{
		ReadPPUReg:  func(uint16) uint8 { return 0 },
		WritePPUReg: func(uint16, uint8) {},
		ReadAPUPort: func(int) uint8 { return 0 },
		WriteAPUPort: func(int, uint8) {},
	})
	if err := b.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	c := New(b)
	c.Reset()
	return c
}

// makeROM returns a 32KB LoROM image with reset vector pointing at
// $8000 (file offset 0) and the given bytes placed there.
func makeROM(code []byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom, code)
	rom[0x7FFC] = 0x00 // reset vector low -> $8000
	rom[0x7FFD] = 0x80
	return rom
}

func TestResetBootsAtResetVector(t *testing.T) {
	c := newTestCPU(t, makeROM(nil))
	if c.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want $8000", c.PC)
	}
	if !c.E {
		t.Fatal("expected emulation mode after reset")
	}
	if c.widthA() != 1 || c.widthXY() != 1 {
		t.Fatal("expected 8-bit A/X/Y widths after reset")
	}
}

func TestLDAImmediate8Bit(t *testing.T) {
	c := newTestCPU(t, makeROM([]byte{0xA9, 0x42})) // LDA #$42
	c.Step()
	if c.A&0xFF != 0x42 {
		t.Fatalf("A = %#02x, want $42", c.A&0xFF)
	}
	if c.getFlag(FlagZ) || c.getFlag(FlagN) {
		t.Fatal("unexpected Z/N after loading a positive nonzero value")
	}
}

func TestRepSwitchesAccumulatorTo16Bit(t *testing.T) {
	code := []byte{
		0xFB,       // XCE (swap C<->E; C starts clear so E becomes false: native mode)
		0xC2, 0x20, // REP #$20 (clear M -> 16-bit A)
		0xA9, 0x34, 0x12, // LDA #$1234
	}
	c := newTestCPU(t, makeROM(code))
	c.setFlag(FlagC, false)
	c.Step() // XCE
	if c.E {
		t.Fatal("expected native mode after XCE with C clear")
	}
	c.Step() // REP
	if c.widthA() != 2 {
		t.Fatal("expected 16-bit accumulator after REP #$20")
	}
	c.Step() // LDA #$1234
	if c.A != 0x1234 {
		t.Fatalf("A = %#04x, want $1234", c.A)
	}
}

func TestStackWordRoundTrip(t *testing.T) {
	code := []byte{
		0xF4, 0xCD, 0xAB, // PEA #$ABCD
		0x68, // PLA (8-bit, since still in emulation mode)
	}
	c := newTestCPU(t, makeROM(code))
	c.Step() // PEA
	c.Step() // PLA pulls low byte first
	if c.A&0xFF != 0xCD {
		t.Fatalf("first pull = %#02x, want $CD", c.A&0xFF)
	}
	if got := c.popByte(); got != 0xAB {
		t.Fatalf("second pull = %#02x, want $AB", got)
	}
}

func TestBranchTakenAcrossPageBoundary(t *testing.T) {
	code := make([]byte, 0x8000)
	code[0x00F0] = 0x80 // BRA at $80F0
	code[0x00F1] = 0x20 // operand fetch ends at $80F2; +$20 lands at $8112, crossing the page
	rom := code
	rom[0x7FFC], rom[0x7FFD] = 0xF0, 0x80
	c := newTestCPU(t, rom)
	before := c.Cycles
	c.Step()
	if c.PC != 0x8112 {
		t.Fatalf("PC after branch = %#04x, want $8112", c.PC)
	}
	if c.Cycles-before != 4 {
		t.Fatalf("branch cycles = %d, want 4 (base + taken + page cross)", c.Cycles-before)
	}
}

func TestADCDecimalMode(t *testing.T) {
	code := []byte{
		0xF8,       // SED
		0x18,       // CLC
		0xA9, 0x59, // LDA #$59
		0x69, 0x35, // ADC #$35  (59 + 35 = 94 in BCD)
	}
	c := newTestCPU(t, makeROM(code))
	for i := 0; i < 4; i++ {
		c.Step()
	}
	if c.A&0xFF != 0x94 {
		t.Fatalf("A = %#02x, want $94 (BCD 59+35)", c.A&0xFF)
	}
}

func TestMVNCopiesBlock(t *testing.T) {
	code := []byte{
		0xA9, 0x00, // LDA #$00 -> A holds count-1, so exactly 1 byte moves
		0xA2, 0x00, // LDX #$00
		0xA0, 0x10, // LDY #$10
		0x54, 0x00, 0x00, // MVN dst=$00 src=$00
	}
	c := newTestCPU(t, makeROM(code))
	c.Bus.Write8(addr24(0, 0x0000), 0x77)
	for i := 0; i < 3; i++ {
		c.Step()
	}
	for c.PC < 0x8009 || c.A != 0xFFFF {
		c.Step()
		if c.Cycles > 1000 {
			t.Fatal("MVN loop did not terminate")
		}
	}
	if got := c.Bus.Read8(addr24(0, 0x0010)); got != 0x77 {
		t.Fatalf("dest byte = %#02x, want $77", got)
	}
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	code := make([]byte, 0x8000)
	code[0] = 0x20 // JSR $8010
	code[1] = 0x10
	code[2] = 0x80
	code[0x10] = 0x60 // RTS
	rom := code
	rom[0x7FFC], rom[0x7FFD] = 0x00, 0x80
	c := newTestCPU(t, rom)
	c.Step() // JSR
	if c.PC != 0x8010 {
		t.Fatalf("PC after JSR = %#04x, want $8010", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#04x, want $8003", c.PC)
	}
}
