package ppu

import "testing"

func TestResetForcesBlank(t *testing.T) {
	p := New()
	if !p.forceBlank {
		t.Fatal("expected forceBlank set after reset")
	}
}

func TestINIDISPSetsBrightnessAndForceBlank(t *testing.T) {
	p := New()
	p.WriteRegister(0x2100, 0x8A) // force-blank set, brightness 0xA
	if !p.forceBlank {
		t.Fatal("expected force-blank set")
	}
	if p.brightness != 0x0A {
		t.Fatalf("brightness = %d, want 10", p.brightness)
	}
}

func TestVRAMWriteReadRoundTrip(t *testing.T) {
	p := New()
	p.WriteRegister(0x2115, 0x00) // VMAIN: increment 1, trigger on high byte
	p.WriteRegister(0x2116, 0x34)
	p.WriteRegister(0x2117, 0x12) // vramAddress = 0x1234
	p.WriteRegister(0x2118, 0xCD)
	p.WriteRegister(0x2119, 0xAB)

	if got := p.vram[0x1234*2]; got != 0xCD {
		t.Fatalf("vram low byte = %#02x, want $CD", got)
	}
	if got := p.vram[0x1234*2+1]; got != 0xAB {
		t.Fatalf("vram high byte = %#02x, want $AB", got)
	}
	if p.vramAddress != 0x1235 {
		t.Fatalf("vramAddress = %#04x, want $1235 after high-byte write", p.vramAddress)
	}
}

func TestCGDataLatchesThenWrites(t *testing.T) {
	p := New()
	p.WriteRegister(0x2121, 0x01) // CGADD = 1
	p.WriteRegister(0x2122, 0xFF) // low byte latched
	p.WriteRegister(0x2122, 0xFF) // high byte, masked to 7 bits, commits word

	if p.cgram[2] != 0xFF || p.cgram[3] != 0x7F {
		t.Fatalf("cgram[2:4] = %#02x %#02x, want FF 7F", p.cgram[2], p.cgram[3])
	}
	if p.cgramAddress != 2 {
		t.Fatalf("cgramAddress = %d, want 2", p.cgramAddress)
	}
}

func TestOAMAddressResetsFirstWriteToggle(t *testing.T) {
	p := New()
	p.WriteRegister(0x2104, 0x11) // latches low byte, first write
	p.WriteRegister(0x2102, 0x00) // OAMADDL resets toggle
	if !p.oamFirstWrite {
		t.Fatal("expected oamFirstWrite reset by OAMADDL write")
	}
}

func TestEndScanlineAssertsVBlankAtLine225(t *testing.T) {
	p := New()
	p.WriteRegister(0x2100, 0x0F) // clear force-blank, full brightness
	for line := 0; line < 225; line++ {
		p.EndScanline(line)
	}
	if !p.inVBlank {
		t.Fatal("expected inVBlank after scanline 225 completes")
	}
	if !p.NMIAsserted() {
		t.Fatal("expected NMI to have been asserted entering vblank")
	}
}

func TestFrameWrapsAndTogglesOddEven(t *testing.T) {
	p := New()
	startOdd := p.frameOddEven
	for line := 0; line < scanlinesPerFrame; line++ {
		p.EndScanline(line)
	}
	if p.scanline != 0 {
		t.Fatalf("scanline after full frame = %d, want 0", p.scanline)
	}
	if p.frameCount != 1 {
		t.Fatalf("frameCount = %d, want 1", p.frameCount)
	}
	if p.frameOddEven == startOdd {
		t.Fatal("expected frameOddEven to toggle across a frame")
	}
}

func TestForceBlankRowIsBlack(t *testing.T) {
	p := New()
	p.EndScanline(0) // still force-blanked by default
	row := p.Framebuffer()[0:4]
	for _, b := range row {
		if b != 0 {
			t.Fatalf("force-blank pixel = %v, want all zero", row)
		}
	}
}

func TestBackdropFillsWhenNotBlanked(t *testing.T) {
	p := New()
	p.WriteRegister(0x2100, 0x0F) // clear force-blank
	p.WriteRegister(0x2121, 0x00)
	p.WriteRegister(0x2122, 0xFF) // backdrop low byte = all-red-ish word low
	p.WriteRegister(0x2122, 0x7F) // high byte -> full-scale BGR555 word

	p.EndScanline(0)
	px := p.Framebuffer()[0:4]
	if px[3] != 0xFF {
		t.Fatalf("alpha = %#02x, want $FF", px[3])
	}
}
