package system

import "testing"

func makeTestROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x7FFC], rom[0x7FFD] = 0x00, 0x80 // reset vector -> $8000
	// LDA #$01 ; STA $2100 (force-blank off, brightness 1) ; BRA $8000
	rom[0] = 0xA9
	rom[1] = 0x01
	rom[2] = 0x8D
	rom[3] = 0x00
	rom[4] = 0x21
	rom[5] = 0x80 // BRA
	rom[6] = 0xF9 // -7: jumps back to $8000, restarting the program
	return rom
}

func TestPowerOnResetsAndStartsRunning(t *testing.T) {
	s := New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	if !s.IsRunning() {
		t.Fatal("expected IsRunning true after PowerOn")
	}
	if s.CPU.PC != 0x8000 {
		t.Fatalf("CPU.PC = %#04x, want $8000", s.CPU.PC)
	}
}

func TestRunFrameAdvancesFullMasterClockCount(t *testing.T) {
	s := New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	s.RunFrame()

	want := uint64(masterCyclesPerScanline * scanlinesPerFrame)
	if s.TotalCycles() != want {
		t.Fatalf("TotalCycles = %d, want %d", s.TotalCycles(), want)
	}
	if s.PPU.FrameCount() != 1 {
		t.Fatalf("PPU frame count = %d, want 1", s.PPU.FrameCount())
	}
}

func TestPowerOffStopsRunFrame(t *testing.T) {
	s := New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	s.PowerOff()
	before := s.TotalCycles()
	s.RunFrame()
	if s.TotalCycles() != before {
		t.Fatalf("TotalCycles changed after PowerOff: %d -> %d", before, s.TotalCycles())
	}
}

func TestFramebufferHasExpectedSize(t *testing.T) {
	s := New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	s.RunFrame()
	const want = 256 * 224 * 4
	if got := len(s.Framebuffer()); got != want {
		t.Fatalf("Framebuffer length = %d, want %d", got, want)
	}
}
