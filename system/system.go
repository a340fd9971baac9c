// Package system wires the Bus, CPU, PPU and APU together and drives
// the master-clock frame loop: 262 scanlines of 1364 master cycles each,
// shared by the CPU, PPU and APU.
package system

import (
	"snes816/apu"
	"snes816/bus"
	"snes816/cpu"
	"snes816/log"
	"snes816/ppu"
)

const (
	masterCyclesPerScanline = 1364
	scanlinesPerFrame       = 262
	cpuDivisor              = 12
	ppuDivisor              = 4
)

// System owns every component and is the only type that holds
// references to more than one of them. The PPU and APU import neither
// each other nor the Bus, the Bus imports none of the components, and
// the CPU holds only the Bus.
type System struct {
	Bus *bus.Bus
	CPU *cpu.CPU
	PPU *ppu.PPU
	APU *apu.APU

	totalCycles uint64
	isRunning   bool
}

// New constructs a powered-off System with the Bus hooks wired to the
// PPU register file and APU mailbox.
func New() *System {
	s := &System{
		PPU: ppu.New(),
		APU: apu.New(),
	}
	s.Bus = bus.New(bus.Hooks{
		ReadPPUReg:   s.PPU.ReadRegister,
		WritePPUReg:  s.PPU.WriteRegister,
		ReadAPUPort:  s.APU.ReadPort,
		WriteAPUPort: s.APU.WritePort,
	})
	s.CPU = cpu.New(s.Bus)
	return s
}

// LoadROM parses and stores the cartridge image; it must be called
// before PowerOn.
func (s *System) LoadROM(rom []byte) error {
	return s.Bus.LoadROM(rom)
}

// PowerOn resets every component and starts the run loop.
func (s *System) PowerOn() {
	s.Bus.Reset()
	s.CPU.Reset()
	s.PPU.Reset()
	s.APU.Reset()
	s.totalCycles = 0
	s.isRunning = true
	log.ModSystem.InfoZ("power on").End()
}

// PowerOff stops RunFrame from doing anything further, without
// resetting component state.
func (s *System) PowerOff() {
	s.isRunning = false
	log.ModSystem.InfoZ("power off").End()
}

// Reset re-initializes every component without toggling isRunning.
func (s *System) Reset() {
	s.Bus.Reset()
	s.CPU.Reset()
	s.PPU.Reset()
	s.APU.Reset()
	s.totalCycles = 0
}

// IsRunning reports whether the System will act on the next RunFrame call.
func (s *System) IsRunning() bool { return s.isRunning }

// TotalCycles reports the master-clock tick count since the last PowerOn/Reset.
func (s *System) TotalCycles() uint64 { return s.totalCycles }

// SetTotalCycles is used by the snapshot package to restore the
// master-clock tick count; nothing inside System itself calls it.
func (s *System) SetTotalCycles(c uint64) { s.totalCycles = c }

// RunFrame executes exactly one 262-scanline frame if the system is
// running, or returns immediately otherwise.
func (s *System) RunFrame() {
	if !s.isRunning {
		return
	}

	for scanline := 0; scanline < scanlinesPerFrame; scanline++ {
		for tick := 0; tick < masterCyclesPerScanline; tick++ {
			if s.totalCycles%cpuDivisor == 0 {
				s.CPU.Step()
			}
			if s.totalCycles%ppuDivisor == 0 {
				s.PPU.Step()
			}
			s.APU.Step()
			s.totalCycles++
		}

		s.PPU.EndScanline(scanline)
		if s.PPU.NMIAsserted() {
			s.CPU.RaiseNMI()
		}
	}

	s.PPU.EndFrame()
	s.APU.EndFrame(uint32(s.totalCycles % (masterCyclesPerScanline * scanlinesPerFrame)))
}

// Framebuffer returns the PPU's last-completed frame. Callers must only
// read it between RunFrame calls.
func (s *System) Framebuffer() []byte { return s.PPU.Framebuffer() }

// ReadSamples drains pending stereo audio samples produced this frame.
func (s *System) ReadSamples(out []int16) int { return s.APU.ReadSamples(out) }
