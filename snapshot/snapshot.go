// Package snapshot defines the neutral save-state record that captures
// every emulated component's state without holding a single pointer
// into the live machine, and the codec that puts it on the wire.
package snapshot

import (
	"errors"

	"snes816/apu"
	"snes816/bus"
	"snes816/cpu"
	"snes816/ppu"
	"snes816/system"
)

// ErrBadSnapshot is returned by UnmarshalJSON when a decoded byte blob
// or array does not match the fixed size its destination field expects.
var ErrBadSnapshot = errors.New("snapshot: malformed snapshot data")

// Snapshot is a flat, self-contained copy of everything needed to
// resume a System from where it left off.
type Snapshot struct {
	Version     int
	TotalCycles uint64

	CPU cpu.State
	Bus bus.State
	PPU ppu.State
	APU apu.State
}

// Capture copies every component's state out of a running System.
func Capture(s *system.System) Snapshot {
	return Snapshot{
		Version:     1,
		TotalCycles: s.TotalCycles(),
		CPU:         s.CPU.State(),
		Bus:         s.Bus.State(),
		PPU:         s.PPU.State(),
		APU:         s.APU.State(),
	}
}

// Restore overwrites every component of s with the snapshot's
// recorded state.
func Restore(s *system.System, snap Snapshot) {
	s.CPU.Restore(snap.CPU)
	s.Bus.Restore(snap.Bus)
	s.PPU.Restore(snap.PPU)
	s.APU.Restore(snap.APU)
	s.SetTotalCycles(snap.TotalCycles)
}
