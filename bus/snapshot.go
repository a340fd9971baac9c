package bus

// State is the flat, neutral record of bus-owned memory used by
// internal snapshotting. It holds copies, never the
// live backing arrays.
type State struct {
	WRAM     [wramSize]byte
	SRAM     [sramSize]byte
	IOShadow [ioShadowSize]byte
}

func (b *Bus) State() State {
	var s State
	s.WRAM = b.wram
	s.SRAM = b.sram
	s.IOShadow = b.ioShadow
	return s
}

func (b *Bus) Restore(s State) {
	b.wram = s.WRAM
	b.sram = s.SRAM
	b.ioShadow = s.IOShadow
}
