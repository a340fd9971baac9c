package ppu

// State is the neutral, flat snapshot record for the PPU: scalars and
// fixed-size arrays only, suitable for round-tripping through the
// snapshot package without retaining any pointer into the live PPU.
type State struct {
	VRAM  [vramSize]byte
	CGRAM [cgramSize]byte
	OAM   [oamSize]byte

	VRAMAddress    uint16
	VRAMIncrement  uint16
	VRAMRemapMode  uint8
	VRAMReadBuffer uint16

	OAMAddress     uint16
	OAMFirstWrite  bool
	OAMWriteBuffer uint8

	CGRAMAddress uint8
	CGRAMLatch   uint8
	CGRAMLatchHi bool

	M7A, M7B, M7C, M7D int16
	M7X, M7Y           int16
	M7PrevWrite        uint8
	M7Flip             uint8
	M7OutsideFill      bool
	M7Repeat           bool

	BGPrevWrite [4]uint8
	BGTilemapBase [4]uint16
	BGTilemapSize [4]uint8
	BGTileDataBase [4]uint16
	BGTile16x16   [4]bool
	BGHScroll     [4]uint16
	BGVScroll     [4]uint16
	BGEnabled     [4]bool
	ObjEnabled    bool

	ScreenMode uint8
	Brightness uint8
	ForceBlank bool

	MosaicSize uint8
	MosaicBG   [4]bool

	MainEnable uint8
	SubEnable  uint8

	ObjSizeIndex  uint8
	ObjNameBase   uint16
	ObjNameSelect uint8

	HCounterLatched uint16
	VCounterLatched uint16
	HVLatched       bool

	PPU1OpenBus uint8
	PPU2OpenBus uint8

	FrameOddEven bool
	InVBlank     bool
	InHBlank     bool
	Scanline     int
	Cycle        int
	FrameCount   uint64
}

// State captures the PPU's state into a neutral record.
func (p *PPU) State() State {
	s := State{
		VRAM: p.vram, CGRAM: p.cgram, OAM: p.oam,
		VRAMAddress: p.vramAddress, VRAMIncrement: p.vramIncrement,
		VRAMRemapMode: p.vramRemapMode, VRAMReadBuffer: p.vramReadBuffer,
		OAMAddress: p.oamAddress, OAMFirstWrite: p.oamFirstWrite, OAMWriteBuffer: p.oamWriteBuffer,
		CGRAMAddress: p.cgramAddress, CGRAMLatch: p.cgramLatch, CGRAMLatchHi: p.cgramLatchHi,
		M7A: p.m7A, M7B: p.m7B, M7C: p.m7C, M7D: p.m7D,
		M7X: p.m7X, M7Y: p.m7Y, M7PrevWrite: p.m7PrevWrite,
		M7Flip: p.m7Flip, M7OutsideFill: p.m7OutsideFill, M7Repeat: p.m7Repeat,
		BGPrevWrite: p.bgPrevWrite, ObjEnabled: p.objEnabled,
		ScreenMode: p.screenMode, Brightness: p.brightness, ForceBlank: p.forceBlank,
		MosaicSize: p.mosaicSize, MosaicBG: p.mosaicBG,
		MainEnable: p.mainEnable, SubEnable: p.subEnable,
		ObjSizeIndex: p.objSizeIndex, ObjNameBase: p.objNameBase, ObjNameSelect: p.objNameSelect,
		HCounterLatched: p.hCounterLatched, VCounterLatched: p.vCounterLatched, HVLatched: p.hvLatched,
		PPU1OpenBus: p.ppu1OpenBus, PPU2OpenBus: p.ppu2OpenBus,
		FrameOddEven: p.frameOddEven, InVBlank: p.inVBlank, InHBlank: p.inHBlank,
		Scanline: p.scanline, Cycle: p.cycle, FrameCount: p.frameCount,
	}
	for i := 0; i < 4; i++ {
		s.BGTilemapBase[i] = p.bg[i].tilemapBase
		s.BGTilemapSize[i] = p.bg[i].tilemapSize
		s.BGTileDataBase[i] = p.bg[i].tileDataBase
		s.BGTile16x16[i] = p.bg[i].tile16x16
		s.BGHScroll[i] = p.bg[i].hScroll
		s.BGVScroll[i] = p.bg[i].vScroll
		s.BGEnabled[i] = p.bgEnabled[i]
	}
	return s
}

// Restore replaces the PPU's state with a previously captured snapshot.
func (p *PPU) Restore(s State) {
	p.vram, p.cgram, p.oam = s.VRAM, s.CGRAM, s.OAM
	p.vramAddress, p.vramIncrement = s.VRAMAddress, s.VRAMIncrement
	p.vramRemapMode, p.vramReadBuffer = s.VRAMRemapMode, s.VRAMReadBuffer
	p.oamAddress, p.oamFirstWrite, p.oamWriteBuffer = s.OAMAddress, s.OAMFirstWrite, s.OAMWriteBuffer
	p.cgramAddress, p.cgramLatch, p.cgramLatchHi = s.CGRAMAddress, s.CGRAMLatch, s.CGRAMLatchHi
	p.m7A, p.m7B, p.m7C, p.m7D = s.M7A, s.M7B, s.M7C, s.M7D
	p.m7X, p.m7Y, p.m7PrevWrite = s.M7X, s.M7Y, s.M7PrevWrite
	p.m7Flip, p.m7OutsideFill, p.m7Repeat = s.M7Flip, s.M7OutsideFill, s.M7Repeat
	p.bgPrevWrite, p.objEnabled = s.BGPrevWrite, s.ObjEnabled
	p.screenMode, p.brightness, p.forceBlank = s.ScreenMode, s.Brightness, s.ForceBlank
	p.mosaicSize, p.mosaicBG = s.MosaicSize, s.MosaicBG
	p.mainEnable, p.subEnable = s.MainEnable, s.SubEnable
	p.objSizeIndex, p.objNameBase, p.objNameSelect = s.ObjSizeIndex, s.ObjNameBase, s.ObjNameSelect
	p.hCounterLatched, p.vCounterLatched, p.hvLatched = s.HCounterLatched, s.VCounterLatched, s.HVLatched
	p.ppu1OpenBus, p.ppu2OpenBus = s.PPU1OpenBus, s.PPU2OpenBus
	p.frameOddEven, p.inVBlank, p.inHBlank = s.FrameOddEven, s.InVBlank, s.InHBlank
	p.scanline, p.cycle, p.frameCount = s.Scanline, s.Cycle, s.FrameCount
	for i := 0; i < 4; i++ {
		p.bg[i] = bgConfig{
			tilemapBase:  s.BGTilemapBase[i],
			tilemapSize:  s.BGTilemapSize[i],
			tileDataBase: s.BGTileDataBase[i],
			tile16x16:    s.BGTile16x16[i],
			hScroll:      s.BGHScroll[i],
			vScroll:      s.BGVScroll[i],
		}
		p.bgEnabled[i] = s.BGEnabled[i]
	}
}
