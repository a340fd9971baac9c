// Package ppu implements the picture-processing unit's memory-mapped
// register file, VRAM/CGRAM/OAM storage, and scanline timing.
package ppu

import "snes816/log"

const (
	vramSize  = 64 * 1024
	cgramSize = 512
	oamSize   = 544

	screenWidth  = 256
	screenHeight = 224

	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	vblankStartLine    = 225
	hblankStartDot     = 274
)

// bgConfig holds one background layer's tilemap/tile-data configuration.
type bgConfig struct {
	tilemapBase uint16 // VRAM word address
	tilemapSize uint8  // 0-3: 32x32, 64x32, 32x64, 64x64
	tileDataBase uint16
	tile16x16   bool
	hScroll     uint16
	vScroll     uint16
}

// PPU is the picture-processing unit register file and framebuffer
// producer. The CPU and APU never hold a reference to it directly;
// System wires PPU.ReadRegister/WriteRegister into bus.Hooks.
type PPU struct {
	vram  [vramSize]byte
	cgram [cgramSize]byte // 256 entries * 2 bytes, BGR555
	oam   [oamSize]byte   // 512B low table + 32B high table

	vramAddress    uint16
	vramIncrement  uint16
	vramRemapMode  uint8
	vramReadBuffer uint16

	oamAddress     uint16
	oamFirstWrite  bool
	oamWriteBuffer uint8

	cgramAddress uint8
	cgramLatch   uint8
	cgramLatchHi bool

	m7A, m7B, m7C, m7D int16
	m7X, m7Y           int16
	m7PrevWrite        uint8
	m7Flip             uint8 // bit0 = flip X, bit1 = flip Y
	m7OutsideFill      bool
	m7Repeat           bool

	bgPrevWrite [4]uint8
	bg          [4]bgConfig
	bgEnabled   [4]bool
	objEnabled  bool

	screenMode uint8
	brightness uint8
	forceBlank bool

	mosaicSize uint8
	mosaicBG   [4]bool

	mainEnable uint8 // TM
	subEnable  uint8 // TS

	objSizeIndex uint8
	objNameBase  uint16
	objNameSelect uint8

	hCounterLatched uint16
	vCounterLatched uint16
	hvLatched       bool

	ppu1OpenBus uint8
	ppu2OpenBus uint8

	frameOddEven bool
	inVBlank     bool
	inHBlank     bool
	scanline     int
	cycle        int
	frameCount   uint64

	nmiFlag bool

	framebuffer [screenHeight * screenWidth * 4]byte
}

// New constructs a PPU in its post-Reset state.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// Reset clears VRAM/CGRAM/OAM and all latches, matching post-power-on
// state. It does not clear the framebuffer, since the last frame a
// presenter read remains valid until the next endFrame.
func (p *PPU) Reset() {
	clear(p.vram[:])
	clear(p.cgram[:])
	clear(p.oam[:])

	p.vramAddress, p.vramIncrement, p.vramRemapMode, p.vramReadBuffer = 0, 1, 0, 0
	p.oamAddress, p.oamFirstWrite, p.oamWriteBuffer = 0, true, 0
	p.cgramAddress, p.cgramLatch, p.cgramLatchHi = 0, 0, false
	p.m7A, p.m7B, p.m7C, p.m7D = 0, 0, 0, 0
	p.m7X, p.m7Y, p.m7PrevWrite = 0, 0, 0
	p.m7Flip, p.m7OutsideFill, p.m7Repeat = 0, false, false
	p.bgPrevWrite = [4]uint8{}
	p.bg = [4]bgConfig{}
	p.bgEnabled = [4]bool{}
	p.objEnabled = false
	p.screenMode, p.brightness, p.forceBlank = 0, 0, true
	p.mosaicSize, p.mosaicBG = 0, [4]bool{}
	p.mainEnable, p.subEnable = 0, 0
	p.objSizeIndex, p.objNameBase, p.objNameSelect = 0, 0, 0
	p.hCounterLatched, p.vCounterLatched, p.hvLatched = 0, 0, false
	p.ppu1OpenBus, p.ppu2OpenBus = 0, 0
	p.frameOddEven, p.inVBlank, p.inHBlank = false, false, false
	p.scanline, p.cycle, p.frameCount = 0, 0, 0
	p.nmiFlag = false

	log.ModPPU.InfoZ("reset").End()
}

// NMIAsserted reports whether vblank NMI fired this frame and has not
// yet been consumed by the caller (System, which forwards it to CPU.RaiseNMI).
func (p *PPU) NMIAsserted() bool {
	if p.nmiFlag {
		p.nmiFlag = false
		return true
	}
	return false
}

// InVBlank reports whether the PPU is currently in vblank.
func (p *PPU) InVBlank() bool { return p.inVBlank }

// Framebuffer returns the most recently completed frame's RGBA pixels,
// row-major, 4 bytes per pixel. Callers must not retain it past the
// next EndFrame.
func (p *PPU) Framebuffer() []byte { return p.framebuffer[:] }

func (p *PPU) backdropColor() (r, g, b uint8) {
	return p.decodeCGRAMColor(0)
}

func (p *PPU) decodeCGRAMColor(index int) (r, g, b uint8) {
	lo := p.cgram[index*2]
	hi := p.cgram[index*2+1]
	word := uint16(lo) | uint16(hi)<<8
	r5 := word & 0x1F
	g5 := (word >> 5) & 0x1F
	b5 := (word >> 10) & 0x1F
	return uint8(r5<<3 | r5>>2), uint8(g5<<3 | g5>>2), uint8(b5<<3 | b5>>2)
}
