package ppu

import "snes816/log"

// Step advances the dot counter by one master-clock-derived tick (the
// System calls this every 4 master cycles). Scanline/frame boundaries
// are handled by EndScanline/EndFrame, called by System directly so
// rendering only happens once per line rather than once per dot.
func (p *PPU) Step() {
	p.cycle++
	p.inHBlank = p.cycle >= hblankStartDot
	if p.cycle >= dotsPerScanline {
		p.cycle = 0
	}
}

// EndScanline is called by System once per scanline, after all of that
// line's Step calls have run. line is the scanline index just completed.
func (p *PPU) EndScanline(line int) {
	if line < screenHeight {
		p.renderScanline(line)
	}

	p.scanline = line + 1
	if p.scanline == vblankStartLine {
		p.inVBlank = true
		p.nmiFlag = true
		log.ModPPU.DebugZ("vblank start").Int("scanline", int64(p.scanline)).End()
	}
	if p.scanline >= scanlinesPerFrame {
		p.scanline = 0
		p.inVBlank = false
		p.frameCount++
		p.frameOddEven = !p.frameOddEven
	}
}

// EndFrame is called once after the 262nd scanline's EndScanline.
func (p *PPU) EndFrame() {
	log.ModPPU.DebugZ("frame complete").Uint("frame", p.frameCount).End()
}

// FrameCount reports the number of frames completed since Reset.
func (p *PPU) FrameCount() uint64 { return p.frameCount }
