package ppu

import "snes816/log"

// ReadRegister implements the $2134-$213F read surface. addr is the
// absolute CPU address in $2100-$213F; only the low 6 bits are used.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr & 0x3F {
	case 0x34:
		return p.readMPY(0)
	case 0x35:
		return p.readMPY(1)
	case 0x36:
		return p.readMPY(2)
	case 0x37:
		p.latchHV()
		return p.ppu2OpenBus
	case 0x38:
		return p.readOAMData()
	case 0x39:
		return p.readVRAMData(false)
	case 0x3A:
		return p.readVRAMData(true)
	case 0x3B:
		return p.readCGData()
	case 0x3C:
		return p.readOPHCT()
	case 0x3D:
		return p.readOPVCT()
	case 0x3E:
		return p.readSTAT77()
	case 0x3F:
		return p.readSTAT78()
	default:
		return p.ppu2OpenBus
	}
}

// WriteRegister implements the $2100-$2133 write surface.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr & 0x3F {
	case 0x00:
		p.brightness = value & 0x0F
		p.forceBlank = value&0x80 != 0
	case 0x01:
		p.objSizeIndex = (value >> 5) & 0x07
		p.objNameSelect = (value >> 3) & 0x03
		p.objNameBase = uint16(value&0x07) << 13
	case 0x02:
		p.oamAddress = (p.oamAddress & 0x300) | uint16(value)
		p.oamFirstWrite = true
	case 0x03:
		p.oamAddress = (p.oamAddress & 0xFF) | (uint16(value&1) << 8)
		p.oamFirstWrite = true
	case 0x04:
		p.writeOAMData(value)
	case 0x05:
		p.screenMode = value & 0x07
		p.bg[0].tile16x16 = value&(1<<4) != 0
		p.bg[1].tile16x16 = value&(1<<5) != 0
		p.bg[2].tile16x16 = value&(1<<6) != 0
		p.bg[3].tile16x16 = value&(1<<7) != 0
	case 0x06:
		p.mosaicSize = value >> 4
		for i := 0; i < 4; i++ {
			p.mosaicBG[i] = value&(1<<uint(i)) != 0
		}
	case 0x07, 0x08, 0x09, 0x0A:
		i := int(addr&0x3F) - 0x07
		p.bg[i].tilemapBase = uint16(value&0xFC) << 8
		p.bg[i].tilemapSize = value & 0x03
	case 0x0B:
		p.bg[0].tileDataBase = uint16(value&0x0F) << 12
		p.bg[1].tileDataBase = uint16(value&0xF0) << 8
	case 0x0C:
		p.bg[2].tileDataBase = uint16(value&0x0F) << 12
		p.bg[3].tileDataBase = uint16(value&0xF0) << 8
	case 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14:
		p.writeBGScroll(int(addr&0x3F), value)
	case 0x15:
		if value&0x80 != 0 {
			p.vramIncrement = 32
		} else {
			p.vramIncrement = 1
		}
		p.vramRemapMode = (value >> 2) & 0x03
	case 0x16:
		p.vramAddress = (p.vramAddress & 0xFF00) | uint16(value)
		p.primeVRAMReadBuffer()
	case 0x17:
		p.vramAddress = (p.vramAddress & 0x00FF) | uint16(value)<<8
		p.primeVRAMReadBuffer()
	case 0x18:
		p.writeVRAMData(value, false)
	case 0x19:
		p.writeVRAMData(value, true)
	case 0x1A:
		p.m7Flip = (value >> 6) & 0x03
		p.m7OutsideFill = value&0x01 != 0
		p.m7Repeat = value&0x80 == 0
	case 0x1B:
		p.m7A = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x1C:
		p.m7B = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x1D:
		p.m7C = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x1E:
		p.m7D = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x1F:
		p.m7X = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x20:
		p.m7Y = int16(uint16(value)<<8 | uint16(p.m7PrevWrite))
		p.m7PrevWrite = value
	case 0x21:
		p.cgramAddress = value
		p.cgramLatchHi = false
	case 0x22:
		p.writeCGData(value)
	case 0x2C:
		p.mainEnable = value
		for i := 0; i < 4; i++ {
			p.bgEnabled[i] = value&(1<<uint(i)) != 0
		}
		p.objEnabled = value&(1<<4) != 0
	case 0x2D:
		p.subEnable = value
	default:
		log.ModPPU.DebugZ("write to unimplemented register").
			Hex16("addr", addr).Hex8("value", value).End()
	}
}

func (p *PPU) writeBGScroll(reg int, value uint8) {
	// $210D-$2114: each of the four BGs gets an H then a V register,
	// latched byte-pair writes.
	bgIdx := (reg - 0x0D) / 2
	isV := (reg-0x0D)%2 == 1
	prev := p.bgPrevWrite[bgIdx]
	combined := uint16(value)<<8 | uint16(prev)
	if isV {
		p.bg[bgIdx].vScroll = combined & 0x03FF
	} else {
		p.bg[bgIdx].hScroll = combined & 0x03FF
	}
	p.bgPrevWrite[bgIdx] = value
}

func (p *PPU) primeVRAMReadBuffer() {
	word := uint16(p.vram[p.vramAddress*2]) | uint16(p.vram[p.vramAddress*2+1])<<8
	p.vramReadBuffer = word
}

// vramIncrementOnHigh mirrors VMAIN.bit7: when the increment step is the
// large one (32), the address advances on the low-byte access instead of
// the high-byte one.
func (p *PPU) vramIncrementOnHigh() bool { return p.vramIncrement == 1 }

func (p *PPU) writeVRAMData(value uint8, high bool) {
	off := int(p.vramAddress) * 2
	if high {
		if off+1 < len(p.vram) {
			p.vram[off+1] = value
		}
	} else if off < len(p.vram) {
		p.vram[off] = value
	}
	if high == p.vramIncrementOnHigh() {
		p.vramAddress += p.vramIncrement
	}
}

func (p *PPU) readVRAMData(high bool) uint8 {
	var v uint8
	if high {
		v = uint8(p.vramReadBuffer >> 8)
	} else {
		v = uint8(p.vramReadBuffer)
	}
	if high == p.vramIncrementOnHigh() {
		p.vramAddress += p.vramIncrement
		p.primeVRAMReadBuffer()
	}
	return v
}

func (p *PPU) writeOAMData(value uint8) {
	if p.oamAddress < 0x200 {
		if p.oamAddress%2 == 0 {
			p.oamWriteBuffer = value
			p.oamFirstWrite = false
		} else {
			p.oam[p.oamAddress-1] = p.oamWriteBuffer
			p.oam[p.oamAddress] = value
		}
	} else {
		idx := 0x200 + (p.oamAddress-0x200)%32
		p.oam[idx] = value
	}
	p.oamAddress = (p.oamAddress + 1) & 0x3FF
}

func (p *PPU) readOAMData() uint8 {
	var v uint8
	if int(p.oamAddress) < len(p.oam) {
		v = p.oam[p.oamAddress]
	}
	p.oamAddress = (p.oamAddress + 1) & 0x3FF
	return v
}

func (p *PPU) writeCGData(value uint8) {
	if !p.cgramLatchHi {
		p.cgramLatch = value
		p.cgramLatchHi = true
		return
	}
	lo := p.cgramLatch
	hi := value & 0x7F
	off := int(p.cgramAddress) * 2
	if off+1 < len(p.cgram) {
		p.cgram[off] = lo
		p.cgram[off+1] = hi
	}
	p.cgramAddress++
	p.cgramLatchHi = false
}

func (p *PPU) readCGData() uint8 {
	off := int(p.cgramAddress) * 2
	var v uint8
	if !p.cgramLatchHi {
		if off < len(p.cgram) {
			v = p.cgram[off]
		}
		p.cgramLatchHi = true
	} else {
		if off+1 < len(p.cgram) {
			v = p.cgram[off+1] & 0x7F
		}
		p.cgramLatchHi = false
		p.cgramAddress++
	}
	return v
}

func (p *PPU) readMPY(byteIdx int) uint8 {
	signExtendedB := int32(int8(uint8(p.m7B >> 8)))
	product := int32(p.m7A) * signExtendedB
	switch byteIdx {
	case 0:
		return uint8(product)
	case 1:
		return uint8(product >> 8)
	default:
		return uint8(product >> 16)
	}
}

func (p *PPU) latchHV() {
	p.hCounterLatched = uint16(p.cycle)
	p.vCounterLatched = uint16(p.scanline)
	p.hvLatched = true
}

func (p *PPU) readOPHCT() uint8 {
	if !p.hvLatched {
		p.latchHV()
	}
	return uint8(p.hCounterLatched)
}

func (p *PPU) readOPVCT() uint8 {
	if !p.hvLatched {
		p.latchHV()
	}
	return uint8(p.vCounterLatched)
}

func (p *PPU) readSTAT77() uint8 {
	var v uint8
	if p.frameOddEven {
		v |= 1 << 4
	}
	if p.ppu1OpenBus != 0 {
		v |= 1 << 6
	}
	p.hvLatched = false
	return v
}

func (p *PPU) readSTAT78() uint8 {
	v := uint8(0x03) // PPU1 version
	v |= uint8((p.hCounterLatched>>8)&1) << 6
	v |= uint8((p.vCounterLatched>>8)&1) << 7
	p.hvLatched = false
	return v
}
