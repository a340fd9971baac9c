package snapshot

import (
	"github.com/go-faster/jx"

	"snes816/ppu"
)

func encodeU8Array4(e *jx.Encoder, a [4]uint8) {
	e.ArrStart()
	for i, v := range a {
		if i > 0 {
		}
		e.UInt8(v)
	}
	e.ArrEnd()
}

func decodeU8Array4(d *jx.Decoder) ([4]uint8, error) {
	var out [4]uint8
	n := 0
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.UInt8()
		if err != nil {
			return err
		}
		if n < len(out) {
			out[n] = v
		}
		n++
		return nil
	})
	if err == nil && n != len(out) {
		err = ErrBadSnapshot
	}
	return out, err
}

func encodeU16Array4(e *jx.Encoder, a [4]uint16) {
	e.ArrStart()
	for i, v := range a {
		if i > 0 {
		}
		e.UInt16(v)
	}
	e.ArrEnd()
}

func decodeU16Array4(d *jx.Decoder) ([4]uint16, error) {
	var out [4]uint16
	n := 0
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.UInt16()
		if err != nil {
			return err
		}
		if n < len(out) {
			out[n] = v
		}
		n++
		return nil
	})
	if err == nil && n != len(out) {
		err = ErrBadSnapshot
	}
	return out, err
}

func encodeBoolArray4(e *jx.Encoder, a [4]bool) {
	e.ArrStart()
	for i, v := range a {
		if i > 0 {
		}
		e.Bool(v)
	}
	e.ArrEnd()
}

func decodeBoolArray4(d *jx.Decoder) ([4]bool, error) {
	var out [4]bool
	n := 0
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Bool()
		if err != nil {
			return err
		}
		if n < len(out) {
			out[n] = v
		}
		n++
		return nil
	})
	if err == nil && n != len(out) {
		err = ErrBadSnapshot
	}
	return out, err
}

func encodePPUState(e *jx.Encoder, p ppu.State) {
	e.ObjStart()

	e.FieldStart("vram")
	e.Base64(p.VRAM[:])
	e.FieldStart("cgram")
	e.Base64(p.CGRAM[:])
	e.FieldStart("oam")
	e.Base64(p.OAM[:])

	e.FieldStart("vramAddress")
	e.UInt16(p.VRAMAddress)
	e.FieldStart("vramIncrement")
	e.UInt16(p.VRAMIncrement)
	e.FieldStart("vramRemapMode")
	e.UInt8(p.VRAMRemapMode)
	e.FieldStart("vramReadBuffer")
	e.UInt16(p.VRAMReadBuffer)

	e.FieldStart("oamAddress")
	e.UInt16(p.OAMAddress)
	e.FieldStart("oamFirstWrite")
	e.Bool(p.OAMFirstWrite)
	e.FieldStart("oamWriteBuffer")
	e.UInt8(p.OAMWriteBuffer)

	e.FieldStart("cgramAddress")
	e.UInt8(p.CGRAMAddress)
	e.FieldStart("cgramLatch")
	e.UInt8(p.CGRAMLatch)
	e.FieldStart("cgramLatchHi")
	e.Bool(p.CGRAMLatchHi)

	e.FieldStart("m7a")
	e.Int16(p.M7A)
	e.FieldStart("m7b")
	e.Int16(p.M7B)
	e.FieldStart("m7c")
	e.Int16(p.M7C)
	e.FieldStart("m7d")
	e.Int16(p.M7D)
	e.FieldStart("m7x")
	e.Int16(p.M7X)
	e.FieldStart("m7y")
	e.Int16(p.M7Y)
	e.FieldStart("m7PrevWrite")
	e.UInt8(p.M7PrevWrite)
	e.FieldStart("m7Flip")
	e.UInt8(p.M7Flip)
	e.FieldStart("m7OutsideFill")
	e.Bool(p.M7OutsideFill)
	e.FieldStart("m7Repeat")
	e.Bool(p.M7Repeat)

	e.FieldStart("bgPrevWrite")
	encodeU8Array4(e, p.BGPrevWrite)
	e.FieldStart("bgTilemapBase")
	encodeU16Array4(e, p.BGTilemapBase)
	e.FieldStart("bgTilemapSize")
	encodeU8Array4(e, p.BGTilemapSize)
	e.FieldStart("bgTileDataBase")
	encodeU16Array4(e, p.BGTileDataBase)
	e.FieldStart("bgTile16x16")
	encodeBoolArray4(e, p.BGTile16x16)
	e.FieldStart("bgHScroll")
	encodeU16Array4(e, p.BGHScroll)
	e.FieldStart("bgVScroll")
	encodeU16Array4(e, p.BGVScroll)
	e.FieldStart("bgEnabled")
	encodeBoolArray4(e, p.BGEnabled)
	e.FieldStart("objEnabled")
	e.Bool(p.ObjEnabled)

	e.FieldStart("screenMode")
	e.UInt8(p.ScreenMode)
	e.FieldStart("brightness")
	e.UInt8(p.Brightness)
	e.FieldStart("forceBlank")
	e.Bool(p.ForceBlank)

	e.FieldStart("mosaicSize")
	e.UInt8(p.MosaicSize)
	e.FieldStart("mosaicBG")
	encodeBoolArray4(e, p.MosaicBG)

	e.FieldStart("mainEnable")
	e.UInt8(p.MainEnable)
	e.FieldStart("subEnable")
	e.UInt8(p.SubEnable)

	e.FieldStart("objSizeIndex")
	e.UInt8(p.ObjSizeIndex)
	e.FieldStart("objNameBase")
	e.UInt16(p.ObjNameBase)
	e.FieldStart("objNameSelect")
	e.UInt8(p.ObjNameSelect)

	e.FieldStart("hCounterLatched")
	e.UInt16(p.HCounterLatched)
	e.FieldStart("vCounterLatched")
	e.UInt16(p.VCounterLatched)
	e.FieldStart("hvLatched")
	e.Bool(p.HVLatched)

	e.FieldStart("ppu1OpenBus")
	e.UInt8(p.PPU1OpenBus)
	e.FieldStart("ppu2OpenBus")
	e.UInt8(p.PPU2OpenBus)

	e.FieldStart("frameOddEven")
	e.Bool(p.FrameOddEven)
	e.FieldStart("inVBlank")
	e.Bool(p.InVBlank)
	e.FieldStart("inHBlank")
	e.Bool(p.InHBlank)
	e.FieldStart("scanline")
	e.Int(p.Scanline)
	e.FieldStart("cycle")
	e.Int(p.Cycle)
	e.FieldStart("frameCount")
	e.UInt64(p.FrameCount)

	e.ObjEnd()
}

func decodePPUState(d *jx.Decoder) (ppu.State, error) {
	var s ppu.State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "vram":
			var buf []byte
			buf, err = d.Base64()
			if err == nil {
				if len(buf) != len(s.VRAM) {
					err = ErrBadSnapshot
				} else {
					copy(s.VRAM[:], buf)
				}
			}
		case "cgram":
			var buf []byte
			buf, err = d.Base64()
			if err == nil {
				if len(buf) != len(s.CGRAM) {
					err = ErrBadSnapshot
				} else {
					copy(s.CGRAM[:], buf)
				}
			}
		case "oam":
			var buf []byte
			buf, err = d.Base64()
			if err == nil {
				if len(buf) != len(s.OAM) {
					err = ErrBadSnapshot
				} else {
					copy(s.OAM[:], buf)
				}
			}
		case "vramAddress":
			s.VRAMAddress, err = d.UInt16()
		case "vramIncrement":
			s.VRAMIncrement, err = d.UInt16()
		case "vramRemapMode":
			s.VRAMRemapMode, err = d.UInt8()
		case "vramReadBuffer":
			s.VRAMReadBuffer, err = d.UInt16()
		case "oamAddress":
			s.OAMAddress, err = d.UInt16()
		case "oamFirstWrite":
			s.OAMFirstWrite, err = d.Bool()
		case "oamWriteBuffer":
			s.OAMWriteBuffer, err = d.UInt8()
		case "cgramAddress":
			s.CGRAMAddress, err = d.UInt8()
		case "cgramLatch":
			s.CGRAMLatch, err = d.UInt8()
		case "cgramLatchHi":
			s.CGRAMLatchHi, err = d.Bool()
		case "m7a":
			s.M7A, err = d.Int16()
		case "m7b":
			s.M7B, err = d.Int16()
		case "m7c":
			s.M7C, err = d.Int16()
		case "m7d":
			s.M7D, err = d.Int16()
		case "m7x":
			s.M7X, err = d.Int16()
		case "m7y":
			s.M7Y, err = d.Int16()
		case "m7PrevWrite":
			s.M7PrevWrite, err = d.UInt8()
		case "m7Flip":
			s.M7Flip, err = d.UInt8()
		case "m7OutsideFill":
			s.M7OutsideFill, err = d.Bool()
		case "m7Repeat":
			s.M7Repeat, err = d.Bool()
		case "bgPrevWrite":
			s.BGPrevWrite, err = decodeU8Array4(d)
		case "bgTilemapBase":
			s.BGTilemapBase, err = decodeU16Array4(d)
		case "bgTilemapSize":
			s.BGTilemapSize, err = decodeU8Array4(d)
		case "bgTileDataBase":
			s.BGTileDataBase, err = decodeU16Array4(d)
		case "bgTile16x16":
			s.BGTile16x16, err = decodeBoolArray4(d)
		case "bgHScroll":
			s.BGHScroll, err = decodeU16Array4(d)
		case "bgVScroll":
			s.BGVScroll, err = decodeU16Array4(d)
		case "bgEnabled":
			s.BGEnabled, err = decodeBoolArray4(d)
		case "objEnabled":
			s.ObjEnabled, err = d.Bool()
		case "screenMode":
			s.ScreenMode, err = d.UInt8()
		case "brightness":
			s.Brightness, err = d.UInt8()
		case "forceBlank":
			s.ForceBlank, err = d.Bool()
		case "mosaicSize":
			s.MosaicSize, err = d.UInt8()
		case "mosaicBG":
			s.MosaicBG, err = decodeBoolArray4(d)
		case "mainEnable":
			s.MainEnable, err = d.UInt8()
		case "subEnable":
			s.SubEnable, err = d.UInt8()
		case "objSizeIndex":
			s.ObjSizeIndex, err = d.UInt8()
		case "objNameBase":
			s.ObjNameBase, err = d.UInt16()
		case "objNameSelect":
			s.ObjNameSelect, err = d.UInt8()
		case "hCounterLatched":
			s.HCounterLatched, err = d.UInt16()
		case "vCounterLatched":
			s.VCounterLatched, err = d.UInt16()
		case "hvLatched":
			s.HVLatched, err = d.Bool()
		case "ppu1OpenBus":
			s.PPU1OpenBus, err = d.UInt8()
		case "ppu2OpenBus":
			s.PPU2OpenBus, err = d.UInt8()
		case "frameOddEven":
			s.FrameOddEven, err = d.Bool()
		case "inVBlank":
			s.InVBlank, err = d.Bool()
		case "inHBlank":
			s.InHBlank, err = d.Bool()
		case "scanline":
			s.Scanline, err = d.Int()
		case "cycle":
			s.Cycle, err = d.Int()
		case "frameCount":
			s.FrameCount, err = d.UInt64()
		default:
			err = d.Skip()
		}
		return err
	})
	return s, err
}
