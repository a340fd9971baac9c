package snapshot

import (
	"errors"

	"github.com/go-faster/jx"

	"snes816/apu"
	"snes816/bus"
	"snes816/cpu"
)

// MarshalJSON writes a self-describing JSON object: every component is
// a named field, every byte array a base64 blob, so the wire format
// survives a field being added or reordered later.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	e.ObjStart()

	e.FieldStart("version")
	e.Int(s.Version)
	e.FieldStart("totalCycles")
	e.UInt64(s.TotalCycles)

	e.FieldStart("cpu")
	encodeCPUState(&e, s.CPU)

	e.FieldStart("bus")
	encodeBusState(&e, s.Bus)

	e.FieldStart("ppu")
	encodePPUState(&e, s.PPU)

	e.FieldStart("apu")
	encodeAPUState(&e, s.APU)

	e.ObjEnd()
	return e.Bytes(), nil
}

// UnmarshalJSON decodes a Snapshot previously produced by MarshalJSON.
// Any byte blob or array whose decoded length does not match its
// destination's fixed size is reported as ErrBadSnapshot.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "version":
			v, err := d.Int()
			if err != nil {
				return err
			}
			s.Version = v
		case "totalCycles":
			v, err := d.UInt64()
			if err != nil {
				return err
			}
			s.TotalCycles = v
		case "cpu":
			v, err := decodeCPUState(d)
			if err != nil {
				return err
			}
			s.CPU = v
		case "bus":
			v, err := decodeBusState(d)
			if err != nil {
				return err
			}
			s.Bus = v
		case "ppu":
			v, err := decodePPUState(d)
			if err != nil {
				return err
			}
			s.PPU = v
		case "apu":
			v, err := decodeAPUState(d)
			if err != nil {
				return err
			}
			s.APU = v
		default:
			return d.Skip()
		}
		return nil
	})
	if errors.Is(err, ErrBadSnapshot) {
		return ErrBadSnapshot
	}
	return err
}

func encodeCPUState(e *jx.Encoder, c cpu.State) {
	e.ObjStart()
	e.FieldStart("a")
	e.UInt16(c.A)
	e.FieldStart("x")
	e.UInt16(c.X)
	e.FieldStart("y")
	e.UInt16(c.Y)
	e.FieldStart("s")
	e.UInt16(c.S)
	e.FieldStart("d")
	e.UInt16(c.D)
	e.FieldStart("db")
	e.UInt8(c.DB)
	e.FieldStart("pb")
	e.UInt8(c.PB)
	e.FieldStart("pc")
	e.UInt16(c.PC)
	e.FieldStart("p")
	e.UInt8(c.P)
	e.FieldStart("e")
	e.Bool(c.E)
	e.FieldStart("cycles")
	e.Int64(c.Cycles)
	e.FieldStart("nmiPending")
	e.Bool(c.NMIPending)
	e.FieldStart("irqLine")
	e.Bool(c.IRQLine)
	e.ObjEnd()
}

func decodeCPUState(d *jx.Decoder) (cpu.State, error) {
	var s cpu.State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "a":
			s.A, err = d.UInt16()
		case "x":
			s.X, err = d.UInt16()
		case "y":
			s.Y, err = d.UInt16()
		case "s":
			s.S, err = d.UInt16()
		case "d":
			s.D, err = d.UInt16()
		case "db":
			s.DB, err = d.UInt8()
		case "pb":
			s.PB, err = d.UInt8()
		case "pc":
			s.PC, err = d.UInt16()
		case "p":
			s.P, err = d.UInt8()
		case "e":
			s.E, err = d.Bool()
		case "cycles":
			s.Cycles, err = d.Int64()
		case "nmiPending":
			s.NMIPending, err = d.Bool()
		case "irqLine":
			s.IRQLine, err = d.Bool()
		default:
			err = d.Skip()
		}
		return err
	})
	return s, err
}

func encodeBusState(e *jx.Encoder, b bus.State) {
	e.ObjStart()
	e.FieldStart("wram")
	e.Base64(b.WRAM[:])
	e.FieldStart("sram")
	e.Base64(b.SRAM[:])
	e.FieldStart("ioShadow")
	e.Base64(b.IOShadow[:])
	e.ObjEnd()
}

func decodeBusState(d *jx.Decoder) (bus.State, error) {
	var s bus.State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "wram":
			buf, err := d.Base64()
			if err != nil {
				return err
			}
			if len(buf) != len(s.WRAM) {
				return ErrBadSnapshot
			}
			copy(s.WRAM[:], buf)
		case "sram":
			buf, err := d.Base64()
			if err != nil {
				return err
			}
			if len(buf) != len(s.SRAM) {
				return ErrBadSnapshot
			}
			copy(s.SRAM[:], buf)
		case "ioShadow":
			buf, err := d.Base64()
			if err != nil {
				return err
			}
			if len(buf) != len(s.IOShadow) {
				return ErrBadSnapshot
			}
			copy(s.IOShadow[:], buf)
		default:
			return d.Skip()
		}
		return nil
	})
	return s, err
}

func encodeAPUState(e *jx.Encoder, a apu.State) {
	e.ObjStart()
	e.FieldStart("cpuToApuPorts")
	e.Base64(a.CPUToAPUPorts[:])
	e.FieldStart("apuToCpuPorts")
	e.Base64(a.APUToCPUPorts[:])
	e.FieldStart("cycle")
	e.Int64(a.Cycle)
	e.FieldStart("timer0Counter")
	e.Int(a.Timer0Counter)
	e.FieldStart("timer1Counter")
	e.Int(a.Timer1Counter)
	e.FieldStart("timer2Counter")
	e.Int(a.Timer2Counter)
	e.FieldStart("timer0Value")
	e.UInt8(a.Timer0Value)
	e.FieldStart("timer1Value")
	e.UInt8(a.Timer1Value)
	e.FieldStart("timer2Value")
	e.UInt8(a.Timer2Value)
	e.ObjEnd()
}

func decodeAPUState(d *jx.Decoder) (apu.State, error) {
	var s apu.State
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "cpuToApuPorts":
			buf, err := d.Base64()
			if err != nil {
				return err
			}
			if len(buf) != len(s.CPUToAPUPorts) {
				return ErrBadSnapshot
			}
			copy(s.CPUToAPUPorts[:], buf)
		case "apuToCpuPorts":
			buf, err := d.Base64()
			if err != nil {
				return err
			}
			if len(buf) != len(s.APUToCPUPorts) {
				return ErrBadSnapshot
			}
			copy(s.APUToCPUPorts[:], buf)
		case "cycle":
			v, err := d.Int64()
			if err != nil {
				return err
			}
			s.Cycle = v
		case "timer0Counter":
			v, err := d.Int()
			if err != nil {
				return err
			}
			s.Timer0Counter = v
		case "timer1Counter":
			v, err := d.Int()
			if err != nil {
				return err
			}
			s.Timer1Counter = v
		case "timer2Counter":
			v, err := d.Int()
			if err != nil {
				return err
			}
			s.Timer2Counter = v
		case "timer0Value":
			v, err := d.UInt8()
			if err != nil {
				return err
			}
			s.Timer0Value = v
		case "timer1Value":
			v, err := d.UInt8()
			if err != nil {
				return err
			}
			s.Timer1Value = v
		case "timer2Value":
			v, err := d.UInt8()
			if err != nil {
				return err
			}
			s.Timer2Value = v
		default:
			return d.Skip()
		}
		return nil
	})
	return s, err
}
