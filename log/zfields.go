package log

import (
	"fmt"
	"strconv"
)

// EntryZ is the allocation-light counterpart of Entry: Module.DebugZ and
// friends return nil when the module/level pair is disabled, and every
// method below is a no-op on a nil receiver, so a disabled call chain
// such as:
//
//	log.ModCPU.DebugZ("fetch").Hex24("pc", pc).End()
//
// costs one nil check per call and never touches logrus or the field
// union below.
type EntryZ struct {
	mod    Module
	lvl    Level
	msg    string
	fields []zfield
}

type zfieldKind int

const (
	zkString zfieldKind = iota
	zkHex8
	zkHex16
	zkHex24
	zkHex32
	zkUint
	zkInt
	zkBool
)

type zfield struct {
	key  string
	kind zfieldKind
	u    uint64
	s    string
	b    bool
}

func newEntryZ(mod Module, lvl Level, msg string) *EntryZ {
	return &EntryZ{mod: mod, lvl: lvl, msg: msg}
}

func (e *EntryZ) add(f zfield) *EntryZ {
	if e == nil {
		return nil
	}
	e.fields = append(e.fields, f)
	return e
}

func (e *EntryZ) Str(key, val string) *EntryZ { return e.add(zfield{key: key, kind: zkString, s: val}) }
func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return e.add(zfield{key: key, kind: zkHex8, u: uint64(val)})
}
func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return e.add(zfield{key: key, kind: zkHex16, u: uint64(val)})
}
func (e *EntryZ) Hex24(key string, val uint32) *EntryZ {
	return e.add(zfield{key: key, kind: zkHex24, u: uint64(val)})
}
func (e *EntryZ) Hex32(key string, val uint32) *EntryZ {
	return e.add(zfield{key: key, kind: zkHex32, u: uint64(val)})
}
func (e *EntryZ) Uint(key string, val uint64) *EntryZ {
	return e.add(zfield{key: key, kind: zkUint, u: val})
}
func (e *EntryZ) Int(key string, val int64) *EntryZ {
	return e.add(zfield{key: key, kind: zkInt, u: uint64(val)})
}
func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	return e.add(zfield{key: key, kind: zkBool, b: val})
}

func (f zfield) value() string {
	switch f.kind {
	case zkString:
		return f.s
	case zkHex8:
		return fmt.Sprintf("%02x", uint8(f.u))
	case zkHex16:
		return fmt.Sprintf("%04x", uint16(f.u))
	case zkHex24:
		return fmt.Sprintf("%06x", f.u&0xFFFFFF)
	case zkHex32:
		return fmt.Sprintf("%08x", uint32(f.u))
	case zkUint:
		return strconv.FormatUint(f.u, 10)
	case zkInt:
		return strconv.FormatInt(int64(f.u), 10)
	case zkBool:
		if f.b {
			return "true"
		}
		return "false"
	}
	return ""
}

// End flushes the entry through the logrus-backed Entry. Calling End on a
// nil *EntryZ is a no-op.
func (e *EntryZ) End() {
	if e == nil {
		return
	}
	entry := Entry{mod: e.mod}
	if len(e.fields) > 0 {
		fields := make(Fields, len(e.fields))
		for _, f := range e.fields {
			fields[f.key] = f.value()
		}
		entry = entry.WithFields(fields)
	}
	switch e.lvl {
	case DebugLevel:
		entry.Debugf(e.msg)
	case InfoLevel:
		entry.Infof(e.msg)
	case WarnLevel:
		entry.Warnf(e.msg)
	case ErrorLevel:
		entry.Errorf(e.msg)
	case FatalLevel:
		entry.Fatalf(e.msg)
	default:
		entry.Infof(e.msg)
	}
}
