package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"snes816/system"
)

func makeTestROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x7FFC], rom[0x7FFD] = 0x00, 0x80
	rom[0] = 0xA9 // LDA #$01
	rom[1] = 0x01
	rom[2] = 0x8D // STA $2100
	rom[3] = 0x00
	rom[4] = 0x21
	rom[5] = 0x80 // BRA back to $8000
	rom[6] = 0xF9
	return rom
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	s := system.New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	s.RunFrame()

	snap := Capture(s)

	s2 := system.New()
	if err := s2.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s2.PowerOn()
	Restore(s2, snap)

	if got := Capture(s2); !cmp.Equal(got, snap) {
		t.Fatalf("restored snapshot differs from captured one:\n%s", cmp.Diff(snap, got))
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := system.New()
	if err := s.LoadROM(makeTestROM()); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	s.PowerOn()
	s.RunFrame()

	snap := Capture(s)

	data, err := snap.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Snapshot
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if !cmp.Equal(got, snap) {
		t.Fatalf("JSON round trip differs:\n%s", cmp.Diff(snap, got))
	}
}

func TestUnmarshalRejectsTruncatedBlob(t *testing.T) {
	data := []byte(`{"version":1,"totalCycles":0,"cpu":{},"bus":{"wram":"AAAA"},"ppu":{},"apu":{}}`)
	var got Snapshot
	if err := got.UnmarshalJSON(data); err != ErrBadSnapshot {
		t.Fatalf("UnmarshalJSON error = %v, want ErrBadSnapshot", err)
	}
}
