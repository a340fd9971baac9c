package apu

import "testing"

func TestMailboxRoundTrip(t *testing.T) {
	a := New()
	a.WritePort(0, 0x42)
	if got := a.cpuToApuPorts[0]; got != 0x42 {
		t.Fatalf("cpuToApuPorts[0] = %#02x, want $42", got)
	}
	a.reply(0, 0x7E)
	if got := a.ReadPort(0); got != 0x7E {
		t.Fatalf("ReadPort(0) = %#02x, want $7E", got)
	}
}

func TestWritePortOutOfRangeIsIgnored(t *testing.T) {
	a := New()
	a.WritePort(9, 0xFF)
	if a.ReadPort(9) != 0xFF {
		t.Fatalf("out-of-range ReadPort should return $FF open-bus value")
	}
	if a.cpuToApuPorts != [numPorts]uint8{} {
		t.Fatalf("out-of-range WritePort changed the mailbox: %v", a.cpuToApuPorts)
	}
}

func TestTimer2RolloverAfter16000Steps(t *testing.T) {
	a := New()
	for i := 0; i < timer2Divisor; i++ {
		a.Step()
	}
	if a.timer2Value != 1 {
		t.Fatalf("timer2Value = %d, want 1 after %d steps", a.timer2Value, timer2Divisor)
	}
}

func TestTimer01RolloverEvery125Steps(t *testing.T) {
	a := New()
	for i := 0; i < timer01Divisor; i++ {
		a.Step()
	}
	if a.timer0Value != 1 || a.timer1Value != 1 {
		t.Fatalf("timer0/1 values = %d/%d, want 1/1", a.timer0Value, a.timer1Value)
	}
}

func TestResetClearsMailboxAndTimers(t *testing.T) {
	a := New()
	a.WritePort(1, 0x55)
	a.reply(1, 0x66)
	for i := 0; i < timer01Divisor; i++ {
		a.Step()
	}
	a.Reset()
	if a.cpuToApuPorts[1] != 0 || a.apuToCpuPorts[1] != 0 {
		t.Fatal("expected mailbox cleared after Reset")
	}
	if a.timer0Value != 0 {
		t.Fatal("expected timer0Value cleared after Reset")
	}
}
