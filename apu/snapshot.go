package apu

// State is the neutral snapshot record for the APU mailbox and timers.
// The mixer's blip buffers are excluded deliberately: they hold no
// emulated machine state, only in-flight resampling history that a
// restored session can simply restart clean.
type State struct {
	CPUToAPUPorts [numPorts]uint8
	APUToCPUPorts [numPorts]uint8

	Cycle int64

	Timer0Counter, Timer1Counter int
	Timer2Counter                int
	Timer0Value, Timer1Value     uint8
	Timer2Value                  uint8
}

func (a *APU) State() State {
	return State{
		CPUToAPUPorts: a.cpuToApuPorts,
		APUToCPUPorts: a.apuToCpuPorts,
		Cycle:         a.cycle,
		Timer0Counter: a.timer0Counter,
		Timer1Counter: a.timer1Counter,
		Timer2Counter: a.timer2Counter,
		Timer0Value:   a.timer0Value,
		Timer1Value:   a.timer1Value,
		Timer2Value:   a.timer2Value,
	}
}

func (a *APU) Restore(s State) {
	a.cpuToApuPorts = s.CPUToAPUPorts
	a.apuToCpuPorts = s.APUToCPUPorts
	a.cycle = s.Cycle
	a.timer0Counter, a.timer1Counter, a.timer2Counter = s.Timer0Counter, s.Timer1Counter, s.Timer2Counter
	a.timer0Value, a.timer1Value, a.timer2Value = s.Timer0Value, s.Timer1Value, s.Timer2Value
	a.mixer.Reset()
}
