package apu

import "github.com/arl/blip"

const (
	masterClockRate   = 21477000
	outputSampleRate  = 32000
	maxSamplesPerTick = outputSampleRate/60*4 + 64
)

// Mixer band-limits a single placeholder square waveform, toggled by the
// APU's timer 2 rollover, into a stereo blip.Buffer pair. There is no
// DSP or SPC700 sample generator behind it; it exists to give the
// arl/blip dependency a concrete, exercised home.
type Mixer struct {
	left, right *blip.Buffer

	waveform   int16
	prevOutput int16
}

func NewMixer() *Mixer {
	m := &Mixer{
		left:  blip.NewBuffer(maxSamplesPerTick),
		right: blip.NewBuffer(maxSamplesPerTick),
	}
	m.left.SetRates(masterClockRate, outputSampleRate)
	m.right.SetRates(masterClockRate, outputSampleRate)
	return m
}

func (m *Mixer) Reset() {
	m.left.Clear()
	m.right.Clear()
	m.waveform = 0
	m.prevOutput = 0
}

// ToggleWaveform flips the placeholder square wave's sign at master-clock
// time `at` and records the resulting delta into both channels.
func (m *Mixer) ToggleWaveform(at uint32) {
	if m.waveform == 0 {
		m.waveform = 4000
	} else {
		m.waveform = -m.waveform
	}
	delta := int32(m.waveform - m.prevOutput)
	m.prevOutput = m.waveform
	m.left.AddDelta(uint64(at), delta)
	m.right.AddDelta(uint64(at), delta)
}

// EndFrame flushes buffered deltas up to master-clock time `at`, matching
// the System-driven frame cadence (one master-clock frame = one call).
func (m *Mixer) EndFrame(at uint32) {
	m.left.EndFrame(int(at))
	m.right.EndFrame(int(at))
}

// ReadSamples drains interleaved stereo int16 pairs into out, returning
// the number of frames (pairs) written.
func (m *Mixer) ReadSamples(out []int16) int {
	n := m.left.ReadSamples(out, len(out)/2, blip.Stereo)
	m.right.ReadSamples(out[1:], len(out)/2, blip.Stereo)
	return n
}
