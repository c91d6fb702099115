// synth.go - Synth lifecycle: New, Reset, WritePhone, GenerateSamples

package votrax

// Synth is a single Votrax SC-01A core instance. It owns its ROM bytes,
// all sequencer and interpolation state, all filter coefficients and
// histories, and leaks no shared mutable state to callers. A Synth value
// is not safe for concurrent use by multiple goroutines; wrapping one in a
// mutex for shared access is the caller's concern.
type Synth struct {
	rom         []byte
	mainClockHz uint32
	sclock      float64 // sample rate: mainClockHz / 18
	cclock      float64 // coefficient rate: mainClockHz / 36

	phone      uint8
	inflection uint8

	phonetick uint32
	ticks     uint32
	romEntry  romEntry
	romPause  bool

	curFa, curFc, curVa         uint32
	curF1, curF2, curF2q, curF3 uint32

	filtFa, filtFc, filtVa         uint32
	filtF1, filtF2, filtF2q, filtF3 uint32

	updateCounter uint32
	pitch         uint8
	closure       uint32
	curClosure    bool

	noise    uint16
	curNoise bool

	sampleCount uint64

	f1, f2v, f2n, f3, f4, fx, fn biquad
}

// New creates a Synth from a 512-byte ROM blob and an optional master
// clock (0 selects DefaultMainClockHz). It returns ErrBadROMSize if rom is
// not exactly 512 bytes. The returned Synth is already reset.
func New(rom []byte, mainClockHz uint32) (*Synth, error) {
	if len(rom) != romSizeBytes {
		return nil, ErrBadROMSize
	}
	if mainClockHz == 0 {
		mainClockHz = DefaultMainClockHz
	}

	s := &Synth{
		rom:         append([]byte(nil), rom...),
		mainClockHz: mainClockHz,
		sclock:      float64(mainClockHz) / sampleClockDivisor,
		cclock:      float64(mainClockHz) / coefficientClockDivisor,
	}
	s.Reset()
	return s, nil
}

// Reset zeroes all histories and counters, selects phone 0x3F (STOP),
// commits it, and forces a full filter rebuild.
func (s *Synth) Reset() {
	s.phone = 0x3F
	s.inflection = 0
	s.phonetick = 0
	s.ticks = 0

	s.curFa, s.curFc, s.curVa = 0, 0, 0
	s.curF1, s.curF2, s.curF2q, s.curF3 = 0, 0, 0, 0
	s.filtFa, s.filtFc, s.filtVa = 0, 0, 0
	s.filtF1, s.filtF2, s.filtF2q, s.filtF3 = 0, 0, 0, 0

	s.updateCounter = 0
	s.pitch = 0
	s.closure = 0
	s.curClosure = true

	s.noise = 0
	s.curNoise = false
	s.sampleCount = 0

	s.f1 = biquad{}
	s.f2v = biquad{}
	s.f2n = biquad{}
	s.f3 = biquad{}
	s.f4 = biquad{}
	s.fx = biquad{}
	s.fn = biquad{}

	s.phoneCommit()
	s.filtersCommit(true)
}

// SetInflection sets the 2-bit pitch-target modifier. It is never driven
// by the reference hardware firmware but is kept mutable for callers that
// want register-accurate pitch control.
func (s *Synth) SetInflection(v uint8) {
	s.inflection = v & 0x03
}

// WritePhone latches a new 6-bit phone code and commits it immediately.
// This is a deliberate simplification of the real chip's asynchronous,
// timer-scheduled commit (see SPEC_FULL.md §9).
func (s *Synth) WritePhone(phone uint8) {
	s.phone = phone & 0x3F
	s.phoneCommit()
}

// CurrentPhoneDurationSamples returns the number of output samples the
// currently-committed phone occupies: 32 * (rom_duration*4 + 1).
func (s *Synth) CurrentPhoneDurationSamples() uint64 {
	return 32 * (uint64(s.romEntry.duration)*4 + 1)
}

// SampleRate returns the output sample rate in Hz: mainClockHz / 18.
func (s *Synth) SampleRate() float64 {
	return s.sclock
}

// GenerateSamples produces an ordered buffer of n samples. chip_update
// fires on every odd sample count (once per two output samples); within a
// sample, chip_update always runs before analog_calc, so any coefficient
// rebuild it triggers is visible to that sample's analog_calc.
func (s *Synth) GenerateSamples(n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s.sampleCount++
		if s.sampleCount&1 == 1 {
			s.chipUpdate()
		}
		out[i] = float32(s.analogCalc())
	}
	return out
}
