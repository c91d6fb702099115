// constants.go - clock rates, capacitor tables and filter coefficient targets

package votrax

// DefaultMainClockHz is the SC-01A's nominal master clock, used when New is
// called with mainClockHz == 0.
const DefaultMainClockHz = 720000

// Clock divisors: sample rate is main/18 (~40 kHz), coefficient (filter
// design) rate is main/36.
const (
	sampleClockDivisor      = 18.0
	coefficientClockDivisor = 36.0
)

// Capacitor tables (LSB-first bit -> femtofarad value) used by
// filters_commit to turn quantized control registers into capacitor sums
// for the filter designer. F2's voice table has 5 entries because filt_f2
// is quantized with a 3-bit shift (5 significant bits) rather than 4 like
// its siblings — see the Open Questions note in SPEC_FULL.md.
var (
	capsF1  = [4]float64{2546, 4973, 9861, 19724}
	capsF2  = [5]float64{833, 1663, 3164, 6327, 12654}
	capsF2Q = [4]float64{1390, 2965, 5875, 11297}
	capsF3  = [4]float64{2226, 4485, 9056, 18111}
)

// Standard-biquad coefficient targets: (c1t, c1b, c2t, c2b, c3, c4). The
// capacitor-bank contribution is added to c3 (and, for F2, also to c2t)
// at commit time by the caller.
type standardFilterParams struct {
	c1t, c1b, c2t, c2b, c3, c4 float64
}

var (
	f1Params = standardFilterParams{11247, 11797, 949, 52067, 2280, 166272}
	f2Params = standardFilterParams{24840, 29154, 829, 38180, 2352, 34270}
	f3Params = standardFilterParams{0, 17594, 868, 18828, 8480, 50019}
	f4Params = standardFilterParams{0, 28810, 1165, 21457, 8558, 7289}
)

// Lowpass (Fx) and noise-shaper (Fn) targets never depend on the capacitor
// banks, so they are only rebuilt on a forced commit.
const (
	fxC1t = 1122.0
	fxC1b = 23131.0

	fnC1  = 15500.0
	fnC2t = 14854.0
	fnC2b = 8450.0
	fnC3  = 9523.0
	fnC4  = 14083.0
)

// Glottal wave: a 9-point piecewise approximation of one vocal-fold pulse,
// indexed by pitch>>3. Indices 9 and above (pitch>>3 out of range) are
// silence.
var glottalWave = [9]float64{
	0, -4.0 / 7.0, 7.0 / 7.0, 6.0 / 7.0, 5.0 / 7.0, 4.0 / 7.0, 3.0 / 7.0, 2.0 / 7.0, 1.0 / 7.0,
}
