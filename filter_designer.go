// filter_designer.go - bilinear-transform biquad design from capacitor sums

package votrax

import "math"

// buildStandardFilter computes the 4-tap coefficients for a standard
// formant biquad (F1, F2 voice, F3, F4) from its six analog-domain
// parameters, via the pre-warped bilinear transform described in
// SPEC_FULL.md §4.C.
func buildStandardFilter(f *biquad, cclock, sclock float64, p standardFilterParams) {
	k0 := p.c1t / (cclock * p.c1b)
	k1 := p.c4 * p.c2t / (cclock * p.c1b * p.c3)
	k2 := p.c4 * p.c2b / (cclock * cclock * p.c1b * p.c3)

	fpeak := math.Sqrt(math.Abs(k0*k1-k2)) / (2 * math.Pi * k2)
	zc := 2 * math.Pi * fpeak / math.Tan(math.Pi*fpeak/sclock)

	m0 := zc * k0
	m1 := zc * k1
	m2 := zc * zc * k2

	f.kind = kindStandard4
	f.a[0] = 1 + m0
	f.a[1] = 3 + m0
	f.a[2] = 3 - m0
	f.a[3] = 1 - m0
	f.b[0] = 1 + m1 + m2
	f.b[1] = 3 + m1 - m2
	f.b[2] = 3 - m1 - m2
	f.b[3] = 1 - m1 + m2
}

// buildLowpassFilter computes the fixed 2-tap output lowpass (Fx).
func buildLowpassFilter(f *biquad, cclock, sclock, c1t, c1b float64) {
	k := (c1b / (cclock * c1t)) * (150.0 / 4000.0)
	fpeak := 1.0 / (2 * math.Pi * k)
	zc := 2 * math.Pi * fpeak / math.Tan(math.Pi*fpeak/sclock)
	m := zc * k

	f.kind = kindLowpass2
	f.a[0] = 1
	f.b[0] = 1 + m
	f.b[1] = 1 - m
}

// buildNoiseShaperFilter computes the 3-tap noise-shaping filter (Fn).
func buildNoiseShaperFilter(f *biquad, cclock, sclock, c1, c2t, c2b, c3, c4 float64) {
	k0 := c2t * c3 * c2b / c4
	k1 := c2t * (cclock * c2b)
	k2 := c1 * c2t * c3 / (cclock * c4)

	fpeak := math.Sqrt(1.0/k2) / (2 * math.Pi)
	zc := 2 * math.Pi * fpeak / math.Tan(math.Pi*fpeak/sclock)

	m0 := zc * k0
	m1 := zc * k1
	m2 := zc * zc * k2

	f.kind = kindShaper3
	f.a[0] = m0
	f.a[1] = 0
	f.a[2] = -m0
	f.b[0] = 1 + m1 + m2
	f.b[1] = 2 - 2*m2
	f.b[2] = 1 - m1 + m2
}

// buildInjectionFilter computes F2's noise-injection filter, then
// neutralizes it to a=[0,0], b=[1,0]. The active form is computed first
// (matching the reference derivation) purely so the coefficients are
// visible next to the neutralization; SPEC_FULL.md and the design notes
// in spec.md §9 are explicit that implementers must not substitute the
// computed form back in — doing so destabilizes F2-noise.
func buildInjectionFilter(f *biquad, cclock, sclock, c1b, c2t, c2b, c3, c4 float64) {
	k0 := cclock * c2t
	k1 := cclock * (c1b*c3/c2t - c2t)
	k2 := c2b

	zc := 2 * sclock
	m := zc * k2

	// Active-form coefficients, per the derivation in the reference
	// implementation. Left in place, then immediately overwritten below —
	// see the function comment.
	f.a[0] = k0 + m
	f.a[1] = k0 - m
	f.b[0] = k1 - m
	f.b[1] = k1 + m

	f.kind = kindNeutralInjection2
	f.a[0] = 0
	f.a[1] = 0
	f.b[0] = 1
	f.b[1] = 0
}

// filtersCommit quantizes the interpolated registers and rebuilds whichever
// filter coefficients depend on a register that changed since the last
// commit. When force is true every filter is rebuilt unconditionally,
// which is how Reset performs its initial build and how F4/Fx/Fn (which
// never depend on a capacitor bank) are ever built at all.
//
// filt_f2 is quantized with a 3-bit shift (5 significant bits, matching
// the 5-entry F2 capacitor table) while every other filt_* register uses a
// 4-bit shift. This asymmetry is in the reference implementation and is
// preserved deliberately — see the Open Questions note in SPEC_FULL.md.
func (s *Synth) filtersCommit(force bool) {
	s.filtFa = s.curFa >> 4
	s.filtFc = s.curFc >> 4
	s.filtVa = s.curVa >> 4

	updateF1 := force
	if s.filtF1 != s.curF1>>4 {
		s.filtF1 = s.curF1 >> 4
		updateF1 = true
	}
	if updateF1 {
		caps := bitsToCaps(uint64(s.filtF1), capsF1[:])
		p := f1Params
		p.c3 += caps
		buildStandardFilter(&s.f1, s.cclock, s.sclock, p)
	}

	updateF2 := force
	if s.filtF2 != s.curF2>>3 || s.filtF2q != s.curF2q>>4 {
		s.filtF2 = s.curF2 >> 3
		s.filtF2q = s.curF2q >> 4
		updateF2 = true
	}
	if updateF2 {
		capsQ := bitsToCaps(uint64(s.filtF2q), capsF2Q[:])
		capsV := bitsToCaps(uint64(s.filtF2), capsF2[:])
		p := f2Params
		p.c2t += capsQ
		p.c3 += capsV
		buildStandardFilter(&s.f2v, s.cclock, s.sclock, p)
		buildInjectionFilter(&s.f2n, s.cclock, s.sclock, f2Params.c1b, f2Params.c2t+capsQ, f2Params.c2b, f2Params.c3+capsV, f2Params.c4)
	}

	updateF3 := force
	if s.filtF3 != s.curF3>>4 {
		s.filtF3 = s.curF3 >> 4
		updateF3 = true
	}
	if updateF3 {
		caps := bitsToCaps(uint64(s.filtF3), capsF3[:])
		p := f3Params
		p.c3 += caps
		buildStandardFilter(&s.f3, s.cclock, s.sclock, p)
	}

	if force {
		buildStandardFilter(&s.f4, s.cclock, s.sclock, f4Params)
		buildLowpassFilter(&s.fx, s.cclock, s.sclock, fxC1t, fxC1b)
		buildNoiseShaperFilter(&s.fn, s.cclock, s.sclock, fnC1, fnC2t, fnC2b, fnC3, fnC4)
	}
}
