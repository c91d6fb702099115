// analog_calc.go - per-sample composition of sources and cascaded filters (component I)

package votrax

// analogCalc computes one output sample from the current chip state,
// chaining the glottal and noise sources through the voice, noise and
// mixed filter cascades described in SPEC_FULL.md §4.I. Each biquad owns
// its own input/output history (component D), so the chain below feeds
// each stage's output directly into the next stage's step() rather than
// threading a separate history array between them.
func (s *Synth) analogCalc() float64 {
	// Voice path.
	v := glottalSample(s.pitch)
	v = v * float64(s.filtVa) / 15.0
	v = s.f1.step(v)
	v = s.f2v.step(v)

	// Noise path.
	var noiseSign float64 = -1
	if s.pitch&0x40 != 0 && s.curNoise {
		noiseSign = 1
	}
	n := 10000.0 * noiseSign
	n = n * float64(s.filtFa) / 15.0
	n = s.fn.step(n)

	n2 := n * float64(s.filtFc) / 15.0
	n2 = s.f2n.step(n2)

	// Mixed path.
	vn := v + n2
	vn = s.f3.step(vn)

	vn += n * float64(5+(15^s.filtFc)) / 20.0
	vn = s.f4.step(vn)

	vn = vn * float64(7^(s.closure>>2)) / 7.0
	vn = s.fx.step(vn)

	return vn * 0.35
}
