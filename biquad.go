// biquad.go - direct-form difference-equation evaluator for the four filter shapes

package votrax

// filterKind tags the shape of a biquad so step() can dispatch without a
// virtual call per sample, per the re-architecture guidance in SPEC_FULL.md.
type filterKind int

const (
	kindStandard4       filterKind = iota // full 4-tap standard biquad (F1, F2v, F3, F4)
	kindLowpass2                          // 2-tap lowpass (Fx)
	kindShaper3                           // 3-tap noise shaper (Fn)
	kindNeutralInjection2                 // neutralized 2-tap injection filter (F2n)
)

// biquad holds the coefficients and two 4-element histories for one filter
// instance. Only the first len(a)/len(b) slots of each array are ever
// populated or read; the remaining slots stay zero and are harmless.
type biquad struct {
	kind filterKind
	a    [4]float64
	b    [4]float64
	x    [4]float64 // input history, x[0] is the most recent sample
	y    [4]float64 // output history, y[0] is the most recent output
}

// shiftIn pushes v onto the front of hist, dropping the oldest sample.
func shiftIn(v float64, hist *[4]float64) {
	hist[3] = hist[2]
	hist[2] = hist[1]
	hist[1] = hist[0]
	hist[0] = v
}

// step evaluates one sample through the filter given a fresh input x0,
// shifting both its input and output histories. The input history shift
// happens here (the caller always hands in the newest raw sample), matching
// spec.md's "the input history is shifted by the caller" framing applied
// uniformly inside step so every call site looks the same.
func (f *biquad) step(x0 float64) float64 {
	shiftIn(x0, &f.x)

	var y0 float64
	switch f.kind {
	case kindStandard4:
		num := f.a[0]*f.x[0] + f.a[1]*f.x[1] + f.a[2]*f.x[2] + f.a[3]*f.x[3]
		den := f.b[1]*f.y[0] + f.b[2]*f.y[1] + f.b[3]*f.y[2]
		y0 = (num - den) / f.b[0]
	case kindLowpass2:
		y0 = (f.a[0]*f.x[0] - f.b[1]*f.y[0]) / f.b[0]
	case kindShaper3:
		num := f.a[0]*f.x[0] + f.a[1]*f.x[1] + f.a[2]*f.x[2]
		den := f.b[1]*f.y[0] + f.b[2]*f.y[1]
		y0 = (num - den) / f.b[0]
	case kindNeutralInjection2:
		// a = [0,0], b = [1,0] makes this always evaluate to 0, but the
		// general 2-tap form is still run so a future un-neutralized
		// filter designer plugs in without touching this dispatch.
		y0 = (f.a[0]*f.x[0] - f.b[1]*f.y[0]) / f.b[0]
	}

	shiftIn(y0, &f.y)
	return y0
}
