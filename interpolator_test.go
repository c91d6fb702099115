// interpolator_test.go - fixed-point convergence property

package votrax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestInterpolateConverges checks invariant 5 from SPEC_FULL.md §8: applying
// interpolate repeatedly drives reg, within 64 applications, into the band
// where reg>>3 == 2*target, i.e. 16*target <= reg <= 16*target+7 (the band
// is 8 wide because reg>>3 truncates), and every reg in that band is a true
// fixed point that further applications leave unchanged.
func TestInterpolateConverges(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.Uint32Range(0, 0x7F).Draw(t, "target")
		reg := rapid.Uint32Range(0, 0xFFF).Draw(t, "reg")

		want := target << 4
		converged := false
		for i := 0; i < 64; i++ {
			reg = interpolate(reg, target)
			if reg >= want && reg <= want+7 {
				converged = true
				break
			}
		}
		assert.True(t, converged, "reg=%d did not reach [16*target, 16*target+7] = [%d, %d] within 64 steps", reg, want, want+7)

		// Once within the band, further applications leave reg unchanged.
		fixed := reg
		for i := 0; i < 8; i++ {
			reg = interpolate(reg, target)
			assert.Equal(t, fixed, reg, "reg moved off its fixed point %d", fixed)
		}
	})
}

func TestInterpolateZeroIsFixedPoint(t *testing.T) {
	reg := uint32(0)
	for i := 0; i < 8; i++ {
		reg = interpolate(reg, 0)
	}
	assert.Equal(t, uint32(0), reg)
}
