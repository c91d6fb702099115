// bitswap_test.go - round-trip property for bit_utils.bitswap

package votrax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestBitswapRoundTrip checks invariant 3 from SPEC_FULL.md §8: for any
// 64-bit word and any set of distinct positions, reconstructing the
// selected bits into the original positions yields the original partial
// word (i.e. bitswap followed by setBitswapField recovers those bits).
func TestBitswapRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.Uint64().Draw(t, "word")

		n := rapid.IntRange(1, 8).Draw(t, "n")
		positions := make([]int, 0, n)
		seen := map[int]bool{}
		for len(positions) < n {
			p := rapid.IntRange(0, 63).Draw(t, "pos")
			if seen[p] {
				continue
			}
			seen[p] = true
			positions = append(positions, p)
		}

		extracted := bitswap(word, positions...)

		var reconstructed uint64
		setBitswapField(&reconstructed, extracted, positions...)

		var mask uint64
		for _, p := range positions {
			mask |= 1 << uint(p)
		}

		assert.Equal(t, word&mask, reconstructed&mask,
			"round trip through the selected bit positions should recover the original partial word")
	})
}

func TestBitsToCaps(t *testing.T) {
	caps := []float64{1, 2, 4, 8}
	if got := bitsToCaps(0b0000, caps); got != 0 {
		t.Fatalf("bitsToCaps(0) = %v, want 0", got)
	}
	if got := bitsToCaps(0b0101, caps); got != 5 {
		t.Fatalf("bitsToCaps(0b0101) = %v, want 5", got)
	}
	if got := bitsToCaps(0b1111, caps); got != 15 {
		t.Fatalf("bitsToCaps(0b1111) = %v, want 15", got)
	}
}
