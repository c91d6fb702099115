// phone_sequencer.go - ROM entry decode and phone commit (component F)

package votrax

// romEntry holds one decoded 64-bit ROM record (component A's raw word,
// unpacked by bit_utils.bitswap per the field layout in SPEC_FULL.md §3).
type romEntry struct {
	f1, va, f2, fc, f2q, f3, fa uint32
	cld, vd                     uint32
	closure                     bool
	duration                    uint32
}

// decodeROMEntry unpacks a raw 64-bit ROM word into its fields. The
// duration field is read from the bitwise-inverted word, as specified.
func decodeROMEntry(word uint64) romEntry {
	var e romEntry
	e.f1 = uint32(bitswap(word, 0, 7, 14, 21))
	e.va = uint32(bitswap(word, 1, 8, 15, 22))
	e.f2 = uint32(bitswap(word, 2, 9, 16, 23))
	e.fc = uint32(bitswap(word, 3, 10, 17, 24))
	e.f2q = uint32(bitswap(word, 4, 11, 18, 25))
	e.f3 = uint32(bitswap(word, 5, 12, 19, 26))
	e.fa = uint32(bitswap(word, 6, 13, 20, 27))

	e.cld = uint32(bitswap(word, 34, 32, 30, 28))
	e.vd = uint32(bitswap(word, 35, 33, 31, 29))
	e.closure = bitswap(word, 36) != 0

	inv := ^word
	e.duration = uint32(bitswap(inv, 37, 38, 39, 40, 41, 42, 43))
	return e
}

// phoneCommit latches the current phone code: it resets the sub-phoneme
// tick counters, decodes the matching ROM entry (falling back to an
// all-zero entry when none matches), and applies the immediate closure
// rule when the voiced-closure-delay field is zero.
func (s *Synth) phoneCommit() {
	s.phonetick = 0
	s.ticks = 0

	word := romLookup(s.rom, s.phone)
	s.romEntry = decodeROMEntry(word)
	s.romPause = s.phone == phonePause0 || s.phone == phonePause1

	if s.romEntry.cld == 0 {
		s.curClosure = s.romEntry.closure
	}
}
