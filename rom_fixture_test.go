// rom_fixture_test.go - synthesizes minimal test ROMs from the bitswap layout,
// since the real (non-redistributable) sc01a.bin is not checked into the repo.

package votrax

// romFields describes one phoneme's decoded fields, the inverse of romEntry.
type romFields struct {
	phone                       uint8
	f1, va, f2, fc, f2q, f3, fa uint8
	cld, vd                     uint8
	closure                     bool
	duration                    uint8
}

// setBitswapField is the inverse of bitswap: it writes value's bits
// (MSB-first, matching the order bitswap reads them back out) into word at
// the given positions.
func setBitswapField(word *uint64, value uint64, positions ...int) {
	n := len(positions)
	for i, pos := range positions {
		bit := (value >> uint(n-1-i)) & 1
		if bit != 0 {
			*word |= 1 << uint(pos)
		}
	}
}

// encodeROMEntry packs romFields into a 64-bit ROM word such that
// decodeROMEntry(encodeROMEntry(f)) reproduces f exactly when every field
// fits its ROM width (4 bits for f1..fa, cld and vd; 7 bits for duration).
// Higher bits of a field are not stored.
func encodeROMEntry(f romFields) uint64 {
	var word uint64
	word |= uint64(f.phone&0x3F) << 56

	setBitswapField(&word, uint64(f.f1), 0, 7, 14, 21)
	setBitswapField(&word, uint64(f.va), 1, 8, 15, 22)
	setBitswapField(&word, uint64(f.f2), 2, 9, 16, 23)
	setBitswapField(&word, uint64(f.fc), 3, 10, 17, 24)
	setBitswapField(&word, uint64(f.f2q), 4, 11, 18, 25)
	setBitswapField(&word, uint64(f.f3), 5, 12, 19, 26)
	setBitswapField(&word, uint64(f.fa), 6, 13, 20, 27)

	setBitswapField(&word, uint64(f.cld), 34, 32, 30, 28)
	setBitswapField(&word, uint64(f.vd), 35, 33, 31, 29)
	if f.closure {
		word |= 1 << 36
	}

	// duration is read from the bitwise-inverted word, so the bits we set
	// here for "duration" must be complemented before going into word.
	var invContribution uint64
	setBitswapField(&invContribution, uint64(f.duration), 37, 38, 39, 40, 41, 42, 43)
	durationMask := uint64(0)
	for _, p := range []int{37, 38, 39, 40, 41, 42, 43} {
		durationMask |= 1 << uint(p)
	}
	word |= (^invContribution) & durationMask

	return word
}

// buildROM constructs a 512-byte ROM blob containing exactly the given
// entries (one per phone code present in entries); codes not present
// resolve to the zero word (an unused slot or romLookup's fallback), which
// decodes to zero targets and the maximum duration of 127.
func buildROM(entries ...romFields) []byte {
	rom := make([]byte, romSizeBytes)
	for i, e := range entries {
		if i >= romEntryCount {
			break
		}
		word := encodeROMEntry(e)
		off := i * romEntryBytes
		for b := 0; b < romEntryBytes; b++ {
			rom[off+b] = byte(word >> uint(8*b))
		}
	}
	return rom
}
