// rom_table.go - 512-byte ROM blob lookup by phone code

package votrax

import "encoding/binary"

// romEntryBytes is the size of one packed ROM record.
const romEntryBytes = 8

// romEntryCount is the number of phoneme records in a ROM blob.
const romEntryCount = 64

// romSizeBytes is the exact size New requires of its rom argument.
const romSizeBytes = romEntryCount * romEntryBytes

// romLookup scans the 64 ROM entries for the one whose top 6 bits equal
// phone and returns it as a 64-bit word. Entries are self-identifying, so
// lookup is order-independent; a well-formed ROM always yields exactly one
// match. If none match, romLookup returns 0, which decodes to zero
// amplitude and formant targets (a silent phoneme); its duration field,
// read from the inverted word, decodes to 127.
func romLookup(rom []byte, phone uint8) uint64 {
	for i := 0; i < romEntryCount; i++ {
		off := i * romEntryBytes
		word := binary.LittleEndian.Uint64(rom[off : off+romEntryBytes])
		if uint8(word>>56)&0x3F == phone {
			return word
		}
	}
	return 0
}
