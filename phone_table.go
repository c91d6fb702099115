// phone_table.go - Votrax SC-01A phoneme name table for the sc01a core

package votrax

// PhoneTable lists the 64 phoneme names in S_PHONE_TABLE order. Index i
// is the 6-bit phone code accepted by Synth.WritePhone.
var PhoneTable = [64]string{
	"EH3", "EH2", "EH1", "PA0", "DT", "A1", "A2", "ZH",
	"AH2", "I3", "I2", "I1", "M", "N", "B", "V",
	"CH", "SH", "Z", "AW1", "NG", "AH1", "OO1", "OO",
	"L", "K", "J", "H", "G", "F", "D", "S",
	"A", "AY", "Y1", "UH3", "AH", "P", "O", "I",
	"U", "Y", "T", "R", "E", "W", "AE", "AE1",
	"AW2", "UH2", "UH1", "UH", "O2", "O1", "IU", "U1",
	"THV", "TH", "ER", "EH", "E1", "AW", "PA1", "STOP",
}

// phonePause0 and phonePause1 are the two codes recognised as pause phones.
const (
	phonePause0 = 0x03 // PA0
	phonePause1 = 0x3E // PA1
)

var phoneIndex = func() map[string]uint8 {
	m := make(map[string]uint8, len(PhoneTable))
	for i, name := range PhoneTable {
		m[name] = uint8(i)
	}
	return m
}()

// PhoneIndex looks up a phoneme name (as printed in PhoneTable) and returns
// its 6-bit code. ok is false when name is not one of the 64 known phonemes.
func PhoneIndex(name string) (code uint8, ok bool) {
	code, ok = phoneIndex[name]
	return
}
