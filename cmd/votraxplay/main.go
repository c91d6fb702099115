// main.go - votraxplay: a demo CLI that drives the votrax core and writes a WAV file
//
// This binary is the external-collaborator layer described in
// SPEC_FULL.md §6.2. It is intentionally separate from the votrax core:
// ROM loading, phoneme-name parsing, CLI flags and WAV encoding are all
// out of scope for the core itself.

package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	flag "github.com/spf13/pflag"

	"github.com/votraxcore/sc01a"
)

func main() {
	var (
		romPath    = flag.StringP("rom", "r", "sc01a.bin", "Path to the 512-byte Votrax SC-01A ROM image")
		outPath    = flag.StringP("out", "o", "output.wav", "Output WAV file path")
		inflection = flag.Uint8P("inflection", "i", 0, "2-bit pitch inflection (0-3)")
		clock      = flag.Uint32P("clock", "c", 0, "Master clock in Hz (0 = chip default, 720000)")
		help       = flag.BoolP("help", "h", false, "Display help text")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] \"PHONEME PHONEME ...\"\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *help || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	rom := loadROM(*romPath)

	synth, err := votrax.New(rom, *clock)
	if err != nil {
		fmt.Fprintln(os.Stderr, "votraxplay:", err)
		os.Exit(1)
	}
	synth.SetInflection(*inflection)

	phones := parsePhonemes(flag.Arg(0))

	var all []float32
	for _, p := range phones {
		synth.WritePhone(p)
		n := int(synth.CurrentPhoneDurationSamples())
		all = append(all, synth.GenerateSamples(n)...)
	}

	if err := writeWAV(*outPath, all, synth.SampleRate()); err != nil {
		fmt.Fprintln(os.Stderr, "votraxplay:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d samples to %s\n", len(all), *outPath)
}

// loadROM reads the ROM file at path. A missing file is a warning, not a
// fatal error — per spec.md §7 kind 2, the collaborator layer substitutes
// 512 zero bytes and proceeds; the core will simply emit silence.
func loadROM(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "votraxplay: warning: ROM file %q not found, synthesizer will be silent\n", path)
		return make([]byte, 512)
	}
	return data
}

// parsePhonemes splits a space-separated phoneme-name string into codes.
// Unrecognized names fall back to PA0, matching the original driver's
// text_to_phonemes behaviour.
func parsePhonemes(s string) []uint8 {
	fields := strings.Fields(strings.ToUpper(s))
	codes := make([]uint8, 0, len(fields))
	for _, name := range fields {
		code, ok := votrax.PhoneIndex(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "votraxplay: warning: phoneme %q not recognized, using PA0\n", name)
			code, _ = votrax.PhoneIndex("PA0")
		}
		codes = append(codes, code)
	}
	return codes
}

// writeWAV peak-normalizes samples to 0.8 full scale and writes a 16-bit
// mono WAV file at the given sample rate, following the normalization
// performed by the original driver's __main__ block.
func writeWAV(path string, samples []float32, sampleRate float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	peak := float32(0)
	for _, v := range samples {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}

	ints := make([]int, len(samples))
	for i, v := range samples {
		norm := v
		if peak > 0 {
			norm = v / peak * 0.8
		}
		ints[i] = int(norm * 32767)
	}

	enc := wav.NewEncoder(f, int(sampleRate), 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: int(sampleRate), NumChannels: 1},
		Data:           ints,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
