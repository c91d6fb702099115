// chip_update.go - orchestrates the sequencer, interpolator, pitch counter,
// LFSR advance and filter recommit at sub-sample rate (component H)

package votrax

// chipUpdate runs one sub-sample tick of the chip. generate_samples calls
// this on every odd sample_count, i.e. once per two output samples.
func (s *Synth) chipUpdate() {
	// 1. Phoneme advance.
	if s.ticks != 0x10 {
		s.phonetick++
		if s.phonetick == (s.romEntry.duration<<2)|1 {
			s.phonetick = 0
			s.ticks++
			if s.ticks == s.romEntry.cld {
				s.curClosure = s.romEntry.closure
			}
		}
	}

	// 2. Coarse counter.
	s.updateCounter = (s.updateCounter + 1) % 0x30
	tick625 := s.updateCounter&0xF == 0
	tick208 := s.updateCounter == 0x28

	// 3. Formant interpolation.
	if tick208 && (!s.romPause || s.filtFa != 0 || s.filtVa != 0) {
		s.curFc = interpolate(s.curFc, s.romEntry.fc)
		s.curF1 = interpolate(s.curF1, s.romEntry.f1)
		s.curF2 = interpolate(s.curF2, s.romEntry.f2)
		s.curF2q = interpolate(s.curF2q, s.romEntry.f2q)
		s.curF3 = interpolate(s.curF3, s.romEntry.f3)
	}

	// 4. Amplitude interpolation.
	if tick625 {
		if s.ticks >= s.romEntry.vd {
			s.curFa = interpolate(s.curFa, s.romEntry.fa)
		}
		if s.ticks >= s.romEntry.cld {
			s.curVa = interpolate(s.curVa, s.romEntry.va)
		}
	}

	// 5. Closure ramp.
	if !s.curClosure && (s.filtFa != 0 || s.filtVa != 0) {
		s.closure = 0
	} else if s.closure != 28 {
		s.closure++
	}

	// 6. Pitch counter + filter commit.
	s.pitch = (s.pitch + 1) & 0xFF
	targetPitch := (0xE0 ^ (uint32(s.inflection) << 5) ^ (s.filtF1 << 1)) + 2
	if uint32(s.pitch) == targetPitch {
		s.pitch = 0
	}
	if s.pitch&0xF9 == 0x08 {
		s.filtersCommit(false)
	}

	// 7. LFSR advance.
	s.noise, s.curNoise = advanceNoise(s.noise, s.curNoise)
}
