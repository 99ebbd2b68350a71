// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package beeper generates the tone that is played by the host while the
// sound timer of the VM is non-zero. The VM itself produces no audio.
//
// Samples are 8 bit unsigned mono PCM at SampleRate. The Mixer interface is
// implemented by anything that consumes those samples.
package beeper

import "github.com/Martianmellow12/CHIP-8/hardware/timers"

// SampleRate of the generated audio.
const SampleRate = 44100

// Frequency of the tone in Hz.
const Frequency = 440

// SamplesPerFrame is the number of samples required for one tick of the
// timer clock.
const SamplesPerFrame = SampleRate / timers.TickRate

// Silence is the sample value of no sound.
const Silence = uint8(0x80)

// the distance from silence of the high and low parts of the square wave
const amplitude = 0x30

// Mixer implementations consume audio samples.
type Mixer interface {
	SetAudio(samples []uint8) error
	EndMixing() error
}

// Tone is a square wave generator. The phase of the wave is preserved between
// calls to Generate() so that there is no discontinuity between frames.
type Tone struct {
	phase int
	high  bool
}

// Generate n samples. If on is false then the samples are silent.
func (tn *Tone) Generate(on bool, n int) []uint8 {
	samples := make([]uint8, n)

	for i := range samples {
		if !on {
			samples[i] = Silence
			continue
		}

		// the wave level changes twice per cycle
		tn.phase += Frequency * 2
		if tn.phase >= SampleRate {
			tn.phase -= SampleRate
			tn.high = !tn.high
		}

		if tn.high {
			samples[i] = Silence + amplitude
		} else {
			samples[i] = Silence - amplitude
		}
	}

	return samples
}

// IsSilent returns true if every sample is silent.
func IsSilent(samples []uint8) bool {
	for _, s := range samples {
		if s != Silence {
			return false
		}
	}
	return true
}
