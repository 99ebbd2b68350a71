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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Martianmellow12/CHIP-8/beeper"
	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/logger"
)

// the format of the samples produced by the beeper package
const (
	bitDepth    = 8
	numChannels = 1

	// value of 1 indicates PCM format
	audioFormat = 1
)

// WavWriter implements the beeper.Mixer interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// SetAudio implements the beeper.Mixer interface.
func (aw *WavWriter) SetAudio(samples []uint8) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, beeper.SampleRate, bitDepth, numChannels, audioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  beeper.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
