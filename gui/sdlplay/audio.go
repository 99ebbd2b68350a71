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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Martianmellow12/CHIP-8/beeper"
	"github.com/Martianmellow12/CHIP-8/curated"
)

// the number of samples in the audio device buffer
const bufferLength = 1024

// if the amount of queued audio is more than this then new audio is dropped.
// this stops the audio drifting behind the video when the emulation runs
// faster than real time
const maxQueued = beeper.SamplesPerFrame * 4

type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  bufferLength,
	}

	var err error

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &snd.spec, 0)
	if err != nil {
		return nil, err
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) destroy() {
	sdl.ClearQueuedAudio(snd.id)
	sdl.CloseAudioDevice(snd.id)
}

// SetAudio implements the beeper.Mixer interface.
func (scr *SdlPlay) SetAudio(samples []uint8) error {
	if scr.snd == nil {
		return nil
	}

	if sdl.GetQueuedAudioSize(scr.snd.id) > maxQueued {
		return nil
	}

	err := sdl.QueueAudio(scr.snd.id, samples)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	return nil
}

// EndMixing implements the beeper.Mixer interface.
func (scr *SdlPlay) EndMixing() error {
	if scr.snd == nil {
		return nil
	}
	sdl.ClearQueuedAudio(scr.snd.id)
	return nil
}
