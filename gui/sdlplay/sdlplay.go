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

	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/gui"
	"github.com/Martianmellow12/CHIP-8/hardware/display"
	"github.com/Martianmellow12/CHIP-8/logger"
)

// colours of lit and unlit pixels
var (
	foreground = sdl.Color{R: 0xe0, G: 0xe0, B: 0xd0, A: 0xff}
	background = sdl.Color{R: 0x10, G: 0x18, B: 0x10, A: 0xff}
)

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	eventChannel chan gui.Event

	// events waiting to be sent over the event channel
	queue gui.EventQueue

	window   *sdl.Window
	renderer *sdl.Renderer

	// the size of each pixel of the display in window pixels
	scale int32

	// rectangles for lit pixels. reused every frame
	rects []sdl.Rect

	snd *sound
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		scale: int32(scale),
		rects: make([]sdl.Rect, 0, display.Width*display.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scr.scale, display.Height*scr.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// audio is not essential. the GUI is still usable without it
	scr.snd, err = newSound()
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "no audio: %v", err)
		scr.snd = nil
	}

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(eventChannel chan gui.Event) {
	scr.eventChannel = eventChannel
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(frame display.Frame) error {
	scr.rects = scr.rects[:0]
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] != 0 {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	err := scr.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	if len(scr.rects) > 0 {
		err = scr.renderer.SetDrawColor(foreground.R, foreground.G, foreground.B, foreground.A)
		if err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}

		err = scr.renderer.FillRects(scr.rects)
		if err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}
	}

	scr.renderer.Present()

	return nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.snd != nil {
		scr.snd.destroy()
	}
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
