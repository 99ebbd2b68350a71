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

	"github.com/Martianmellow12/CHIP-8/gui"
)

// Service implements gui.GUI interface.
func (scr *SdlPlay) Service() error {
	// gather events until the queue is empty
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if scr.eventChannel == nil {
			continue // for loop
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			// key repeat has no meaning for the keypad
			if ev.Repeat != 0 {
				continue // for loop
			}

			scr.send(gui.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  keyMod(sdl.GetModState()),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	scr.queue.Flush(scr.eventChannel)
	return nil
}

func keyMod(m sdl.Keymod) gui.KeyMod {
	switch {
	case m&sdl.KMOD_ALT != 0:
		return gui.KeyModAlt
	case m&sdl.KMOD_SHIFT != 0:
		return gui.KeyModShift
	case m&sdl.KMOD_CTRL != 0:
		return gui.KeyModCtrl
	}
	return gui.KeyModNone
}

// send event without blocking. events that do not fit in the channel are
// queued until the next call to Service()
func (scr *SdlPlay) send(ev gui.Event) {
	scr.queue.Push(ev)
}
