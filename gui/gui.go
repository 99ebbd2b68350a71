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

package gui

import "github.com/Martianmellow12/CHIP-8/hardware/display"

// GUI defines the operations that can be performed on user interfaces.
//
// Implementations that can play audio should also implement the beeper.Mixer
// interface.
type GUI interface {
	// the channel over which events are sent. events will not be sent if a
	// channel has not been set
	SetEventChannel(chan Event)

	// Service gathers user input and sends it over the event channel. It
	// should be called once per frame and must not block for long
	Service() error

	// Render shows the frame to the user
	Render(frame display.Frame) error

	// Destroy releases all resources held by the GUI
	Destroy()
}
