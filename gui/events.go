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

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event is sent over the event channel.
type Event interface{}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

// EventQuit is sent when the user closes the GUI.
type EventQuit struct{}
