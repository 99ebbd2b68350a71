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

// Package gui defines the interface between the playmode loop and the user
// interfaces that show the display of the VM. Implementations are found in
// the sub-packages.
//
// Input from the user is sent to the playmode loop as an Event over the
// channel given to SetEventChannel(). Keyboard keys are named the way SDL
// names them. KeypadIndex() translates a key name into a keypad key.
package gui
