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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising can be used when reinitialising the emulator. for example, when
// a new program is being loaded.
//
// Halted is entered when the program can no longer continue. for example,
// when an invalid opcode has been encountered.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Running
	WaitingForKey
	Halted
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case WaitingForKey:
		return "WaitingForKey"
	case Halted:
		return "Halted"
	case Ending:
		return "Ending"
	}

	return ""
}

// Continue returns true if the state allows the run loop to keep going.
func (s State) Continue() bool {
	return s != Halted && s != Ending
}
