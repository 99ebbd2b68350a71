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

package cpu

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// CheckRange is called before instructions that access more than one
	// byte relative to the I register. The I register is not wrapped when
	// used in this way.
	CheckRange(address uint16, n int) error
}

// Display defines the frame buffer operations required by the CPU.
type Display interface {
	Clear()
	DrawSprite(x uint8, y uint8, sprite []uint8) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) bool
	Listen()
	Heard() (uint8, bool)
}

// Timers defines the timer operations required by the CPU.
type Timers interface {
	Delay() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}
