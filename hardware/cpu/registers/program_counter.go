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

package registers

import "fmt"

// addressMask keeps program counter and address register values within the
// 4096 byte address space.
const addressMask = uint16(0x0fff)

// ProgramCounter represents the PC register. The value of the program counter
// wraps around at the top of the address space.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val & addressMask}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val & addressMask
}

// Add a value to the PC.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value = (pc.value + val) & addressMask
}
