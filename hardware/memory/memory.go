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

package memory

import (
	"fmt"
)

// Size of the address space in bytes.
const Size = 4096

// Mask is applied to 16 bit values that are to be used as addresses.
const Mask = uint16(Size - 1)

// ProgramOrigin is the conventional load address for programs.
const ProgramOrigin = uint16(0x200)

// Memory is the flat address space of the interpreter.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font table is installed before the function returns.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes memory and reinstalls the font table.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	for i, g := range Font {
		copy(mem.data[GlyphAddress(uint8(i)):], g[:])
	}
}

// Read the byte at the address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address >= Size {
		return 0, fmt.Errorf("memory: read: %w: %#04x", AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write the byte to the address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address >= Size {
		return fmt.Errorf("memory: write: %w: %#04x", AddressOutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// CheckRange returns an error if any address in the range address to
// address+n-1 is outside of memory. This allows callers to make sure a
// sequence of accesses will succeed before any of them are made.
func (mem *Memory) CheckRange(address uint16, n int) error {
	if n <= 0 {
		return nil
	}
	end := int(address) + n - 1
	if end >= Size {
		return fmt.Errorf("memory: %w: %#04x", AddressOutOfRange, end)
	}
	return nil
}

// LoadProgram copies data into memory starting at the offset. The size of
// the program is checked before any byte is written so that a failed load
// does not result in a partial program.
func (mem *Memory) LoadProgram(data []uint8, offset uint16) error {
	if err := CheckProgram(len(data), offset); err != nil {
		return err
	}
	copy(mem.data[offset:], data)
	return nil
}

// CheckProgram returns an error if a program of the given size cannot be
// loaded at the offset.
func CheckProgram(size int, offset uint16) error {
	if offset >= Size {
		return fmt.Errorf("memory: load: %w: %#04x", AddressOutOfRange, offset)
	}
	if int(offset)+size > Size {
		return fmt.Errorf("memory: load: %w: %d bytes at %#04x", ProgramTooLarge, size, offset)
	}
	return nil
}

// Bytes returns a copy of the entire address space.
func (mem *Memory) Bytes() []uint8 {
	b := make([]uint8, Size)
	copy(b, mem.data[:])
	return b
}
