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

// AddressRegister represents the I register. Like the program counter, the
// value is kept within the 4096 byte address space when it is loaded or
// added to.
type AddressRegister struct {
	value uint16
}

// NewAddressRegister is the preferred method of initialisation for AddressRegister.
func NewAddressRegister(val uint16) AddressRegister {
	return AddressRegister{value: val & addressMask}
}

// Label returns an identifying string for the register.
func (ar AddressRegister) Label() string {
	return "I"
}

func (ar AddressRegister) String() string {
	return fmt.Sprintf("%#04x", ar.value)
}

// Address returns the current value of the register.
func (ar AddressRegister) Address() uint16 {
	return ar.value
}

// Load a value into the register.
func (ar *AddressRegister) Load(val uint16) {
	ar.value = val & addressMask
}

// Add a value to the register.
func (ar *AddressRegister) Add(val uint16) {
	ar.value = (ar.value + val) & addressMask
}
