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

import (
	"fmt"
)

// Register is an 8 bit data register.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with a name and initial value.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the result overflowed 8 bits.
func (r *Register) Add(val uint8) (carry bool) {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. Returns true if no borrow occurred. ie. the
// value of the register was greater than or equal to val.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value >= val
	r.value -= val
	return noBorrow
}

// ReverseSubtract loads the register with val minus the register. Returns
// true if no borrow occurred.
func (r *Register) ReverseSubtract(val uint8) (noBorrow bool) {
	noBorrow = val >= r.value
	r.value = val - r.value
	return noBorrow
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// SHL shifts register one bit to the left. Returns the most significant bit
// as it was before the shift.
func (r *Register) SHL() bool {
	msb := r.value&0x80 == 0x80
	r.value <<= 1
	return msb
}

// SHR shifts register one bit to the right. Returns the least significant bit
// as it was before the shift.
func (r *Register) SHR() bool {
	lsb := r.value&0x01 == 0x01
	r.value >>= 1
	return lsb
}
