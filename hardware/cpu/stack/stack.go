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

// Package stack implements the bounded return address stack used by the CALL
// and RET instructions.
package stack

import (
	"errors"
	"fmt"
	"strings"
)

// Depth is the maximum number of entries on the stack.
const Depth = 16

// Sentinal errors returned by Push() and Pop().
var (
	Overflow  = errors.New("stack overflow")
	Underflow = errors.New("stack underflow")
)

// Stack of return addresses. The zero value is an empty stack.
type Stack struct {
	entries [Depth]uint16
	pointer int
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	clear(stk.entries[:])
	stk.pointer = 0
}

// Push address onto the stack. The stack is unchanged if it is full.
func (stk *Stack) Push(address uint16) error {
	if stk.pointer >= Depth {
		return fmt.Errorf("stack: push %#04x: %w", address, Overflow)
	}
	stk.entries[stk.pointer] = address
	stk.pointer++
	return nil
}

// Pop the most recently pushed address from the stack. The stack is unchanged
// if it is empty.
func (stk *Stack) Pop() (uint16, error) {
	if stk.pointer == 0 {
		return 0, fmt.Errorf("stack: pop: %w", Underflow)
	}
	stk.pointer--
	return stk.entries[stk.pointer], nil
}

// Pointer returns the number of entries on the stack.
func (stk Stack) Pointer() int {
	return stk.pointer
}

// Entries returns a copy of the addresses on the stack. The first entry is
// the oldest.
func (stk Stack) Entries() []uint16 {
	e := make([]uint16, stk.pointer)
	copy(e, stk.entries[:stk.pointer])
	return e
}

func (stk Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d [", stk.pointer))
	for i, e := range stk.Entries() {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#04x", e))
	}
	s.WriteString("]")
	return s.String()
}
