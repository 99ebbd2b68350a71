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

// Package cpu emulates the CHIP-8 interpreter's fetch, decode and execute
// cycle. Each call to ExecuteInstruction() performs exactly one instruction.
//
// The CPU does not own the other parts of the machine. Memory, display,
// keypad and timers are plumbed in through the interfaces defined in this
// package. In normal use these are provided by the hardware.VM type.
//
// Errors returned by ExecuteInstruction() wrap the sentinal errors of the
// memory and stack packages. Invalid opcodes are not errors and are instead
// reported in the Outcome field of the execution.Result.
//
// The wait-for-key instruction (Fx0A) does not block. Instead, the CPU
// remembers which register is to receive the key and subsequent calls to
// ExecuteInstruction() do nothing except check whether a key has been pressed.
package cpu
