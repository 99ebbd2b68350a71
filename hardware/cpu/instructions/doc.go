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

// Package instructions defines the CHIP-8 instruction set. Every instruction
// is two bytes long and is identified by matching the opcode against the mask
// and pattern of each Definition.
//
// Operands are packed into the opcode in one of a small number of ways. The
// Opcode type has functions to extract each operand field:
//
//	nnn  the lowest 12 bits (an address)
//	kk   the lowest 8 bits (an immediate byte)
//	n    the lowest 4 bits (a nibble)
//	x    the lower 4 bits of the high byte (a register index)
//	y    the upper 4 bits of the low byte (a register index)
package instructions
