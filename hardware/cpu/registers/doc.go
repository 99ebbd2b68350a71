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

// Package registers implements the three types of register found in the
// CHIP-8 interpreter: the 8 bit data register (V0 to VF), the address register
// (I) and the program counter.
//
// The arithmetic functions of the Register type return information about the
// carry or borrow of the operation. It is up to the caller to decide what to
// do with that information (normally, to load it into VF).
package registers
