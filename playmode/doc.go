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

// Package playmode is the run loop of the VM when played by a user. Each
// frame of the loop executes a fixed number of instructions, ticks the
// timers once, sends audio to the mixers and renders the display.
//
// The loop halts when the program reaches an invalid opcode. This is
// reported by returning an error with the InvalidOpcodeHalt pattern.
//
// The P key pauses and unpauses the emulation. Escape ends the loop.
package playmode
