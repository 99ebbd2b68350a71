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

// Package memory implements the 4096 byte address space of the CHIP-8
// interpreter. The low part of memory holds the font table (see Font) and
// programs are loaded at ProgramOrigin by convention.
//
// All accesses are bounds checked. Errors returned by Read(), Write() and
// LoadProgram() wrap either AddressOutOfRange or ProgramTooLarge and should be
// tested with errors.Is().
package memory
