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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// Random numbers are derived from the position of the emulation, as reported
// by the Clock interface, combined with a base seed. The same base seed and
// the same position will always produce the same number. This means that two
// emulations running the same program with the same input will see the same
// sequence of random numbers.
//
// If the same random numbers are required every time the program is run then
// set ZeroSeed to true. This is useful for testing purposes.
package random
