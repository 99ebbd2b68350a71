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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is kept with the error so that it can be tested for later:
//
//	const NotAProgram = "romloader: not a program (%s)"
//
//	e := curated.Errorf(NotAProgram, filename)
//	if curated.Is(e, NotAProgram) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the chain of wrapped curated errors.
//
// The Error() function normalises the message so that adjacent duplicate
// parts of the chain are removed. Parts are separated by the sub-string ": ".
// This means that code can wrap errors with a package prefix without worrying
// whether the wrapped error already carries the same prefix:
//
//	playmode: playmode: invalid opcode
//
// becomes
//
//	playmode: invalid opcode
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented.
package curated
