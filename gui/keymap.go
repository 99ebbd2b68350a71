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

package gui

import "strings"

// the layout of the keypad is mapped to the left side of a QWERTY keyboard
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  =>  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keymap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeypadIndex returns the keypad key for the named keyboard key. Returns false
// if the keyboard key is not mapped to the keypad. Key names are not case
// sensitive.
func KeypadIndex(key string) (uint8, bool) {
	k, ok := keymap[strings.ToUpper(key)]
	return k, ok
}
