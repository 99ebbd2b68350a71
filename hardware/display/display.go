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

// Package display implements the 64x32 monochrome frame buffer. Pixels are
// changed only by clearing the display or by drawing a sprite. Sprites are
// combined with the existing frame by XOR.
package display

import "strings"

// Dimensions of the frame buffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the frame buffer. Each cell is either 0 or 1 and is
// indexed by row and then column.
type Frame [Height][Width]uint8

func (f Frame) String() string {
	s := strings.Builder{}
	for _, row := range f {
		for _, px := range row {
			if px == 1 {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the frame buffer of the interpreter.
type Display struct {
	frame Frame
}

// Clear sets every pixel to zero.
func (dsp *Display) Clear() {
	dsp.frame = Frame{}
}

// Frame returns a copy of the frame buffer.
func (dsp *Display) Frame() Frame {
	return dsp.frame
}

// Pixel returns the value of the pixel at the coordinates. Coordinates wrap
// around the edges of the frame.
func (dsp *Display) Pixel(x int, y int) uint8 {
	return dsp.frame[y%Height][x%Width]
}

// DrawSprite XORs the sprite onto the frame buffer with the top-left corner
// at x and y. Each byte of the sprite is one row of eight pixels, most
// significant bit first. Pixels that fall outside the frame wrap around to
// the opposite edge.
//
// Returns true if any pixel in the sprite was changed from 1 to 0.
func (dsp *Display) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	var collision bool

	for r, row := range sprite {
		py := (int(y) + r) % Height
		for b := 0; b < 8; b++ {
			if row&(0x80>>b) == 0 {
				continue
			}
			px := (int(x) + b) % Width
			if dsp.frame[py][px] == 1 {
				collision = true
			}
			dsp.frame[py][px] ^= 1
		}
	}

	return collision
}
