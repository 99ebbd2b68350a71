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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/Martianmellow12/CHIP-8/hardware/display"
)

// Digest implementations produce a hash of the emulation's output.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Frame returns the SHA-1 hash of a single frame.
func Frame(frame display.Frame) string {
	return fmt.Sprintf("%x", sha1.Sum(frameBytes(frame)))
}

func frameBytes(frame display.Frame) []byte {
	b := make([]byte, 0, display.Width*display.Height)
	for _, row := range frame {
		b = append(b, row[:]...)
	}
	return b
}

// Video is a chained digest of every frame passed to the NewFrame()
// function.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frameNum = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame adds the frame to the digest.
func (dig *Video) NewFrame(frame display.Frame) {
	// the head of the pixel data is the previous digest value
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], frameBytes(frame))
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}
