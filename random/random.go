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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock reports the current position of the emulation.
type Clock interface {
	InstructionCount() int64
}

// Random is a random number generator that is sensitive to the position of
// the emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed
	ZeroSeed bool

	// alternative seed set by the user. only used if ZeroSeed is false and
	// UserSeed is non-zero
	UserSeed uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

func (rnd *Random) seed() uint64 {
	if rnd.ZeroSeed {
		return 0
	}
	if rnd.UserSeed != 0 {
		return rnd.UserSeed
	}
	return baseSeed
}

func (rnd *Random) rand() *rand.Rand {
	var pos uint64
	if rnd.clk != nil {
		pos = uint64(rnd.clk.InstructionCount())
	}
	return rand.New(rand.NewPCG(rnd.seed(), pos))
}

// Intn returns a random number in the range 0 to n-1. The number will be the
// same for the same emulation position and seed.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Byte returns a random value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Uint32())
}
