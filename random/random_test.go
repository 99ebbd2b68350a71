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

package random_test

import (
	"testing"

	"github.com/Martianmellow12/CHIP-8/random"
	"github.com/Martianmellow12/CHIP-8/test"
)

type clock struct {
	count int64
}

func (c *clock) InstructionCount() int64 {
	return c.count
}

func TestRandom(t *testing.T) {
	clkA := &clock{}
	clkB := &clock{}
	a := random.NewRandom(clkA)
	b := random.NewRandom(clkB)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := range 256 {
		clkA.count = int64(i)
		clkB.count = int64(i)
		test.ExpectEquality(t, a.Byte(), b.Byte())
		test.ExpectEquality(t, a.Intn(i+1), b.Intn(i+1))
	}
}

func TestUserSeed(t *testing.T) {
	clk := &clock{count: 100}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.UserSeed = 12345
	b.UserSeed = 12345

	for range 10 {
		test.ExpectEquality(t, a.Byte(), b.Byte())
		clk.count++
	}
}

func TestNilClock(t *testing.T) {
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true
	v := rnd.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
