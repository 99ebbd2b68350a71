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

package timers_test

import (
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/timers"
	"github.com/Martianmellow12/CHIP-8/test"
)

func TestTick(t *testing.T) {
	var tmr timers.Timers
	tmr.SetDelay(timers.TickRate)
	tmr.SetSound(10)

	for i := 0; i < timers.TickRate; i++ {
		tmr.Tick()
	}
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 0)

	// never below zero
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 0)
}

func TestIndependence(t *testing.T) {
	var tmr timers.Timers
	tmr.SetSound(2)
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), 0)
	test.ExpectEquality(t, tmr.Sound(), 1)
	test.ExpectEquality(t, tmr.String(), "DT=0 ST=1")

	tmr.SetDelay(5)
	tmr.Reset()
	test.ExpectEquality(t, tmr.String(), "DT=0 ST=0")
}
