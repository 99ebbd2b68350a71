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

package display_test

import (
	"strings"
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/display"
	"github.com/Martianmellow12/CHIP-8/test"
)

func TestDrawTwice(t *testing.T) {
	var dsp display.Display

	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	test.ExpectFailure(t, dsp.DrawSprite(10, 5, sprite))
	test.ExpectEquality(t, dsp.Pixel(10, 5), 1)
	test.ExpectEquality(t, dsp.Pixel(11, 6), 0)
	test.ExpectEquality(t, dsp.Pixel(13, 9), 1)

	test.ExpectSuccess(t, dsp.DrawSprite(10, 5, sprite))
	test.ExpectEquality(t, dsp.Frame(), display.Frame{})
}

func TestCollisionAcrossSprite(t *testing.T) {
	var dsp display.Display

	// a single pixel on the last row of the sprite
	dsp.DrawSprite(0, 4, []uint8{0x80})

	// collision is detected even though the first rows do not collide
	test.ExpectSuccess(t, dsp.DrawSprite(0, 0, []uint8{0xff, 0xff, 0xff, 0xff, 0x80}))
	test.ExpectEquality(t, dsp.Pixel(0, 4), 0)
	test.ExpectEquality(t, dsp.Pixel(7, 3), 1)

	// no collision reported when nothing is turned off
	test.ExpectFailure(t, dsp.DrawSprite(20, 20, []uint8{0xff}))
}

func TestWrap(t *testing.T) {
	var dsp display.Display

	dsp.DrawSprite(62, 31, []uint8{0xf0, 0xf0})
	test.ExpectEquality(t, dsp.Pixel(62, 31), 1)
	test.ExpectEquality(t, dsp.Pixel(63, 31), 1)
	test.ExpectEquality(t, dsp.Pixel(0, 31), 1)
	test.ExpectEquality(t, dsp.Pixel(1, 31), 1)
	test.ExpectEquality(t, dsp.Pixel(2, 31), 0)
	test.ExpectEquality(t, dsp.Pixel(62, 0), 1)
	test.ExpectEquality(t, dsp.Pixel(1, 0), 1)
}

func TestClear(t *testing.T) {
	var dsp display.Display
	dsp.DrawSprite(0, 0, []uint8{0xff, 0xff})
	dsp.Clear()
	test.ExpectEquality(t, dsp.Frame(), display.Frame{})
}

func TestFrameIsCopy(t *testing.T) {
	var dsp display.Display
	f := dsp.Frame()
	f[0][0] = 1
	test.ExpectEquality(t, dsp.Pixel(0, 0), 0)
}

func TestFrameString(t *testing.T) {
	var dsp display.Display
	dsp.DrawSprite(0, 0, []uint8{0xc0})
	rows := strings.Split(dsp.Frame().String(), "\n")
	test.ExpectEquality(t, len(rows), display.Height+1)
	test.ExpectEquality(t, rows[0][:3], "##.")
}
