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

package keypad_test

import (
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/keypad"
	"github.com/Martianmellow12/CHIP-8/test"
)

func TestSet(t *testing.T) {
	kp := keypad.NewKeypad()
	kp.Set(0xa, true)
	test.ExpectSuccess(t, kp.IsPressed(0xa))
	test.ExpectFailure(t, kp.IsPressed(0xb))
	test.ExpectEquality(t, kp.String(), "----------A-----")

	kp.Set(0xa, false)
	test.ExpectFailure(t, kp.IsPressed(0xa))

	// out of range keys are ignored
	kp.Set(16, true)
	test.ExpectFailure(t, kp.IsPressed(16))
}

func TestListen(t *testing.T) {
	kp := keypad.NewKeypad()

	// key presses are not latched unless listening
	kp.Set(1, true)
	_, ok := kp.Heard()
	test.ExpectFailure(t, ok)

	kp.Listen()

	// a key that is already held down is not a new press
	kp.Set(1, true)
	_, ok = kp.Heard()
	test.ExpectFailure(t, ok)

	// the first new press wins
	kp.Set(5, true)
	kp.Set(6, true)
	key, ok := kp.Heard()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 5)

	// listening stops once a key has been heard
	kp.Set(5, false)
	kp.Set(5, true)
	_, ok = kp.Heard()
	test.ExpectFailure(t, ok)
}
