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

// Package keypad implements the state of the sixteen key hexadecimal keypad.
//
// In addition to the current state of each key, the keypad can be asked to
// listen for the next key press with Listen(). The first key to change from
// released to pressed after the call is latched and can be collected with
// Heard(). This is how the wait-for-key instruction is implemented without
// blocking.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// noKey indicates that no key has been heard.
const noKey = -1

// Keypad is the state of every key on the keypad.
type Keypad struct {
	keys      [NumKeys]bool
	listening bool
	heard     int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	kp := &Keypad{}
	kp.Reset()
	return kp
}

// Reset releases all keys and stops listening.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
	kp.listening = false
	kp.heard = noKey
}

func (kp Keypad) String() string {
	s := strings.Builder{}
	for i, k := range kp.keys {
		if k {
			s.WriteString(fmt.Sprintf("%X", i))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Set the state of a key. Keys outside of the range 0 to 15 are ignored.
func (kp *Keypad) Set(key uint8, pressed bool) {
	if int(key) >= NumKeys {
		return
	}
	if pressed && !kp.keys[key] && kp.listening && kp.heard == noKey {
		kp.heard = int(key)
	}
	kp.keys[key] = pressed
}

// IsPressed returns the state of the key. A key outside of the range 0 to 15
// is never pressed.
func (kp *Keypad) IsPressed(key uint8) bool {
	if int(key) >= NumKeys {
		return false
	}
	return kp.keys[key]
}

// Keys returns a copy of the state of every key.
func (kp *Keypad) Keys() [NumKeys]bool {
	return kp.keys
}

// Listen for the next key press. Any previously heard key is forgotten.
func (kp *Keypad) Listen() {
	kp.listening = true
	kp.heard = noKey
}

// Heard returns the key that was pressed since Listen() was called. Once a
// key is returned the keypad stops listening.
func (kp *Keypad) Heard() (uint8, bool) {
	if !kp.listening || kp.heard == noKey {
		return 0, false
	}
	key := uint8(kp.heard)
	kp.listening = false
	kp.heard = noKey
	return key, true
}
