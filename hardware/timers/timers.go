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

// Package timers implements the delay and sound timers. Both timers count
// down towards zero at the rate Tick() is called, which should be 60Hz. The
// timers are not affected by the rate of instruction execution.
package timers

import "fmt"

// TickRate is the number of times per second Tick() should be called.
const TickRate = 60

// Timers contains the delay and sound counters. The zero value is both
// timers stopped.
type Timers struct {
	delay uint8
	sound uint8
}

func (tmr Timers) String() string {
	return fmt.Sprintf("DT=%d ST=%d", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Delay returns the current value of the delay timer.
func (tmr Timers) Delay() uint8 {
	return tmr.delay
}

// Sound returns the current value of the sound timer. A tone should be
// produced by the host for as long as the value is non-zero.
func (tmr Timers) Sound() uint8 {
	return tmr.sound
}

// SetDelay loads a new value into the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.delay = v
}

// SetSound loads a new value into the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.sound = v
}

// Tick decreases each non-zero timer by one.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}
