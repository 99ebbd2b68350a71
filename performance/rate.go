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

package performance

import "github.com/Martianmellow12/CHIP-8/hardware/timers"

// CalcRate takes the number of instructions executed and the duration (in
// seconds) and returns the instructions-per-second and the accuracy of that
// value as a percentage of a real time emulation running at the specified
// number of instructions per frame.
func CalcRate(numInstructions int64, duration float64, instructionsPerFrame int) (ips float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(numInstructions) / duration
	if instructionsPerFrame <= 0 {
		return ips, 0
	}
	accuracy = 100 * ips / float64(instructionsPerFrame*timers.TickRate)
	return ips, accuracy
}
