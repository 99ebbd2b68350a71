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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation for a fixed duration of
// time. The emulation runs as quickly as possible with timers ticking after
// every frame's worth of instructions. Check() will optionally generate
// profiling information.
//
// RunProfiler() can be used to generate the various profile types. On its own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations.
//
// CalcRate() calculates instructions-per-second in aggregate along with an
// accuracy value as compared to the rate of a real time emulation.
package performance
