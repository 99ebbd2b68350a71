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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The VM type is the root of the emulation and contains external references
// to all the sub-systems. From here, the emulation can either be stepped one
// instruction at a time with Step() or the host can inspect the state of the
// machine with the FrameBuffer(), SoundTimer() and Snapshot() functions.
//
// The VM never drives its own clock. The host is expected to call Step()
// several times for every call to TickTimers(), which should be called at
// 60Hz. Beyond that the VM is not concerned with timing.
//
// The VM is not safe for concurrent use. The host must not read the frame
// buffer or take a snapshot at the same time as calling Step().
package hardware
