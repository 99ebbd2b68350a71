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

// Package statsview is a wrapper for the statsview package. It serves a web
// page with live charts of the Go runtime (memory, goroutines and garbage
// collection) of the running emulator.
//
// The statsview package is only included if the program is built with the
// statsview build tag:
//
//	go build -tags=statsview
//
// Without the build tag Launch() prints a message and does nothing.
package statsview
