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

// Package logger is the central log for the emulator and its hosts. There is
// only one central log for the entire application but additional Logger
// instances can be created with NewLogger(), which is useful for testing.
//
// Entries are made with a tag and a detail value:
//
//	logger.Log(logger.Allow, "hardware", "program loaded")
//	logger.Logf(logger.Allow, "playmode", "running at %d instructions per frame", ipf)
//
// The detail argument to Log() can be a string, an error, a fmt.Stringer or
// any other value (which will be formatted with the %v verb).
//
// Consecutive identical entries are folded into one with a repeat count.
package logger
