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

// Package test bundles functions that remove common boilerplate from tests.
//
// The Expect functions report a failure but let the test continue. The
// Demand functions stop the test immediately. Use Demand when later parts of
// the test depend on the value being correct, for example checking the
// length of a slice before indexing it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//
// A nil value is always considered a success. This follows from how errors
// are usually returned (nil to indicate no error).
//
// The CompareWriter type implements io.Writer and can be used to capture
// output for comparison against an expected string.
package test
