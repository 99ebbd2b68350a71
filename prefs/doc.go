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

// Package prefs facilitates the storage of preferential values in the
// emulator. Values are of one of the types Bool, Int, Float or String and
// are associated with a key by adding them to a Disk instance:
//
//	var ipf prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("playmode.instructionsPerFrame", &ipf)
//	_ = dsk.Load()
//
// The file written by Save() has a warning as the first line, followed by one
// "key :: value" entry per line, sorted by key. Entries in the file that have
// not been added to the Disk instance are preserved when the file is saved.
// This means that more than one Disk instance can safely share the same file.
//
// Preferences can also be set from the command line. PushCommandLineStack()
// takes a string of the form "key::value; key::value". Values on the stack
// override values read from disk during Load().
package prefs
