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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each mode having its own set of
// flags. For example:
//
//	gopher8 -log PLAY -ipf 20 roms/pong.ch8
//
// The -log flag belongs to the top level and the -ipf flag belongs to the
// PLAY mode. Usage begins with NewArgs() followed by any number of flag
// definitions and a call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("PLAY", "TERM", "DUMP")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The selected mode is returned by Mode(). Flags for the selected mode are
// defined after calling NewMode() and parsed with another call to Parse().
//
// The first sub-mode added with AddSubModes() is the default mode. It is
// selected if the next argument is not one of the listed sub-modes.
// Comparison of sub-modes is case insensitive.
package modalflag
