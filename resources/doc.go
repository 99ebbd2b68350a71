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

// Package resources contains functions to prepare paths for resources used
// by the emulator, such as the preferences file.
//
// If a directory named ".gopher8" exists in the current working directory
// then resources are found there. Otherwise, resources are found in the
// "gopher8" directory of the user's configuration directory, as returned by
// os.UserConfigDir().
package resources
