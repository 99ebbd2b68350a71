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

// Package digest is used to create a fingerprint of the emulation's video
// output. Each frame is hashed with SHA-1 and the hash of every new frame is
// chained with the hash of the previous frame. This means that the final
// value of the digest depends on every frame presented to it.
//
// Useful for regression testing. Two runs of the same program with the same
// random seed and input should always produce the same digest.
package digest
