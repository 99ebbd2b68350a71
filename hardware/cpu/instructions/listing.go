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

package instructions

import (
	"fmt"
	"io"
)

// WriteListing writes a disassembly of the program data to w. Each line shows
// the address, the opcode and the disassembled instruction. The origin is the
// address of the first byte of data.
//
// Data and instructions are not distinguished. Every pair of bytes is
// treated as an opcode. A trailing odd byte is shown as a data byte.
func WriteListing(w io.Writer, data []uint8, origin uint16) error {
	for i := 0; i+1 < len(data); i += 2 {
		op := NewOpcode(data[i], data[i+1])
		_, err := fmt.Fprintf(w, "%#04x  %04X  %s\n", int(origin)+i, uint16(op), Disassemble(op))
		if err != nil {
			return err
		}
	}

	if len(data)%2 == 1 {
		b := data[len(data)-1]
		_, err := fmt.Fprintf(w, "%#04x  %02X    DB %#02x\n", int(origin)+len(data)-1, b, b)
		if err != nil {
			return err
		}
	}

	return nil
}
