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

package execution_test

import (
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/instructions"
	"github.com/Martianmellow12/CHIP-8/test"
)

func TestResultString(t *testing.T) {
	defn, ok := instructions.Decode(0x6005)
	test.DemandSuccess(t, ok)

	r := execution.Result{
		Outcome: execution.Executed,
		Address: 0x200,
		Opcode:  0x6005,
		Defn:    defn,
	}
	test.ExpectEquality(t, r.String(), "0x0200: LD V0, 0x05")

	r = execution.Result{
		Outcome: execution.InvalidOpcode,
		Address: 0x202,
		Opcode:  0xffff,
	}
	test.ExpectEquality(t, r.String(), "0x0202: ffff (invalid opcode)")

	r.Reset()
	test.ExpectEquality(t, r.Outcome, execution.Executed)
	test.ExpectEquality(t, r.Address, 0)
}
