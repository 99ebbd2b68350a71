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

package execution

import (
	"fmt"

	"github.com/Martianmellow12/CHIP-8/hardware/cpu/instructions"
)

// Outcome of a call to CPU.ExecuteInstruction().
type Outcome int

// List of valid Outcome values.
const (
	// the instruction was executed and the CPU is ready for the next
	// instruction
	Executed Outcome = iota

	// the CPU is waiting for a key press. no opcode was fetched unless this
	// is the step that encountered the wait instruction
	AwaitingKey

	// the opcode does not match any instruction definition. the program
	// counter has advanced past the opcode but nothing else has changed
	InvalidOpcode
)

func (o Outcome) String() string {
	switch o {
	case Executed:
		return "executed"
	case AwaitingKey:
		return "awaiting key"
	case InvalidOpcode:
		return "invalid opcode"
	}
	return "unknown outcome"
}

// Result records the state/result of each instruction executed on the CPU.
type Result struct {
	Outcome Outcome

	// the address at which the instruction began
	Address uint16

	// the opcode that was executed. in the case of AwaitingKey this is the
	// wait instruction
	Opcode instructions.Opcode

	// the zero value if Outcome is InvalidOpcode
	Defn instructions.Definition
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch r.Outcome {
	case InvalidOpcode:
		return fmt.Sprintf("%#04x: %s (%s)", r.Address, r.Opcode, r.Outcome)
	case AwaitingKey:
		if r.Defn != (instructions.Definition{}) {
			return fmt.Sprintf("%#04x: %s (%s)", r.Address, r.Defn.Format(r.Opcode), r.Outcome)
		}
		return fmt.Sprintf("%#04x: (%s)", r.Address, r.Outcome)
	}
	if r.Defn == (instructions.Definition{}) {
		return fmt.Sprintf("%#04x: %s", r.Address, r.Opcode)
	}
	return fmt.Sprintf("%#04x: %s", r.Address, r.Defn.Format(r.Opcode))
}
