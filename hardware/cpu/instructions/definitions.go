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

// masks used by the definitions table
const (
	full     = 0xffff
	high     = 0xf000
	highLow  = 0xf00f
	highByte = 0xf0ff
)

var definitions = []Definition{
	{Operator: CLS, Mnemonic: "CLS", Form: NoOperands, Mask: full, Pattern: 0x00e0},
	{Operator: RET, Mnemonic: "RET", Form: NoOperands, Mask: full, Pattern: 0x00ee},
	{Operator: JP, Mnemonic: "JP", Form: Address, Mask: high, Pattern: 0x1000},
	{Operator: CALL, Mnemonic: "CALL", Form: Address, Mask: high, Pattern: 0x2000},
	{Operator: SEImm, Mnemonic: "SE", Form: RegImm, Mask: high, Pattern: 0x3000},
	{Operator: SNEImm, Mnemonic: "SNE", Form: RegImm, Mask: high, Pattern: 0x4000},
	{Operator: SEReg, Mnemonic: "SE", Form: RegReg, Mask: highLow, Pattern: 0x5000},
	{Operator: LDImm, Mnemonic: "LD", Form: RegImm, Mask: high, Pattern: 0x6000},
	{Operator: ADDImm, Mnemonic: "ADD", Form: RegImm, Mask: high, Pattern: 0x7000},
	{Operator: LDReg, Mnemonic: "LD", Form: RegReg, Mask: highLow, Pattern: 0x8000},
	{Operator: OR, Mnemonic: "OR", Form: RegReg, Mask: highLow, Pattern: 0x8001},
	{Operator: AND, Mnemonic: "AND", Form: RegReg, Mask: highLow, Pattern: 0x8002},
	{Operator: XOR, Mnemonic: "XOR", Form: RegReg, Mask: highLow, Pattern: 0x8003},
	{Operator: ADDReg, Mnemonic: "ADD", Form: RegReg, Mask: highLow, Pattern: 0x8004},
	{Operator: SUB, Mnemonic: "SUB", Form: RegReg, Mask: highLow, Pattern: 0x8005},
	{Operator: SHR, Mnemonic: "SHR", Form: RegReg, Mask: highLow, Pattern: 0x8006},
	{Operator: SUBN, Mnemonic: "SUBN", Form: RegReg, Mask: highLow, Pattern: 0x8007},
	{Operator: SHL, Mnemonic: "SHL", Form: RegReg, Mask: highLow, Pattern: 0x800e},
	{Operator: SNEReg, Mnemonic: "SNE", Form: RegReg, Mask: highLow, Pattern: 0x9000},
	{Operator: LDI, Mnemonic: "LD", Form: IAddress, Mask: high, Pattern: 0xa000},
	{Operator: JPOffset, Mnemonic: "JP", Form: V0Address, Mask: high, Pattern: 0xb000},
	{Operator: RND, Mnemonic: "RND", Form: RegImm, Mask: high, Pattern: 0xc000},
	{Operator: DRW, Mnemonic: "DRW", Form: RegRegNibble, Mask: high, Pattern: 0xd000},
	{Operator: SKP, Mnemonic: "SKP", Form: Reg, Mask: highByte, Pattern: 0xe09e},
	{Operator: SKNP, Mnemonic: "SKNP", Form: Reg, Mask: highByte, Pattern: 0xe0a1},
	{Operator: LDVxDT, Mnemonic: "LD", Form: RegDT, Mask: highByte, Pattern: 0xf007},
	{Operator: LDKey, Mnemonic: "LD", Form: RegK, Mask: highByte, Pattern: 0xf00a},
	{Operator: LDDTVx, Mnemonic: "LD", Form: DTReg, Mask: highByte, Pattern: 0xf015},
	{Operator: LDSTVx, Mnemonic: "LD", Form: STReg, Mask: highByte, Pattern: 0xf018},
	{Operator: ADDI, Mnemonic: "ADD", Form: IReg, Mask: highByte, Pattern: 0xf01e},
	{Operator: LDFont, Mnemonic: "LD", Form: FReg, Mask: highByte, Pattern: 0xf029},
	{Operator: LDBCD, Mnemonic: "LD", Form: BReg, Mask: highByte, Pattern: 0xf033},
	{Operator: LDStore, Mnemonic: "LD", Form: StoreRegs, Mask: highByte, Pattern: 0xf055},
	{Operator: LDLoad, Mnemonic: "LD", Form: LoadRegs, Mask: highByte, Pattern: 0xf065},
}

// table indexed by the high nibble of an opcode. each entry lists the
// definitions that can possibly match
var byNibble [16][]Definition

func init() {
	for _, defn := range definitions {
		nibble := defn.Pattern >> 12
		byNibble[nibble] = append(byNibble[nibble], defn)
	}
}

// GetDefinitions returns the table of instruction definitions.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions)
	return d
}

// Decode returns a copy of the definition that matches the opcode. Returns
// false and the zero Definition if the opcode is not a valid instruction.
func Decode(op Opcode) (Definition, bool) {
	for _, defn := range byNibble[op>>12] {
		if defn.Matches(op) {
			return defn, true
		}
	}
	return Definition{}, false
}

// Disassemble returns the opcode as a human readable instruction. An invalid
// opcode is shown as a data word.
func Disassemble(op Opcode) string {
	defn, ok := Decode(op)
	if !ok {
		return "DW " + "0x" + op.String()
	}
	return defn.Format(op)
}
