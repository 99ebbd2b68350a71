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

import "fmt"

// Opcode is a single 16 bit instruction word.
type Opcode uint16

// NewOpcode combines two bytes, the high byte first, into an Opcode.
func NewOpcode(hi uint8, lo uint8) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04x", uint16(op))
}

// X returns the register index in the lower nibble of the high byte.
func (op Opcode) X() int {
	return int(op>>8) & 0x0f
}

// Y returns the register index in the upper nibble of the low byte.
func (op Opcode) Y() int {
	return int(op>>4) & 0x0f
}

// N returns the lowest nibble.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0f
}

// KK returns the low byte.
func (op Opcode) KK() uint8 {
	return uint8(op)
}

// NNN returns the lowest 12 bits.
func (op Opcode) NNN() uint16 {
	return uint16(op) & 0x0fff
}

// Operator identifies the operation performed by an instruction.
type Operator int

// List of valid Operator values.
const (
	CLS Operator = iota
	RET
	JP
	CALL
	SEImm
	SNEImm
	SEReg
	LDImm
	ADDImm
	LDReg
	OR
	AND
	XOR
	ADDReg
	SUB
	SHR
	SUBN
	SHL
	SNEReg
	LDI
	JPOffset
	RND
	DRW
	SKP
	SKNP
	LDVxDT
	LDKey
	LDDTVx
	LDSTVx
	ADDI
	LDFont
	LDBCD
	LDStore
	LDLoad
)

// Form describes how the operands of the instruction are presented.
type Form int

// List of valid Form values.
const (
	NoOperands Form = iota
	Address         // nnn
	RegImm          // Vx, kk
	RegReg          // Vx, Vy
	Reg             // Vx
	RegRegNibble    // Vx, Vy, n
	IAddress        // I, nnn
	V0Address       // V0, nnn
	RegDT           // Vx, DT
	RegK            // Vx, K
	DTReg           // DT, Vx
	STReg           // ST, Vx
	IReg            // I, Vx
	FReg            // F, Vx
	BReg            // B, Vx
	StoreRegs       // [I], Vx
	LoadRegs        // Vx, [I]
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	Operator Operator
	Mnemonic string
	Form     Form

	// an opcode matches the definition if opcode&Mask == Pattern
	Mask    uint16
	Pattern uint16
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%s [mask=%04x pattern=%04x]", defn.Mnemonic, defn.Mask, defn.Pattern)
}

// Matches returns true if the opcode is an instance of the instruction
// definition.
func (defn Definition) Matches(op Opcode) bool {
	return uint16(op)&defn.Mask == defn.Pattern
}

// Format the instruction with the operands of the opcode.
func (defn Definition) Format(op Opcode) string {
	var operands string

	switch defn.Form {
	case NoOperands:
		return defn.Mnemonic
	case Address:
		operands = fmt.Sprintf("%#03x", op.NNN())
	case RegImm:
		operands = fmt.Sprintf("V%X, %#02x", op.X(), op.KK())
	case RegReg:
		operands = fmt.Sprintf("V%X, V%X", op.X(), op.Y())
	case Reg:
		operands = fmt.Sprintf("V%X", op.X())
	case RegRegNibble:
		operands = fmt.Sprintf("V%X, V%X, %d", op.X(), op.Y(), op.N())
	case IAddress:
		operands = fmt.Sprintf("I, %#03x", op.NNN())
	case V0Address:
		operands = fmt.Sprintf("V0, %#03x", op.NNN())
	case RegDT:
		operands = fmt.Sprintf("V%X, DT", op.X())
	case RegK:
		operands = fmt.Sprintf("V%X, K", op.X())
	case DTReg:
		operands = fmt.Sprintf("DT, V%X", op.X())
	case STReg:
		operands = fmt.Sprintf("ST, V%X", op.X())
	case IReg:
		operands = fmt.Sprintf("I, V%X", op.X())
	case FReg:
		operands = fmt.Sprintf("F, V%X", op.X())
	case BReg:
		operands = fmt.Sprintf("B, V%X", op.X())
	case StoreRegs:
		operands = fmt.Sprintf("[I], V%X", op.X())
	case LoadRegs:
		operands = fmt.Sprintf("V%X, [I]", op.X())
	}

	return fmt.Sprintf("%s %s", defn.Mnemonic, operands)
}
