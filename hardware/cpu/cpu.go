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

package cpu

import (
	"fmt"
	"strings"

	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/instructions"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/registers"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/stack"
	"github.com/Martianmellow12/CHIP-8/hardware/instance"
	"github.com/Martianmellow12/CHIP-8/hardware/memory"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the register used for carry, borrow and collision
// information.
const Flag = 0xf

// value of awaitingKey when the CPU is not waiting for a key press
const notAwaiting = -1

// CPU implements the CHIP-8 interpreter. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	V  [NumRegisters]registers.Register
	I  registers.AddressRegister
	PC registers.ProgramCounter

	Stack stack.Stack

	mem  Memory
	disp Display
	keys Keypad
	tmr  Timers

	// the register that will receive the next key press. notAwaiting
	// otherwise
	awaitingKey int

	// the result of the wait instruction that caused us to be waiting
	awaitingResult execution.Result

	// last result of ExecuteInstruction()
	LastResult execution.Result

	// number of instructions executed since the last Reset(). steps that do
	// nothing but wait for a key press are not counted
	instructionCount int64
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(instance *instance.Instance, mem Memory, disp Display, keys Keypad, tmr Timers) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		disp:     disp,
		keys:     keys,
		tmr:      tmr,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	for i := range mc.V {
		s.WriteString(mc.V[i].String())
		s.WriteString(" ")
	}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s", mc.I.Label(), mc.I, mc.PC.Label(), mc.PC))
	return s.String()
}

// Reset reinitialises all registers and empties the stack. The PC is loaded
// with the conventional program origin.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.I = registers.NewAddressRegister(0)
	mc.PC = registers.NewProgramCounter(memory.ProgramOrigin)
	mc.Stack.Reset()
	mc.awaitingKey = notAwaiting
	mc.awaitingResult.Reset()
	mc.LastResult.Reset()
	mc.instructionCount = 0
}

// InstructionCount returns the number of instructions executed since the
// last Reset(). Implements the random.Clock interface.
func (mc *CPU) InstructionCount() int64 {
	return mc.instructionCount
}

// AwaitingKey returns the index of the register that will receive the next
// key press. Returns false if the CPU is not waiting for a key press.
func (mc *CPU) AwaitingKey() (int, bool) {
	if mc.awaitingKey == notAwaiting {
		return 0, false
	}
	return mc.awaitingKey, true
}

// the value of register 15 is set according to the condition
func (mc *CPU) setFlag(cond bool) {
	if cond {
		mc.V[Flag].Load(1)
	} else {
		mc.V[Flag].Load(0)
	}
}


// ExecuteInstruction steps CPU forward one instruction.
//
// The error return value wraps memory.AddressOutOfRange, stack.Overflow or
// stack.Underflow. An invalid opcode is reported in the returned Result and
// is not an error.
func (mc *CPU) ExecuteInstruction() (execution.Result, error) {
	// while waiting for a key press no opcode is fetched
	if mc.awaitingKey != notAwaiting {
		key, ok := mc.keys.Heard()
		if !ok {
			mc.LastResult = mc.awaitingResult
			return mc.LastResult, nil
		}
		mc.V[mc.awaitingKey].Load(key)
		mc.awaitingKey = notAwaiting
		mc.LastResult = mc.awaitingResult
		mc.LastResult.Outcome = execution.Executed
		mc.instructionCount++
		return mc.LastResult, nil
	}

	address := mc.PC.Address()

	hi, err := mc.mem.Read(address)
	if err != nil {
		return execution.Result{}, fmt.Errorf("cpu: fetch: %w", err)
	}
	lo, err := mc.mem.Read(address + 1)
	if err != nil {
		return execution.Result{}, fmt.Errorf("cpu: fetch: %w", err)
	}

	opcode := instructions.NewOpcode(hi, lo)
	mc.PC.Add(2)

	result := execution.Result{
		Outcome: execution.Executed,
		Address: address,
		Opcode:  opcode,
	}

	defn, ok := instructions.Decode(opcode)
	if !ok {
		result.Outcome = execution.InvalidOpcode
		mc.LastResult = result
		return result, nil
	}
	result.Defn = defn

	err = mc.execute(defn, opcode, &result)
	mc.LastResult = result
	if err != nil {
		return result, err
	}

	if result.Outcome == execution.Executed {
		mc.instructionCount++
	}

	return result, nil
}

func (mc *CPU) quirks() (shift, loadStore, jump, logic bool) {
	if mc.instance == nil {
		return false, false, false, false
	}
	q := mc.instance.Prefs.Live()
	return q.ShiftUsesVY, q.LoadStoreIncrementsI, q.JumpUsesVX, q.LogicResetsVF
}

func (mc *CPU) execute(defn instructions.Definition, opcode instructions.Opcode, result *execution.Result) error {
	x := opcode.X()
	y := opcode.Y()
	vx := &mc.V[x]
	vy := mc.V[y].Value()

	shiftQuirk, loadStoreQuirk, jumpQuirk, logicQuirk := mc.quirks()

	switch defn.Operator {
	case instructions.CLS:
		mc.disp.Clear()

	case instructions.RET:
		address, err := mc.Stack.Pop()
		if err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		mc.PC.Load(address)

	case instructions.JP:
		mc.PC.Load(opcode.NNN())

	case instructions.CALL:
		err := mc.Stack.Push(mc.PC.Address())
		if err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		mc.PC.Load(opcode.NNN())

	case instructions.SEImm:
		if vx.Value() == opcode.KK() {
			mc.PC.Add(2)
		}

	case instructions.SNEImm:
		if vx.Value() != opcode.KK() {
			mc.PC.Add(2)
		}

	case instructions.SEReg:
		if vx.Value() == vy {
			mc.PC.Add(2)
		}

	case instructions.SNEReg:
		if vx.Value() != vy {
			mc.PC.Add(2)
		}

	case instructions.LDImm:
		vx.Load(opcode.KK())

	case instructions.ADDImm:
		// VF is unaffected by this form of addition
		vx.Add(opcode.KK())

	case instructions.LDReg:
		vx.Load(vy)

	case instructions.OR:
		vx.OR(vy)
		if logicQuirk {
			mc.setFlag(false)
		}

	case instructions.AND:
		vx.AND(vy)
		if logicQuirk {
			mc.setFlag(false)
		}

	case instructions.XOR:
		vx.XOR(vy)
		if logicQuirk {
			mc.setFlag(false)
		}

	// for the following arithmetic instructions the flag is set after the
	// result is stored. if x is the flag register then the flag value takes
	// precedence

	case instructions.ADDReg:
		mc.setFlag(vx.Add(vy))

	case instructions.SUB:
		mc.setFlag(vx.Subtract(vy))

	case instructions.SUBN:
		mc.setFlag(vx.ReverseSubtract(vy))

	case instructions.SHR:
		if shiftQuirk {
			vx.Load(vy)
		}
		mc.setFlag(vx.SHR())

	case instructions.SHL:
		if shiftQuirk {
			vx.Load(vy)
		}
		mc.setFlag(vx.SHL())

	case instructions.LDI:
		mc.I.Load(opcode.NNN())

	case instructions.JPOffset:
		offset := mc.V[0].Value()
		if jumpQuirk {
			offset = vx.Value()
		}
		mc.PC.Load(opcode.NNN() + uint16(offset))

	case instructions.RND:
		vx.Load(mc.instance.Random.Byte() & opcode.KK())

	case instructions.DRW:
		n := int(opcode.N())
		if err := mc.mem.CheckRange(mc.I.Address(), n); err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		sprite := make([]uint8, n)
		for i := range sprite {
			d, err := mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
			}
			sprite[i] = d
		}
		mc.setFlag(mc.disp.DrawSprite(vx.Value(), vy, sprite))

	case instructions.SKP:
		if mc.keys.IsPressed(vx.Value()) {
			mc.PC.Add(2)
		}

	case instructions.SKNP:
		if !mc.keys.IsPressed(vx.Value()) {
			mc.PC.Add(2)
		}

	case instructions.LDVxDT:
		vx.Load(mc.tmr.Delay())

	case instructions.LDKey:
		mc.keys.Listen()
		mc.awaitingKey = x
		result.Outcome = execution.AwaitingKey
		mc.awaitingResult = *result

	case instructions.LDDTVx:
		mc.tmr.SetDelay(vx.Value())

	case instructions.LDSTVx:
		mc.tmr.SetSound(vx.Value())

	case instructions.ADDI:
		// VF is unaffected
		mc.I.Add(uint16(vx.Value()))

	case instructions.LDFont:
		mc.I.Load(memory.GlyphAddress(vx.Value()))

	case instructions.LDBCD:
		if err := mc.mem.CheckRange(mc.I.Address(), 3); err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		v := vx.Value()
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), d); err != nil {
				return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
			}
		}

	case instructions.LDStore:
		if err := mc.mem.CheckRange(mc.I.Address(), x+1); err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		for i := 0; i <= x; i++ {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), mc.V[i].Value()); err != nil {
				return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
			}
		}
		if loadStoreQuirk {
			mc.I.Add(uint16(x + 1))
		}

	case instructions.LDLoad:
		if err := mc.mem.CheckRange(mc.I.Address(), x+1); err != nil {
			return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
		}
		for i := 0; i <= x; i++ {
			d, err := mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", defn.Mnemonic, err)
			}
			mc.V[i].Load(d)
		}
		if loadStoreQuirk {
			mc.I.Add(uint16(x + 1))
		}

	default:
		return fmt.Errorf("cpu: unimplemented instruction (%s)", defn.Mnemonic)
	}

	return nil
}
