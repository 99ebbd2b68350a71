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

package hardware

import (
	"github.com/Martianmellow12/CHIP-8/hardware/cpu"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/display"
	"github.com/Martianmellow12/CHIP-8/hardware/instance"
	"github.com/Martianmellow12/CHIP-8/hardware/keypad"
	"github.com/Martianmellow12/CHIP-8/hardware/memory"
	"github.com/Martianmellow12/CHIP-8/hardware/preferences"
	"github.com/Martianmellow12/CHIP-8/hardware/timers"
	"github.com/Martianmellow12/CHIP-8/logger"
)

// VM struct is the main container for the emulated components of the
// interpreter.
type VM struct {
	Instance *instance.Instance

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad
	Timers  *timers.Timers
}

// NewVM creates a new VM and everything associated with the hardware. It is
// used for all aspects of emulation.
//
// The prefs argument can be nil, in which case the preferences are loaded
// from the default preferences file.
func NewVM(label instance.Label, prefs *preferences.Preferences) (*VM, error) {
	vm := &VM{
		Mem:     memory.NewMemory(),
		Display: &display.Display{},
		Keypad:  keypad.NewKeypad(),
		Timers:  &timers.Timers{},
	}

	var err error

	vm.Instance, err = instance.NewInstance(vm, prefs)
	if err != nil {
		return nil, err
	}
	vm.Instance.Label = label

	vm.CPU = cpu.NewCPU(vm.Instance, vm.Mem, vm.Display, vm.Keypad, vm.Timers)

	return vm, nil
}

// InstructionCount returns the number of instructions executed since the last
// reset. Implements the random.Clock interface.
func (vm *VM) InstructionCount() int64 {
	if vm.CPU == nil {
		return 0
	}
	return vm.CPU.InstructionCount()
}

// Reset the VM to its power-on state. Memory is cleared and the font table
// reinstalled.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.CPU.Reset()
	vm.Display.Clear()
	vm.Keypad.Reset()
	vm.Timers.Reset()
}

// Load program into memory at the offset and reset the rest of the VM. The PC
// is set to the offset.
//
// The error return wraps memory.ProgramTooLarge or memory.AddressOutOfRange.
// If an error is returned then the state of the VM is unchanged.
func (vm *VM) Load(data []uint8, offset uint16) error {
	if err := memory.CheckProgram(len(data), offset); err != nil {
		return err
	}

	vm.Reset()

	if err := vm.Mem.LoadProgram(data, offset); err != nil {
		return err
	}
	vm.CPU.PC.Load(offset)

	logger.Logf(vm.Instance, "vm", "loaded %d bytes at %#04x", len(data), offset)

	return nil
}

// LoadProgram loads the program at the conventional program origin.
func (vm *VM) LoadProgram(data []uint8) error {
	return vm.Load(data, memory.ProgramOrigin)
}

// Step the emulation one CPU instruction.
//
// The error return wraps memory.AddressOutOfRange, stack.Overflow or
// stack.Underflow. An invalid opcode is not an error and is reported in the
// Outcome field of the Result.
func (vm *VM) Step() (execution.Result, error) {
	return vm.CPU.ExecuteInstruction()
}

// TickTimers decreases the delay and sound timers. Should be called at 60Hz.
func (vm *VM) TickTimers() {
	vm.Timers.Tick()
}

// SetKey changes the state of a key on the keypad. Keys outside the range 0
// to 15 are ignored.
func (vm *VM) SetKey(key uint8, pressed bool) {
	vm.Keypad.Set(key, pressed)
}

// FrameBuffer returns a copy of the current frame.
func (vm *VM) FrameBuffer() display.Frame {
	return vm.Display.Frame()
}

// SoundTimer returns the current value of the sound timer. The host should
// play a tone while this value is greater than zero.
func (vm *VM) SoundTimer() uint8 {
	return vm.Timers.Sound()
}
