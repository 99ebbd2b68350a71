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
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/Martianmellow12/CHIP-8/hardware/cpu"
	"github.com/Martianmellow12/CHIP-8/hardware/display"
	"github.com/Martianmellow12/CHIP-8/hardware/keypad"
	"github.com/Martianmellow12/CHIP-8/hardware/memory"
)

// CPUState is the state of the CPU at the moment of the snapshot.
type CPUState struct {
	V  [cpu.NumRegisters]uint8
	I  uint16
	PC uint16

	SP    int
	Stack []uint16

	Delay uint8
	Sound uint8

	// the register waiting for a key press. -1 if the CPU is not waiting
	AwaitingKey int

	InstructionCount int64
}

// Snapshot is a copy of the VM state. It is produced by the VM.Snapshot()
// function and shares no data with the VM.
type Snapshot struct {
	CPU    CPUState
	Memory []uint8
	Frame  display.Frame
	Keys   [keypad.NumKeys]bool
}

// Snapshot the state of the VM.
func (vm *VM) Snapshot() *Snapshot {
	s := &Snapshot{
		Memory: vm.Mem.Bytes(),
		Frame:  vm.Display.Frame(),
		Keys:   vm.Keypad.Keys(),
	}

	for i := range vm.CPU.V {
		s.CPU.V[i] = vm.CPU.V[i].Value()
	}
	s.CPU.I = vm.CPU.I.Address()
	s.CPU.PC = vm.CPU.PC.Address()
	s.CPU.SP = vm.CPU.Stack.Pointer()
	s.CPU.Stack = vm.CPU.Stack.Entries()
	s.CPU.Delay = vm.Timers.Delay()
	s.CPU.Sound = vm.Timers.Sound()
	s.CPU.InstructionCount = vm.CPU.InstructionCount()

	s.CPU.AwaitingKey = -1
	if reg, ok := vm.CPU.AwaitingKey(); ok {
		s.CPU.AwaitingKey = reg
	}

	return s
}

// String returns the registers, timers and stack in a human readable form.
func (s *Snapshot) String() string {
	b := strings.Builder{}

	b.WriteString("#### REGISTERS ####\n")
	for i, v := range s.CPU.V {
		b.WriteString(fmt.Sprintf("\tV%X: %#02x (%d)\n", i, v, v))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("\tI: %#04x (%d)\n", s.CPU.I, s.CPU.I))
	b.WriteString(fmt.Sprintf("\tDELAY: %#02x (%d)\n", s.CPU.Delay, s.CPU.Delay))
	b.WriteString(fmt.Sprintf("\tSOUND: %#02x (%d)\n", s.CPU.Sound, s.CPU.Sound))
	b.WriteString(fmt.Sprintf("\tPC: %#04x (%d)\n", s.CPU.PC, s.CPU.PC))
	b.WriteString(fmt.Sprintf("\tSP: %d\n", s.CPU.SP))
	if s.CPU.AwaitingKey >= 0 {
		b.WriteString(fmt.Sprintf("\tawaiting key into V%X\n", s.CPU.AwaitingKey))
	}
	b.WriteString("\n")

	b.WriteString("#### STACK ####\n")
	for i, a := range s.CPU.Stack {
		b.WriteString(fmt.Sprintf("\t%2d: %#04x\n", i, a))
	}

	return b.String()
}

// WriteMemory writes the contents of memory as rows of sixteen bytes. Rows
// that contain only zero bytes are omitted.
func (s *Snapshot) WriteMemory(w io.Writer) error {
	for row := 0; row < len(s.Memory); row += 16 {
		end := min(row+16, len(s.Memory))
		data := s.Memory[row:end]

		empty := true
		for _, d := range data {
			if d != 0 {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		line := strings.Builder{}
		line.WriteString(fmt.Sprintf("%03x:", row))
		for _, d := range data {
			line.WriteString(fmt.Sprintf(" %02x", d))
		}
		line.WriteString("\n")

		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraph writes a graphviz representation of the CPU state.
func (s *Snapshot) WriteGraph(w io.Writer) {
	memviz.Map(w, &s.CPU)
}

// ReadMemory returns the byte at the address in the snapshot.
func (s *Snapshot) ReadMemory(address uint16) (uint8, error) {
	if int(address) >= len(s.Memory) {
		return 0, fmt.Errorf("snapshot: %w: %#04x", memory.AddressOutOfRange, address)
	}
	return s.Memory[address], nil
}
