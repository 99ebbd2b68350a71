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

package cpu_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/cpu"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/stack"
	"github.com/Martianmellow12/CHIP-8/hardware/display"
	"github.com/Martianmellow12/CHIP-8/hardware/instance"
	"github.com/Martianmellow12/CHIP-8/hardware/keypad"
	"github.com/Martianmellow12/CHIP-8/hardware/memory"
	"github.com/Martianmellow12/CHIP-8/hardware/preferences"
	"github.com/Martianmellow12/CHIP-8/hardware/timers"
	"github.com/Martianmellow12/CHIP-8/random"
	"github.com/Martianmellow12/CHIP-8/test"
)

type checkedRange struct {
	address uint16
	n       int
}

type mockMem struct {
	internal [memory.Size]uint8
	checked  []checkedRange
}

// putInstructions writes each opcode into memory, starting at origin.
// returns the address following the last opcode
func (mem *mockMem) putInstructions(origin uint16, opcodes ...uint16) uint16 {
	for _, op := range opcodes {
		mem.internal[origin] = uint8(op >> 8)
		mem.internal[origin+1] = uint8(op)
		origin += 2
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x", d, value, address)
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address >= memory.Size {
		return 0, fmt.Errorf("mock: %w", memory.AddressOutOfRange)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address >= memory.Size {
		return fmt.Errorf("mock: %w", memory.AddressOutOfRange)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) CheckRange(address uint16, n int) error {
	mem.checked = append(mem.checked, checkedRange{address: address, n: n})
	if int(address)+n-1 >= memory.Size {
		return fmt.Errorf("mock: %w", memory.AddressOutOfRange)
	}
	return nil
}

type machine struct {
	mc   *cpu.CPU
	ins  *instance.Instance
	mem  *mockMem
	disp *display.Display
	keys *keypad.Keypad
	tmr  *timers.Timers
}

func newMachine(t *testing.T) *machine {
	t.Helper()

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(nil, prefs)
	test.DemandSuccess(t, err)
	ins.Normalise()

	m := &machine{
		ins:  ins,
		mem:  &mockMem{},
		disp: &display.Display{},
		keys: keypad.NewKeypad(),
		tmr:  &timers.Timers{},
	}
	m.mc = cpu.NewCPU(ins, m.mem, m.disp, m.keys, m.tmr)
	m.ins.Random = random.NewRandom(m.mc)
	m.ins.Random.ZeroSeed = true

	return m
}

// run a program from the program origin
func (m *machine) program(opcodes ...uint16) {
	m.mem.putInstructions(memory.ProgramOrigin, opcodes...)
	m.mc.PC.Load(memory.ProgramOrigin)
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	result, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != execution.Executed {
		t.Fatalf("unexpected outcome: %s", result)
	}
	return result
}

func steps(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		step(t, mc)
	}
}

func TestLoadAdd(t *testing.T) {
	m := newMachine(t)
	m.program(0x6005, 0x7003)

	r := step(t, m.mc)
	test.ExpectEquality(t, r.Address, 0x200)
	test.ExpectEquality(t, m.mc.V[0].Value(), 5)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)

	step(t, m.mc)
	test.ExpectEquality(t, m.mc.V[0].Value(), 8)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)
	test.ExpectEquality(t, m.mc.InstructionCount(), 2)
}

func TestAddImmediateLeavesFlag(t *testing.T) {
	m := newMachine(t)
	m.program(0x6f01, 0x60ff, 0x7002)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0x01)
}

func TestAddImmediateTotal(t *testing.T) {
	m := newMachine(t)
	for v := 0; v <= 0xff; v++ {
		for n := 0; n <= 0xff; n += 5 {
			m.program(0x6000|uint16(v), 0x7000|uint16(n))
			steps(t, m.mc, 2)
			test.DemandEquality(t, m.mc.V[0].Value(), uint8((v+n)%256), v, n)
		}
	}
}

func TestArithmetic(t *testing.T) {
	m := newMachine(t)

	// add with carry. the second addition clears the flag set by the first
	m.program(0x60ff, 0x6102, 0x8014, 0x6203, 0x8024)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x04)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)

	// subtract. flag is set when there is no borrow
	m.program(0x6005, 0x6103, 0x8015)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	m.program(0x6003, 0x6105, 0x8015)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0xfe)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)

	m.program(0x6005, 0x6105, 0x8015)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	// reverse subtract
	m.program(0x6003, 0x6105, 0x8017)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	m.program(0x6005, 0x6103, 0x8017)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0xfe)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)
}

func TestShift(t *testing.T) {
	m := newMachine(t)

	m.program(0x6003, 0x6180, 0x8016)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, m.mc.V[1].Value(), 0x80)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	m.program(0x6081, 0x801e, 0x801e)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x04)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)

	// with the quirk, the value of Vy is shifted into Vx
	test.DemandSuccess(t, m.ins.Prefs.ShiftUsesVY.Set(true))
	m.program(0x6003, 0x6181, 0x8016)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x40)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)
}

func TestFlagAsDestination(t *testing.T) {
	m := newMachine(t)

	// the flag value overwrites the result when x is the flag register
	m.program(0x6fff, 0x6102, 0x8f14)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	m.program(0x6f01, 0x6102, 0x8f15)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)
}

func TestLogic(t *testing.T) {
	m := newMachine(t)

	m.program(0x6f01, 0x60f0, 0x610f, 0x8011, 0x6233, 0x8022, 0x8013)
	steps(t, m.mc, 4)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0xff)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x33)
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x3c)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	// the logic quirk clears the flag
	test.DemandSuccess(t, m.ins.Prefs.LogicResetsVF.Set(true))
	m.program(0x6f01, 0x8011)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)
}

func TestLoadRegister(t *testing.T) {
	m := newMachine(t)
	m.program(0x61aa, 0x8010)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0xaa)
}

func TestSkips(t *testing.T) {
	m := newMachine(t)

	m.program(0x6005, 0x3005)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)

	m.program(0x6005, 0x3006)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)

	m.program(0x6005, 0x4006)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)

	m.program(0x6005, 0x6105, 0x5010)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x208)

	m.program(0x6005, 0x6105, 0x9010)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)

	m.program(0x6005, 0x6106, 0x9010)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x208)
}

func TestJump(t *testing.T) {
	m := newMachine(t)

	m.program(0x1345)
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x345)

	m.program(0x6010, 0xb300)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x310)

	// with the quirk, the register is chosen by the high nibble of nnn
	test.DemandSuccess(t, m.ins.Prefs.JumpUsesVX.Set(true))
	m.program(0x6010, 0x6320, 0xb300)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x320)

	// the jump wraps around the address space
	test.DemandSuccess(t, m.ins.Prefs.JumpUsesVX.Set(false))
	m.program(0x60ff, 0xbfff)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x0fe)
}

func TestCallReturn(t *testing.T) {
	m := newMachine(t)

	m.program(0x2300)
	m.mem.putInstructions(0x300, 0x6001, 0x00ee)

	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x300)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 1)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
	test.ExpectEquality(t, m.mc.V[0].Value(), 1)
}

func TestStackLimits(t *testing.T) {
	m := newMachine(t)

	// each call is to the next instruction
	origin := memory.ProgramOrigin
	for i := 0; i <= stack.Depth; i++ {
		origin = m.mem.putInstructions(origin, 0x2000|(origin+2))
	}
	m.mc.PC.Load(memory.ProgramOrigin)

	steps(t, m.mc, stack.Depth)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), stack.Depth)

	_, err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, stack.Overflow))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), stack.Depth)

	m = newMachine(t)
	m.program(0x00ee)
	_, err = m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, stack.Underflow))
}

func TestRandom(t *testing.T) {
	m := newMachine(t)

	for kk := 0; kk <= 0xff; kk++ {
		m.program(0xc000 | uint16(kk))
		steps(t, m.mc, 1)
		r := m.mc.V[0].Value()
		test.DemandEquality(t, r&^uint8(kk), 0, kk)
	}
}

func TestDraw(t *testing.T) {
	m := newMachine(t)

	// draw the zero glyph twice at 10,5
	m.program(0x6000, 0xf029, 0x610a, 0x6205, 0xd125, 0xd125)
	steps(t, m.mc, 4)
	for i, b := range memory.Font[0] {
		m.mem.internal[memory.FontOrigin+uint16(i)] = b
	}

	before := m.disp.Frame()
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 0)
	test.ExpectEquality(t, m.disp.Pixel(10, 5), 1)

	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)
	test.ExpectEquality(t, m.disp.Frame(), before)
}

func TestDrawOutOfRange(t *testing.T) {
	m := newMachine(t)
	m.program(0x6f01, 0xaffe, 0xd005)
	steps(t, m.mc, 2)

	_, err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)
	test.ExpectEquality(t, m.disp.Frame(), display.Frame{})
}

func TestClearScreen(t *testing.T) {
	m := newMachine(t)
	m.disp.DrawSprite(0, 0, []uint8{0xff, 0xff, 0xff})
	m.program(0x00e0)
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.disp.Frame(), display.Frame{})
}

func TestKeySkips(t *testing.T) {
	m := newMachine(t)

	m.keys.Set(0xb, true)
	m.program(0x600b, 0xe09e)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)

	m.program(0x600b, 0xe0a1)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)

	m.keys.Set(0xb, false)
	m.program(0x600b, 0xe0a1)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)
}

func TestWaitForKey(t *testing.T) {
	m := newMachine(t)
	m.program(0xfa0a, 0x6001)

	r, err := m.mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Outcome, execution.AwaitingKey)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
	reg, ok := m.mc.AwaitingKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg, 0xa)

	// no opcode is consumed while waiting
	count := m.mc.InstructionCount()
	for i := 0; i < 10; i++ {
		r, err = m.mc.ExecuteInstruction()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, r.Outcome, execution.AwaitingKey)
	}
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, m.mc.InstructionCount(), count)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0)

	m.keys.Set(7, true)
	r = step(t, m.mc)
	test.ExpectEquality(t, r.Address, 0x200)
	test.ExpectEquality(t, m.mc.V[0xa].Value(), 7)
	_, ok = m.mc.AwaitingKey()
	test.ExpectFailure(t, ok)

	// normal execution resumes
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[0].Value(), 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)
}

func TestTimerInstructions(t *testing.T) {
	m := newMachine(t)
	m.program(0x603c, 0xf015, 0xf018, 0xf107)
	steps(t, m.mc, 3)
	test.ExpectEquality(t, m.tmr.Delay(), 60)
	test.ExpectEquality(t, m.tmr.Sound(), 60)

	m.tmr.Tick()
	steps(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.V[1].Value(), 59)
}

func TestAddressRegister(t *testing.T) {
	m := newMachine(t)

	m.program(0x6f01, 0xa123, 0x6010, 0xf01e)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I.Address(), 0x123)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I.Address(), 0x133)
	test.ExpectEquality(t, m.mc.V[cpu.Flag].Value(), 1)

	// font location
	m.program(0x600c, 0xf029)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I.Address(), memory.GlyphAddress(0xc))
}

func TestBCD(t *testing.T) {
	m := newMachine(t)
	m.program(0x60fe, 0xa400, 0xf033)
	steps(t, m.mc, 3)
	m.mem.assert(t, 0x400, 2)
	m.mem.assert(t, 0x401, 5)
	m.mem.assert(t, 0x402, 4)
	test.ExpectEquality(t, m.mc.I.Address(), 0x400)
}

func TestStoreLoad(t *testing.T) {
	m := newMachine(t)

	m.program(0x6001, 0x6102, 0x6203, 0x6304, 0xa400, 0xf355)
	steps(t, m.mc, 6)
	for i := uint16(0); i < 4; i++ {
		m.mem.assert(t, 0x400+i, uint8(i+1))
	}
	m.mem.assert(t, 0x404, 0)
	test.ExpectEquality(t, m.mc.I.Address(), 0x400)

	m.mem.putInstructions(0x500, 0x0a0b, 0x0c0d)
	m.program(0xa500, 0xf265)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.V[0].Value(), 0x0a)
	test.ExpectEquality(t, m.mc.V[1].Value(), 0x0b)
	test.ExpectEquality(t, m.mc.V[2].Value(), 0x0c)
	test.ExpectEquality(t, m.mc.V[3].Value(), 0x04)

	// the quirk leaves I after the last register
	test.DemandSuccess(t, m.ins.Prefs.LoadStoreIncrementsI.Set(true))
	m.program(0xa500, 0xf265)
	steps(t, m.mc, 2)
	test.ExpectEquality(t, m.mc.I.Address(), 0x503)
}

func TestRangeCheckedByMemory(t *testing.T) {
	m := newMachine(t)

	// DRW, BCD, Fx55 and Fx65 with I at 0x300
	m.program(0xa300, 0xd003, 0xf033, 0xf255, 0xf365)
	steps(t, m.mc, 5)

	test.ExpectEquality(t, len(m.mem.checked), 4)
	if len(m.mem.checked) == 4 {
		test.ExpectEquality(t, m.mem.checked[0], checkedRange{address: 0x300, n: 3})
		test.ExpectEquality(t, m.mem.checked[1], checkedRange{address: 0x300, n: 3})
		test.ExpectEquality(t, m.mem.checked[2], checkedRange{address: 0x300, n: 3})
		test.ExpectEquality(t, m.mem.checked[3], checkedRange{address: 0x300, n: 4})
	}
}

func TestStoreOutOfRange(t *testing.T) {
	m := newMachine(t)
	m.program(0x60aa, 0xaffe, 0xf255)
	steps(t, m.mc, 2)

	_, err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, memory.AddressOutOfRange))

	// nothing has been written
	m.mem.assert(t, 0xffe, 0)
	m.mem.assert(t, 0xfff, 0)
}

func TestInvalidOpcode(t *testing.T) {
	m := newMachine(t)
	m.program(0x6001, 0xffff)
	steps(t, m.mc, 1)

	r, err := m.mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Outcome, execution.InvalidOpcode)
	test.ExpectEquality(t, r.Opcode, 0xffff)
	test.ExpectEquality(t, r.Address, 0x202)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)
	test.ExpectEquality(t, m.mc.V[0].Value(), 1)
}

func TestFetchOutOfRange(t *testing.T) {
	m := newMachine(t)
	m.mc.PC.Load(0xfff)

	_, err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, memory.AddressOutOfRange))
	test.ExpectEquality(t, m.mc.PC.Address(), 0xfff)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	m.program(0x6001, 0xa123, 0x2300)
	steps(t, m.mc, 3)

	m.mc.Reset()
	test.ExpectEquality(t, m.mc.V[0].Value(), 0)
	test.ExpectEquality(t, m.mc.I.Address(), 0)
	test.ExpectEquality(t, m.mc.PC.Address(), memory.ProgramOrigin)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
	test.ExpectEquality(t, m.mc.InstructionCount(), 0)
}
