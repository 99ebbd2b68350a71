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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/hardware"
	"github.com/Martianmellow12/CHIP-8/hardware/instance"
	"github.com/Martianmellow12/CHIP-8/hardware/preferences"
	"github.com/Martianmellow12/CHIP-8/performance"
	"github.com/Martianmellow12/CHIP-8/test"
)

func newVM(t *testing.T, program ...uint8) *hardware.VM {
	t.Helper()
	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	vm, err := hardware.NewVM(instance.Performance, prefs)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vm.LoadProgram(program))
	return vm
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	ips, accuracy := performance.CalcRate(660, 1.0, 11)
	test.ExpectEquality(t, ips, 660.0)
	test.ExpectEquality(t, accuracy, 100.0)

	ips, _ = performance.CalcRate(100, 0, 11)
	test.ExpectEquality(t, ips, 0.0)
}

func TestCheck(t *testing.T) {
	// JP 0x200
	vm := newVM(t, 0x12, 0x00)

	tw := &test.CompareWriter{}
	err := performance.Check(tw, performance.ProfileNone, vm, 11, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "instructions per second"), tw.String())
	test.ExpectSuccess(t, vm.InstructionCount() > 0)
}

func TestCheckHalted(t *testing.T) {
	// ADD V0, 0x01; invalid opcode
	vm := newVM(t, 0x70, 0x01, 0xff, 0xff)

	tw := &test.CompareWriter{}
	err := performance.Check(tw, performance.ProfileNone, vm, 11, time.Second)
	test.ExpectSuccess(t, curated.Is(err, performance.CheckHalted))
	test.ExpectEquality(t, tw.String(), "")
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileCPU|performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(hdr + "_trace.profile")
	test.ExpectFailure(t, err)
}
