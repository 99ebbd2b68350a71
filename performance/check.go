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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/hardware"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
)

// CheckHalted is the pattern of the error returned by Check() when the
// program reaches an invalid opcode before the duration has elapsed.
const CheckHalted = "performance: halted after %d instructions: %v"

// Check the performance of the emulator using the program already loaded into
// the VM.
//
// Emulation runs uncapped for the specified duration. The timers are ticked
// after every instructionsPerFrame instructions. CPU, memory and trace
// profiles are created as specified by the profile argument.
func Check(output io.Writer, profile Profile, vm *hardware.VM, instructionsPerFrame int, duration time.Duration) error {
	if instructionsPerFrame <= 0 {
		return curated.Errorf("performance: invalid instructions per frame (%d)", instructionsPerFrame)
	}

	startCount := vm.InstructionCount()
	var elapsed time.Duration

	runner := func() error {
		timesUp := time.After(duration)
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			for i := 0; i < instructionsPerFrame; i++ {
				r, err := vm.Step()
				if err != nil {
					return curated.Errorf("performance: %v", err)
				}
				if r.Outcome == execution.InvalidOpcode {
					return curated.Errorf(CheckHalted, vm.InstructionCount()-startCount, r)
				}
				if r.Outcome == execution.AwaitingKey {
					break // for loop
				}
			}

			vm.TickTimers()
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return err
	}

	n := vm.InstructionCount() - startCount
	ips, accuracy := CalcRate(n, elapsed.Seconds(), instructionsPerFrame)

	_, err = fmt.Fprintf(output, "%.2f instructions per second (%d instructions in %.2f seconds) %.1f%%\n",
		ips, n, elapsed.Seconds(), accuracy)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
