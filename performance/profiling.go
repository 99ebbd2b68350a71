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
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/Martianmellow12/CHIP-8/curated"
)

// Profile is used to specify the type of profiling to perform by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone  Profile = 0b0000
	ProfileCPU   Profile = 0b0001
	ProfileMem   Profile = 0b0010
	ProfileTrace Profile = 0b0100
)

// ParseProfileString converts a string to a Profile value. Valid strings are
// "NONE", "CPU", "MEM" and "TRACE", combined with commas. Comparison is not
// case sensitive.
func ParseProfileString(profile string) (Profile, error) {
	p := ProfileNone

	for _, s := range strings.Split(profile, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", s)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function with the requested profiling. Output
// files are named with the filenameHeader followed by the profile type.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			err := f.Close()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
