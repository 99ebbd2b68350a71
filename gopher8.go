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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/digest"
	"github.com/Martianmellow12/CHIP-8/gui"
	"github.com/Martianmellow12/CHIP-8/gui/sdlplay"
	"github.com/Martianmellow12/CHIP-8/gui/termplay"
	"github.com/Martianmellow12/CHIP-8/hardware"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/instructions"
	"github.com/Martianmellow12/CHIP-8/hardware/instance"
	"github.com/Martianmellow12/CHIP-8/hardware/memory"
	"github.com/Martianmellow12/CHIP-8/logger"
	"github.com/Martianmellow12/CHIP-8/modalflag"
	"github.com/Martianmellow12/CHIP-8/performance"
	"github.com/Martianmellow12/CHIP-8/playmode"
	"github.com/Martianmellow12/CHIP-8/prefs"
	"github.com/Martianmellow12/CHIP-8/resources"
	"github.com/Martianmellow12/CHIP-8/romloader"
	"github.com/Martianmellow12/CHIP-8/statsview"
	"github.com/Martianmellow12/CHIP-8/wavwriter"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires that window creation and event handling happen on the main
// thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run: \"key::value; key::value\"")
	stats := md.AddBool("statsview", false, "run the stats server (requires the statsview build tag)")
	md.AddSubModes("RUN", "PLAY", "TERM", "PERFORMANCE", "DUMP")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		logger.SetEcho(output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN", "PLAY":
		err = play(md, false)
	case "TERM":
		err = play(md, true)
	case "PERFORMANCE":
		err = perform(md)
	case "DUMP":
		err = dump(md)
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// loadVM creates a new VM and loads the program named by the single remaining
// argument.
func loadVM(md *modalflag.Modes, label instance.Label, origin uint16, seed int64) (*hardware.VM, romloader.Loader, error) {
	var ld romloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, ld, curated.Errorf("program file required")
	case 1:
	default:
		return nil, ld, curated.Errorf("too many arguments")
	}

	ld = romloader.NewLoader(md.GetArg(0))
	if !ld.IsRecognised() {
		logger.Logf(logger.Allow, "gopher8", "unrecognised file extension: %s", ld.Filename)
	}

	err := ld.Load()
	if err != nil {
		return nil, ld, err
	}

	vm, err := hardware.NewVM(label, nil)
	if err != nil {
		return nil, ld, err
	}
	vm.Instance.Random.UserSeed = uint64(seed)

	err = vm.Load(ld.Data, origin)
	if err != nil {
		return nil, ld, err
	}

	logger.Logf(logger.Allow, "gopher8", "%s (%s)", ld.ShortName(), ld.Hash)

	return vm, ld, nil
}

func playmodePreferences() (*playmode.Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return playmode.NewPreferences(pth)
}

func play(md *modalflag.Modes, terminal bool) error {
	md.NewMode()

	ipf := md.AddInt("ipf", 0, "instructions per frame (0 to use preferences value)")
	scale := md.AddInt("scale", 0, "display scaling (0 to use preferences value)")
	wav := md.AddString("wav", "", "record audio to wav file")
	seed := md.AddInt64("seed", 0, "seed for random numbers (0 for a random seed)")
	origin := md.AddAddress("origin", memory.ProgramOrigin, "load address of the program")
	save := md.AddBool("saveprefs", false, "save the ipf and scale values as the new preferences")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	vm, _, err := loadVM(md, instance.Main, *origin, *seed)
	if err != nil {
		return err
	}

	pp, err := playmodePreferences()
	if err != nil {
		return err
	}
	if *ipf > 0 {
		err = pp.InstructionsPerFrame.Set(*ipf)
		if err != nil {
			return err
		}
	}
	if *scale > 0 {
		err = pp.Scale.Set(*scale)
		if err != nil {
			return err
		}
	}
	if *save {
		err = pp.Save()
		if err != nil {
			return err
		}
	}

	var g gui.GUI
	if terminal {
		tp, err := termplay.NewTermPlay()
		if err != nil {
			return err
		}
		g = tp
	} else {
		sp, err := sdlplay.NewSdlPlay(pp.Scale.Get().(int))
		if err != nil {
			return err
		}
		g = sp
	}
	defer g.Destroy()

	pm := playmode.NewPlaymode(vm, g, pp)

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		pm.AddMixer(aw)
	}

	return pm.Play()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	ipf := md.AddInt("ipf", 0, "instructions per frame (0 to use preferences value)")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "create profiling reports: CPU, MEM, TRACE (comma separated)")
	seed := md.AddInt64("seed", 0, "seed for random numbers (0 for a random seed)")
	origin := md.AddAddress("origin", memory.ProgramOrigin, "load address of the program")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	vm, _, err := loadVM(md, instance.Performance, *origin, *seed)
	if err != nil {
		return err
	}

	n := *ipf
	if n <= 0 {
		pp, err := playmodePreferences()
		if err != nil {
			return err
		}
		n = pp.InstructionsPerFrame.Get().(int)
	}

	return performance.Check(md.Output, prf, vm, n, *duration)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	steps := md.AddInt("steps", 0, "number of instructions to execute before the dump")
	ipf := md.AddInt("ipf", 11, "instructions between each tick of the timers")
	listing := md.AddBool("listing", false, "print a disassembly of the program")
	showMemory := md.AddBool("memory", false, "include memory in the dump")
	memviz := md.AddString("memviz", "", "write a graphviz dot file of the VM state")
	seed := md.AddInt64("seed", 0, "seed for random numbers (0 for a random seed)")
	origin := md.AddAddress("origin", memory.ProgramOrigin, "load address of the program")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	vm, ld, err := loadVM(md, instance.Dump, *origin, *seed)
	if err != nil {
		return err
	}

	if *listing {
		err = instructions.WriteListing(md.Output, ld.Data, *origin)
		if err != nil {
			return err
		}
		fmt.Fprintln(md.Output)
	}

	vid := digest.NewVideo()
	err = runSteps(md.Output, vm, vid, *steps, *ipf)
	if err != nil {
		return err
	}

	s := vm.Snapshot()
	fmt.Fprint(md.Output, s.String())
	fmt.Fprintf(md.Output, "FRAME: %s\n", digest.Frame(s.Frame))
	fmt.Fprintf(md.Output, "VIDEO: %s (%d frames)\n", vid.Hash(), vid.Frames())

	if *showMemory {
		err = s.WriteMemory(md.Output)
		if err != nil {
			return err
		}
	}

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		s.WriteGraph(f)
		err = f.Close()
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	return nil
}

// runSteps executes up to the specified number of instructions. Stops early
// if the program halts or waits for a key. The frame buffer is added to the
// video digest at every tick of the timers.
func runSteps(output io.Writer, vm *hardware.VM, vid *digest.Video, steps int, ipf int) error {
	for i := 0; i < steps; i++ {
		r, err := vm.Step()
		if err != nil {
			return err
		}

		switch r.Outcome {
		case execution.InvalidOpcode:
			fmt.Fprintf(output, "halted after %d instructions: %s\n\n", i, r)
			return nil
		case execution.AwaitingKey:
			fmt.Fprintf(output, "waiting for key after %d instructions: %s\n\n", i, r)
			return nil
		}

		if ipf > 0 && (i+1)%ipf == 0 {
			vm.TickTimers()
			vid.NewFrame(vm.FrameBuffer())
		}
	}
	return nil
}
