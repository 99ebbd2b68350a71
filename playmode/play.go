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

package playmode

import (
	"os"
	"os/signal"

	"github.com/Martianmellow12/CHIP-8/beeper"
	"github.com/Martianmellow12/CHIP-8/curated"
	"github.com/Martianmellow12/CHIP-8/govern"
	"github.com/Martianmellow12/CHIP-8/gui"
	"github.com/Martianmellow12/CHIP-8/hardware"
	"github.com/Martianmellow12/CHIP-8/hardware/cpu/execution"
	"github.com/Martianmellow12/CHIP-8/hardware/timers"
	"github.com/Martianmellow12/CHIP-8/logger"
	"github.com/Martianmellow12/CHIP-8/performance/limiter"
)

// InvalidOpcodeHalt is the pattern of the error returned when the program
// reaches an opcode that is not an instruction.
const InvalidOpcodeHalt = "playmode: halted on invalid opcode %s at %#04x"

// the size of the event channel. events that do not fit are dropped by the GUI
const eventChannelSize = 64

// hotkeys
const (
	keyPause = "P"
	keyQuit  = "Escape"
)

// Playmode runs the VM in real time.
type Playmode struct {
	vm    *hardware.VM
	gui   gui.GUI
	prefs *Preferences

	events chan gui.Event
	mixers []beeper.Mixer
	tone   beeper.Tone

	state govern.State
}

// NewPlaymode is the preferred method of initialisation for the Playmode type.
// The program should already have been loaded into the VM.
//
// If the GUI implements the beeper.Mixer interface it is added as a mixer
// automatically.
func NewPlaymode(vm *hardware.VM, g gui.GUI, prefs *Preferences) *Playmode {
	pm := &Playmode{
		vm:     vm,
		gui:    g,
		prefs:  prefs,
		events: make(chan gui.Event, eventChannelSize),
		state:  govern.Running,
	}

	g.SetEventChannel(pm.events)

	if m, ok := g.(beeper.Mixer); ok {
		pm.AddMixer(m)
	}

	return pm
}

// AddMixer adds a consumer of the audio produced by the beeper.
func (pm *Playmode) AddMixer(m beeper.Mixer) {
	pm.mixers = append(pm.mixers, m)
}

// State returns the current state of the playmode loop.
func (pm *Playmode) State() govern.State {
	return pm.state
}

// Play runs frames at the timer rate until the user quits or the program
// halts. Mixers have their EndMixing() function called before returning.
func (pm *Playmode) Play() (rerr error) {
	lmtr, err := limiter.NewFPSLimiter(timers.TickRate)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer lmtr.Stop()

	defer func() {
		for _, m := range pm.mixers {
			err := m.EndMixing()
			if err != nil && rerr == nil {
				rerr = curated.Errorf("playmode: %v", err)
			}
		}
	}()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for pm.state.Continue() {
		select {
		case <-intChan:
			pm.state = govern.Ending
			continue // for loop
		default:
		}

		err := pm.Frame()
		if err != nil {
			return err
		}

		lmtr.Wait()
	}

	return nil
}

// Frame runs a single frame of the loop.
func (pm *Playmode) Frame() error {
	err := pm.gui.Service()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pm.handleEvents()

	if !pm.state.Continue() {
		return nil
	}

	var sound bool

	if pm.state != govern.Paused {
		err = pm.runInstructions()
		if err != nil {
			pm.state = govern.Halted
			return err
		}

		pm.vm.TickTimers()
		sound = pm.vm.SoundTimer() > 0
	}

	samples := pm.tone.Generate(sound, beeper.SamplesPerFrame)
	for _, m := range pm.mixers {
		err = m.SetAudio(samples)
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	err = pm.gui.Render(pm.vm.FrameBuffer())
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

func (pm *Playmode) runInstructions() error {
	ipf := pm.prefs.InstructionsPerFrame.Get().(int)

	for i := 0; i < ipf; i++ {
		r, err := pm.vm.Step()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		switch r.Outcome {
		case execution.AwaitingKey:
			// no point executing any further until a key has been pressed
			pm.state = govern.WaitingForKey
			return nil
		case execution.InvalidOpcode:
			return curated.Errorf(InvalidOpcodeHalt, r.Opcode, r.Address)
		}

		pm.state = govern.Running
	}

	return nil
}

func (pm *Playmode) handleEvents() {
	for {
		select {
		case ev := <-pm.events:
			pm.handleEvent(ev)
		default:
			return
		}
	}
}

func (pm *Playmode) handleEvent(ev gui.Event) {
	switch ev := ev.(type) {
	case gui.EventQuit:
		pm.state = govern.Ending

	case gui.EventKeyboard:
		if ev.Down {
			switch ev.Key {
			case keyQuit:
				pm.state = govern.Ending
				return
			case keyPause:
				pm.togglePause()
				return
			}
		}

		if k, ok := gui.KeypadIndex(ev.Key); ok {
			pm.vm.SetKey(k, ev.Down)
		}
	}
}

func (pm *Playmode) togglePause() {
	switch pm.state {
	case govern.Paused:
		pm.state = govern.Running
		logger.Log(logger.Allow, "playmode", "unpaused")
	case govern.Running, govern.WaitingForKey:
		pm.state = govern.Paused
		logger.Log(logger.Allow, "playmode", "paused")
	}
}
