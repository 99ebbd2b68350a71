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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the VM type, but is not actually the VM itself.
package instance

import (
	"github.com/Martianmellow12/CHIP-8/hardware/preferences"
	"github.com/Martianmellow12/CHIP-8/prefs"
	"github.com/Martianmellow12/CHIP-8/random"
	"github.com/Martianmellow12/CHIP-8/resources"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main        Label = ""
	Performance Label = "performance"
	Dump        Label = "dump"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the VM type, but is not actually the VM
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created using the default preferences file. Providing a non-nil value
// allows the preferences of more than one VM instance to be synchronised.
func NewInstance(clk random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clk),
	}

	if prefs == nil {
		var err error
		prefs, err = DefaultPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// DefaultPreferences creates a preferences instance backed by the default
// preferences file in the resources directory.
func DefaultPreferences() (*preferences.Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return preferences.NewPreferences(pth)
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Only the main
// instance is allowed to log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label == Main
}
