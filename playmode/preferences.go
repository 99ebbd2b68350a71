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

import "github.com/Martianmellow12/CHIP-8/prefs"

// Preferences for the playmode loop.
type Preferences struct {
	dsk *prefs.Disk

	// the number of VM instructions executed between each tick of the timers
	InstructionsPerFrame prefs.Int

	// the size of each display pixel in window pixels. not all GUIs use this
	Scale prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("playmode.instructionsPerFrame", &p.InstructionsPerFrame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playmode.scale", &p.Scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.InstructionsPerFrame.Set(11)
	p.Scale.Set(10)
}

// Load playmode preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current playmode preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
