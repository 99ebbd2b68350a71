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

package preferences

import (
	"github.com/Martianmellow12/CHIP-8/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// 8xy6 and 8xyE shift Vy and store the result in Vx, rather than shifting
	// Vx in place
	ShiftUsesVY prefs.Bool

	// Fx55 and Fx65 leave I pointing to the byte after the last register
	// stored or loaded
	LoadStoreIncrementsI prefs.Bool

	// Bnnn adds Vx (where x is the high nibble of nnn) rather than V0
	JumpUsesVX prefs.Bool

	// 8xy1, 8xy2 and 8xy3 set VF to zero
	LogicResetsVF prefs.Bool

	// the live values of the quirk preferences
	live Quirks
}

// Quirks is a copy of the quirk values. This is what the CPU consults on
// every instruction rather than the prefs values themselves.
type Quirks struct {
	ShiftUsesVY          bool
	LoadStoreIncrementsI bool
	JumpUsesVX           bool
	LogicResetsVF        bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The pth argument is the file used to load and save the
// preference values. A missing file is not an error.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for key, v := range map[string]*prefs.Bool{
		"chip8.quirks.shiftUsesVY":          &p.ShiftUsesVY,
		"chip8.quirks.loadStoreIncrementsI": &p.LoadStoreIncrementsI,
		"chip8.quirks.jumpUsesVX":           &p.JumpUsesVX,
		"chip8.quirks.logicResetsVF":        &p.LogicResetsVF,
	} {
		err = p.dsk.Add(key, v)
		if err != nil {
			return nil, err
		}
		v.SetHookPost(func(prefs.Value) error {
			p.updateLive()
			return nil
		})
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func (p *Preferences) updateLive() {
	p.live = Quirks{
		ShiftUsesVY:          p.ShiftUsesVY.Get().(bool),
		LoadStoreIncrementsI: p.LoadStoreIncrementsI.Get().(bool),
		JumpUsesVX:           p.JumpUsesVX.Get().(bool),
		LogicResetsVF:        p.LogicResetsVF.Get().(bool),
	}
}

// Live returns the current quirk values.
func (p *Preferences) Live() Quirks {
	return p.live
}

// SetDefaults reverts all quirks to the default value.
func (p *Preferences) SetDefaults() {
	p.ShiftUsesVY.Set(false)
	p.LoadStoreIncrementsI.Set(false)
	p.JumpUsesVX.Set(false)
	p.LogicResetsVF.Set(false)
	p.updateLive()
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
