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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Martianmellow12/CHIP-8/hardware/preferences"
	"github.com/Martianmellow12/CHIP-8/prefs"
	"github.com/Martianmellow12/CHIP-8/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Live(), preferences.Quirks{})
}

func TestLiveUpdate(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.ShiftUsesVY.Set(true))
	test.ExpectSuccess(t, p.Live().ShiftUsesVY)
	test.ExpectFailure(t, p.Live().JumpUsesVX)

	p.SetDefaults()
	test.ExpectFailure(t, p.Live().ShiftUsesVY)
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.LogicResetsVF.Set(true))
	test.DemandSuccess(t, p.Save())

	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), prefs.WarningBoilerPlate+"\n"+
		"chip8.quirks.jumpUsesVX :: false\n"+
		"chip8.quirks.loadStoreIncrementsI :: false\n"+
		"chip8.quirks.logicResetsVF :: true\n"+
		"chip8.quirks.shiftUsesVY :: false\n")

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Live().LogicResetsVF)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("chip8.quirks.jumpUsesVX::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Live().JumpUsesVX)
}
