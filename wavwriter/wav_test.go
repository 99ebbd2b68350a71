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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/Martianmellow12/CHIP-8/beeper"
	"github.com/Martianmellow12/CHIP-8/test"
	"github.com/Martianmellow12/CHIP-8/wavwriter"
)

func TestWrite(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "beep.wav")

	aw, err := wavwriter.New(pth)
	test.DemandSuccess(t, err)

	var tn beeper.Tone
	test.DemandSuccess(t, aw.SetAudio(tn.Generate(true, beeper.SamplesPerFrame)))
	test.DemandSuccess(t, aw.SetAudio(tn.Generate(false, beeper.SamplesPerFrame)))
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), beeper.SamplesPerFrame*2)
	test.ExpectEquality(t, int(dec.SampleRate), beeper.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 8)
}
