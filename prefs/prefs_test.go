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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Martianmellow12/CHIP-8/prefs"
	"github.com/Martianmellow12/CHIP-8/test"
)

func cmpFile(t *testing.T, pth string, expected string) {
	t.Helper()
	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), expected)
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set(" 20 "))
	test.ExpectEquality(t, v.String(), "20")
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestFloatAndString(t *testing.T) {
	var f prefs.Float
	test.ExpectSuccess(t, f.Set("1.5"))
	test.ExpectEquality(t, f.Get().(float64), 1.5)
	test.ExpectEquality(t, f.String(), "1.5")

	var s prefs.String
	test.ExpectSuccess(t, s.Set("hello"))
	test.ExpectEquality(t, s.String(), "hello")
}

func TestHook(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(42))
	test.ExpectEquality(t, seen, 42)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	test.DemandSuccess(t, dsk.Add("test.bool", &b))
	test.DemandSuccess(t, dsk.Add("test.int", &i))
	test.ExpectFailure(t, dsk.Add("test.int", &i))

	// loading a file that doesn't exist is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.DemandSuccess(t, b.Set(true))
	test.DemandSuccess(t, i.Set(11))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, pth, "*** do not edit this file by hand ***\ntest.bool :: true\ntest.int :: 11\n")

	// a second disk instance sharing the same file
	dsk2, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.DemandSuccess(t, dsk2.Add("other.string", &s))
	test.DemandSuccess(t, s.Set("foo"))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, pth, "*** do not edit this file by hand ***\nother.string :: foo\ntest.bool :: true\ntest.int :: 11\n")

	// reload the values into the first instance
	test.DemandSuccess(t, b.Set(false))
	test.DemandSuccess(t, i.Set(0))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 11)
}

func TestDiskInvalidFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a prefs file\n"), 0600))

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.DemandSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectFailure(t, dsk.Load())
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("test.int::20; test.unused::foo")

	pth := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var i prefs.Int
	test.DemandSuccess(t, dsk.Add("test.int", &i))
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 20)

	// the value has been consumed. the unused entry remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "test.unused::foo")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
