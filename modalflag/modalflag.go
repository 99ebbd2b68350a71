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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const modeSeparator = "/"

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. the Mode() function should be
	// checked if sub-modes were specified
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output writer
	ParseHelp

	// an error was found and has been returned as the second return value
	ParseError
)

// Modes handles command line arguments that are divided into modes. The
// Output field should be set before calling Parse() otherwise help messages
// will not be seen.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// every mode selected by a call to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts processing of a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that the remaining arguments belong to a new mode. Flags
// and sub-modes specified before the call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// Mode returns the most recently selected mode. An empty string if no mode
// has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// AdditionalHelp is text to be shown after the regular help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode ever added after NewMode() is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Parse the arguments for the current mode. Help messages are written to the
// Output field automatically.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// the arguments consumed by the flag set belong to this mode
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered remaining argument. An empty string if the
// argument does not exist.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddInt64 flag for next call to Parse().
func (md *Modes) AddInt64(name string, value int64, usage string) *int64 {
	return md.flags.Int64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddAddress flag for next call to Parse(). The value of the flag can be
// specified in decimal or in hex with a 0x prefix. The value must fit in
// sixteen bits.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	a := address(value)
	md.flags.Var(&a, name, usage)
	return (*uint16)(&a)
}

// Visit calls fn for each flag that has been set on the command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// address implements the flag.Value interface.
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("%#04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("not a valid address: %s", s)
	}
	*a = address(v)
	return nil
}
