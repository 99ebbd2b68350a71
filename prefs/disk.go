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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Martianmellow12/CHIP-8/curated"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the preferences file, relative
// to the resources directory.
const DefaultPrefsFile = "preferences"

// separator between key and value in the prefs file.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys added to the disk instance
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file and must not contain the
// key separator.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() (rerr error) {
	// load the existing file so that we don't lose entries that are not
	// part of this disk instance
	existing, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, existing[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. Values
// on the command line stack take precedence over whatever is on disk.
func (dsk *Disk) Load() error {
	existing, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		if v, ok := existing[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// read the prefs file into a map of raw strings
func (dsk *Disk) read() (map[string]string, error) {
	existing := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return existing, nil
		}
		return nil, err
	}
	defer f.Close()

	return parse(f, existing)
}

func parse(r io.Reader, existing map[string]string) (map[string]string, error) {
	scanner := bufio.NewScanner(r)

	// first line must be the warning boiler plate
	if !scanner.Scan() {
		return existing, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file")
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		existing[kv[0]] = kv[1]
	}

	return existing, scanner.Err()
}
