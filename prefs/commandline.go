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
	"fmt"
	"sort"
	"strings"
)

var commandLineStack []map[string]string

// PushCommandLineStack parses a string of the form "key::value; key::value"
// and adds it as a new group.
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the unused preferences of the group in the
// same format as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref value from current group. The value is deleted from the
// group when it is returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	cl := commandLineStack[len(commandLineStack)-1]
	if v, ok := cl[key]; ok {
		delete(cl, key)
		return true, v
	}

	return false, ""
}
