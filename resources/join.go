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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the name of the portable resource directory
const portablePath = ".gopher8"

// the name of the resource directory in the user's configuration directory
const configPath = "gopher8"

func basePath() (string, error) {
	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configPath), nil
}

// JoinPath prepends the supplied path with the base resource path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
