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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Martianmellow12/CHIP-8/curated"
)

// FileExtensions is the list of file extensions that are recognised as CHIP-8
// programs. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program to load into the VM.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (rl Loader) ShortName() string {
	n := filepath.Base(rl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// IsRecognised returns true if the file extension of the program is one of
// those in the FileExtensions list.
func (rl Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(rl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (rl *Loader) Load() error {
	if rl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(rl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http status (%s)", resp.Status))
		}

		rl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		rl.Data, err = os.ReadFile(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(rl.Data) == 0 {
		return curated.Errorf("romloader: %v", "empty program")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(rl.Data))

	// check for hash consistency
	if rl.Hash != "" && rl.Hash != hash {
		rl.Data = nil
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}

	rl.Hash = hash

	return nil
}
