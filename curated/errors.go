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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. Note that the first argument is named
// "pattern" rather than "format" because the string is used to identify the
// error in the Is() and Has() functions.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if len(n) > 0 && n[len(n)-1] == p[i] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns the first error in the list of placeholder values, if
// there is one. This allows curated errors to wrap errors created by the
// standard library and to be inspected with errors.Is() and errors.As().
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	var c curated
	return errors.As(err, &c)
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
