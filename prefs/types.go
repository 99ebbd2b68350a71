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
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value    atomic.Value // bool
	hookPost func(value Value) error
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.ToLower(strings.TrimSpace(v)) == "true"
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value    atomic.Value // int
	hookPost func(value Value) error
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Float implements a floating point type in the prefs system.
type Float struct {
	value    atomic.Value // float64
	hookPost func(value Value) error
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', -1, 64)
}

// Set new value to Float type. New value can be a float64 or string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Float", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Float", v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0.0
	}
	return ov.(float64)
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *Float) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// String implements a string type in the prefs system.
type String struct {
	value    atomic.Value // string
	hookPost func(value Value) error
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. Any value will be converted with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated.
func (p *String) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
