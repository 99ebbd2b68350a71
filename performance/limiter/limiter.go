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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/Martianmellow12/CHIP-8/curated"
)

// FpsLimiter will trigger at regular intervals.
type FpsLimiter struct {
	// the interval between triggers. atomic because it is read by the ticker
	// goroutine
	interval atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	// the sleep duration is adjusted every tick so that the average rate
	// matches the requested rate
	go func() {
		adjusted := time.Duration(lim.interval.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			interval := time.Duration(lim.interval.Load())
			adjusted -= nt.Sub(t) - interval
			if adjusted < 0 || adjusted > interval {
				adjusted = interval
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: invalid rate (%d)", framesPerSecond)
	}
	lim.interval.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen. Does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}
