// This file is part of Gopherworld.
//
// Gopherworld is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherworld is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherworld.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(50)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		processRound()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter will trigger at a fixed number of ticks per second.
type Limiter struct {
	ticksPerSecond atomic.Int64

	tick  chan bool
	reset chan time.Duration
	quit  chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(ticksPerSecond int) *Limiter {
	lim := &Limiter{
		tick:  make(chan bool),
		reset: make(chan time.Duration, 1),
		quit:  make(chan bool),
	}
	lim.ticksPerSecond.Store(int64(ticksPerSecond))

	go func() {
		ticker := time.NewTicker(duration(ticksPerSecond))
		defer ticker.Stop()
		for {
			select {
			case <-lim.quit:
				return
			case d := <-lim.reset:
				ticker.Reset(d)
			case <-ticker.C:
				select {
				case lim.tick <- true:
				case d := <-lim.reset:
					ticker.Reset(d)
				case <-lim.quit:
					return
				}
			}
		}
	}()

	return lim
}

// duration of a single tick. a rate of zero or less is treated as one tick
// per second
func duration(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(ticksPerSecond)
}

// SetLimit changes the rate of the Limiter.
func (lim *Limiter) SetLimit(ticksPerSecond int) {
	if int64(ticksPerSecond) == lim.ticksPerSecond.Load() {
		return
	}
	lim.ticksPerSecond.Store(int64(ticksPerSecond))

	// replace any pending change
	select {
	case <-lim.reset:
	default:
	}
	lim.reset <- duration(ticksPerSecond)
}

// Limit returns the current rate of the Limiter.
func (lim *Limiter) Limit() int {
	return int(lim.ticksPerSecond.Load())
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the Limiter. Wait() should not be called after the Limiter has been
// stopped.
func (lim *Limiter) Stop() {
	close(lim.quit)
}
