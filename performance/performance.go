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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx/raster"
	"github.com/jetsetilly/gopherworld/vm"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// the leadtime before measurement starts
const leadtime = 2 * time.Second

// Check the performance of the VM running the specified scene.
//
// The VM will run uncapped for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, env *environment.Environment, provider vm.ResourceProvider, strings vm.StringTable, scene int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	ticks := env.Prefs.TicksPerSecond.Get().(int)
	outputFreq := env.Prefs.AudioOutputFreq.Get().(int)

	machine := vm.NewVM(env, provider, strings)
	gfx := raster.NewRaster(env, nil)
	aud := audio.NewBackend(env, outputFreq)
	machine.RequestScene(scene)

	// audio is mixed as it would be for a real audio device. one tick's worth
	// of samples for every round
	samples := make([]int8, max(outputFreq/max(ticks, 1), 1))

	var startRound int
	var endRound int
	var ended bool

	runner := func() error {
		// true when duration has expired. false when the leadtime has
		// elapsed and measurement should start
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			ok, err := machine.ProcessRound(gfx, aud)
			if err != nil {
				return err
			}
			aud.Render(samples)

			if !ok {
				ended = true
				endRound = machine.Round()
				return nil
			}

			select {
			case v := <-timerChan:
				if v {
					endRound = machine.Round()
					return timedOut
				}
				startRound = machine.Round()
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	if ended {
		fmt.Fprintf(output, "no active threads after %d rounds\n", endRound)
		return nil
	}

	numRounds := endRound - startRound
	rps, accuracy := CalcRPS(numRounds, dur.Seconds(), ticks)
	fmt.Fprintf(output, "%.2f rounds per second (%d rounds in %.2f seconds) %.1f%%\n", rps, numRounds, dur.Seconds(), accuracy)

	return nil
}
