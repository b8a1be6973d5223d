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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gui"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/performance/limiter"
	"github.com/jetsetilly/gopherworld/rewind"
	"github.com/jetsetilly/gopherworld/vm"
)

// Audio is the audio backend used by the VM. The host loop renders the
// output of the backend and sends it to every AudioSink.
type Audio interface {
	vm.Audio
	OutputFreq() int
	Render(out []int8)
}

// AudioSink receives the mixed audio output.
type AudioSink interface {
	WriteSamples(samples []int8)
}

// audio sinks that implement this interface are paused and resumed with the
// emulation
type pauser interface {
	Pause(paused bool)
}

type playmode struct {
	env *environment.Environment

	vm  *vm.VM
	gfx vm.Graphics
	aud Audio
	scr gui.GUI

	sinks   []AudioSink
	samples []int8

	rewind *rewind.Rewind
	lim    *limiter.Limiter

	// the input given to the VM at the start of every tick
	input vm.Input

	// inputs that have been released during the tick. releases are applied
	// after the input has been given to the VM so that a press and release
	// in the same tick is seen by the VM
	released []gui.EventID

	paused      bool
	fastForward bool

	// the number of ticks to wait before the next round
	wait int

	// file used by save and load state events
	statePath string

	intChan chan os.Signal
}

// Play runs the VM until the user quits or the VM has no more threads to
// run. The scene to start with should have been requested before calling
// Play().
//
// The statePath argument is the file used for the save and load state
// events. An empty string disables those events.
func Play(env *environment.Environment, machine *vm.VM, gfx vm.Graphics, aud Audio, scr gui.GUI, statePath string, sinks ...AudioSink) error {
	pl := &playmode{
		env:       env,
		vm:        machine,
		gfx:       gfx,
		aud:       aud,
		scr:       scr,
		sinks:     sinks,
		statePath: statePath,
	}

	pl.rewind = rewind.NewRewind(env, machine, gfx, aud)

	pl.lim = limiter.NewLimiter(pl.ticksPerSecond())
	defer pl.lim.Stop()

	// ctrl-c ends the play loop in the same way as the quit event
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	return pl.run()
}

func (pl *playmode) ticksPerSecond() int {
	return max(pl.env.Prefs.TicksPerSecond.Get().(int), 1)
}

// roundsPerTick returns the number of ticks to run in the current host tick.
func (pl *playmode) roundsPerTick() int {
	if pl.paused {
		return 0
	}
	if pl.fastForward {
		return max(pl.env.Prefs.FastForwardRounds.Get().(int), 1)
	}
	return 1
}

func (pl *playmode) run() error {
	// the first round is recorded so that there is always somewhere to rewind to
	pl.rewind.Reset()

	for {
		select {
		case <-pl.intChan:
			logger.Log(pl.env, "playmode", "interrupted")
			return nil
		default:
		}

		quit, err := pl.handleEvents(pl.scr.Service())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		pl.vm.UpdateInput(pl.input)
		pl.input.LastChar = 0
		pl.applyReleases()

		for range pl.roundsPerTick() {
			ok, err := pl.tick()
			if err != nil {
				return err
			}
			if !ok {
				logger.Log(pl.env, "playmode", "no threads to run")
				return nil
			}
		}

		pl.lim.Wait()
	}
}

// tick runs a single host tick. A round is processed if the wait count has
// expired. Returns false if there were no threads to run.
func (pl *playmode) tick() (bool, error) {
	if pl.wait <= 0 {
		ok, err := pl.round()
		if err != nil || !ok {
			return ok, err
		}
	}
	pl.wait--
	pl.renderAudio()
	return true, nil
}

// round processes a single VM round and updates the rewind history.
func (pl *playmode) round() (bool, error) {
	ok, err := pl.vm.ProcessRound(pl.gfx, pl.aud)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	pl.rewind.Check()
	pl.wait = pl.vm.FramesToWait()
	return true, nil
}

// renderAudio mixes the audio for one tick and sends it to the audio sinks.
func (pl *playmode) renderAudio() {
	n := pl.aud.OutputFreq() / pl.ticksPerSecond()
	if cap(pl.samples) < n {
		pl.samples = make([]int8, n)
	}
	pl.samples = pl.samples[:n]

	pl.aud.Render(pl.samples)
	for _, s := range pl.sinks {
		s.WriteSamples(pl.samples)
	}
}

func (pl *playmode) setPause(paused bool) {
	pl.paused = paused
	for _, s := range pl.sinks {
		if p, ok := s.(pauser); ok {
			p.Pause(paused)
		}
	}
	logger.Logf(pl.env, "playmode", "paused: %v", paused)
}
