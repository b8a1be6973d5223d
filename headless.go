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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/digest"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx/raster"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/modalflag"
	"github.com/jetsetilly/gopherworld/scenes"
	"github.com/jetsetilly/gopherworld/vm"
)

// result of a headless run.
type headlessResult struct {
	Rounds int
	Frames int
	Video  string
	Audio  string
}

func (r headlessResult) String() string {
	return fmt.Sprintf("rounds: %d\nframes: %d\nvideo: %s\naudio: %s", r.Rounds, r.Frames, r.Video, r.Audio)
}

// runHeadless runs the VM for the number of rounds without a display or an
// audio device. The presented frames and the mixed audio are digested so that
// two runs can be compared.
//
// The run ends early if the VM has no threads to run.
func runHeadless(env *environment.Environment, provider vm.ResourceProvider, strings vm.StringTable, scene int, rounds int) (*vm.VM, headlessResult, error) {
	vid := digest.NewVideo(nil)
	snd := digest.NewAudio()

	ticks := max(env.Prefs.TicksPerSecond.Get().(int), 1)
	outputFreq := env.Prefs.AudioOutputFreq.Get().(int)

	machine := vm.NewVM(env, provider, strings)
	gfx := raster.NewRaster(env, vid)
	aud := audio.NewBackend(env, outputFreq)
	machine.RequestScene(scene)

	samples := make([]int8, outputFreq/ticks)

	var res headlessResult
	for res.Rounds < rounds {
		ok, err := machine.ProcessRound(gfx, aud)
		if err != nil {
			return machine, res, err
		}
		if !ok {
			logger.Logf(env, "headless", "no threads to run after %d rounds", res.Rounds)
			break
		}
		res.Rounds++

		// the audio for every tick the round would have been shown for
		for range max(machine.FramesToWait(), 1) {
			aud.Render(samples)
			snd.WriteSamples(samples)
		}
	}

	res.Frames = vid.Frames()
	res.Video = vid.Hash()
	res.Audio = snd.Hash()

	return machine, res, nil
}

// writeMemviz writes a graphviz description of the VM state.
func writeMemviz(w io.Writer, machine *vm.VM) {
	state := machine.State()
	memviz.Map(w, &state)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	data := md.AddString("data", ".", "directory containing the game data")
	scene := md.AddInt("scene", scenes.Default, "scene to start with")
	rounds := md.AddInt("rounds", 500, "number of rounds to run")
	mv := md.AddString("memviz", "", "write graphviz description of the VM state at the end of the run")
	prefsString := md.AddString("prefs", "", "preferences to apply")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(*log)

	g, err := newGame("headless", *data, *prefsString)
	if err != nil {
		return err
	}
	g.env.Verbose = *log

	machine, res, err := runHeadless(g.env, g.mgr, g.strings, *scene, *rounds)
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, res)

	if *mv != "" {
		f, err := os.Create(*mv)
		if err != nil {
			return err
		}
		defer f.Close()
		writeMemviz(f, machine)
	}

	return nil
}
