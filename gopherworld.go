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
	"os"
	"path/filepath"
	"runtime"

	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/audio/override"
	"github.com/jetsetilly/gopherworld/disassembly"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gamestrings"
	"github.com/jetsetilly/gopherworld/gfx/raster"
	"github.com/jetsetilly/gopherworld/gui/sdlaudio"
	"github.com/jetsetilly/gopherworld/gui/sdlplay"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/modalflag"
	"github.com/jetsetilly/gopherworld/paths"
	"github.com/jetsetilly/gopherworld/performance"
	"github.com/jetsetilly/gopherworld/playmode"
	"github.com/jetsetilly/gopherworld/prefs"
	"github.com/jetsetilly/gopherworld/resources"
	"github.com/jetsetilly/gopherworld/scenes"
	"github.com/jetsetilly/gopherworld/statsview"
	"github.com/jetsetilly/gopherworld/version"
	"github.com/jetsetilly/gopherworld/vm"
	"github.com/jetsetilly/gopherworld/wavwriter"
)

// the name of the strings file in the data directory
const stringsFile = "strings.txt"

// the name of the save state file in the configuration directory
const stateFile = "savestate"

// SDL requires that window and event handling happen on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "RUN", "DISASM", "RESOURCES", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "RESOURCES":
		err = listResources(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// game collects the data used by every mode that runs the VM.
type game struct {
	env     *environment.Environment
	mgr     *resources.Manager
	strings gamestrings.Table
}

// newGame creates the environment and opens the game data. The prefs string
// is applied to the preferences after they have been loaded from disk.
func newGame(label environment.Label, dataDir string, prefsString string) (*game, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
	}

	env, err := environment.NewEnvironment(label, nil)
	if err != nil {
		return nil, err
	}

	if prefsString != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherworld", "unused preferences: %s", unused)
		}
	}

	mgr, err := resources.NewManager(dataDir)
	if err != nil {
		return nil, err
	}

	tab, err := gamestrings.Load(filepath.Join(dataDir, stringsFile))
	if err != nil {
		return nil, err
	}

	return &game{
		env:     env,
		mgr:     mgr,
		strings: tab,
	}, nil
}

func setLogEcho(log bool) {
	if log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	data := md.AddString("data", ".", "directory containing the game data")
	scene := md.AddInt("scene", scenes.Default, "scene to start with")
	scale := md.AddInt("scale", 0, "window scaling (zero for the display.scale preference)")
	wav := md.AddString("wav", "", "record audio to wav file")
	samples := md.AddString("samples", "", "directory of replacement sound samples")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	prefsString := md.AddString("prefs", "", "preferences to apply (eg. \"playmode.ticksPerSecond::25\")")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	setLogEcho(*log)

	if _, err := scenes.Get(*scene); err != nil {
		return err
	}

	g, err := newGame(environment.MainEmulation, *data, *prefsString)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	scr, err := sdlplay.NewSdlPlay(g.env, *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	outputFreq := g.env.Prefs.AudioOutputFreq.Get().(int)

	var sinks []playmode.AudioSink

	snd, err := sdlaudio.NewAudio(g.env, outputFreq)
	if err != nil {
		// the game can be played without sound
		logger.Log(g.env, "gopherworld", err)
	} else {
		defer snd.EndMixing()
		outputFreq = snd.OutputFreq()
		sinks = append(sinks, snd)
	}

	if *wav != "" {
		ww, err := wavwriter.New(g.env, *wav, outputFreq)
		if err != nil {
			return err
		}
		defer func() {
			if err := ww.EndMixing(); err != nil {
				logger.Log(g.env, "gopherworld", err)
			}
		}()
		sinks = append(sinks, ww)
	}

	aud := audio.NewBackend(g.env, outputFreq)
	if *samples != "" {
		overrides, err := override.Load(*samples)
		if err != nil {
			return err
		}
		aud.SetOverrides(overrides)
	}

	gfx := raster.NewRaster(g.env, scr)
	machine := newVM(g, *scene)

	statePath, err := paths.ResourcePath("", stateFile)
	if err != nil {
		return err
	}

	err = playmode.Play(g.env, machine, gfx, aud, scr, statePath, sinks...)
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	return g.env.Prefs.Save()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	data := md.AddString("data", ".", "directory containing the game data")
	scene := md.AddInt("scene", scenes.Default, "scene to disassemble")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := scenes.Get(*scene)
	if err != nil {
		return err
	}

	mgr, err := resources.NewManager(*data)
	if err != nil {
		return err
	}

	res, err := mgr.Load(s.Bytecode)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "; %s (resource %#02x)\n", s.Name, s.Bytecode)

	return disassembly.Disassemble(res.Data, md.Output, disassembly.WriteAttr{ByteCode: *bytecode})
}

func listResources(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubModes("LIST", "DUMP")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mode := md.Mode()

	md.NewMode()
	data := md.AddString("data", ".", "directory containing the game data")

	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mgr, err := resources.NewManager(*data)
	if err != nil {
		return err
	}

	switch mode {
	case "LIST":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		mgr.List(md.Output)

	case "DUMP":
		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("output directory required for %s mode", md)
		case 1:
			return mgr.Dump(md.GetArg(0))
		default:
			return fmt.Errorf("too many arguments for %s mode", md)
		}
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	data := md.AddString("data", ".", "directory containing the game data")
	scene := md.AddInt("scene", scenes.Default, "scene to run")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
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

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	g, err := newGame(environment.MainEmulation, *data, *prefsString)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prf, g.env, g.mgr, g.strings, *scene, *duration)
}

// newVM creates a VM for the game with the scene requested.
func newVM(g *game, scene int) *vm.VM {
	machine := vm.NewVM(g.env, g.mgr, g.strings)
	machine.RequestScene(scene)
	return machine
}
