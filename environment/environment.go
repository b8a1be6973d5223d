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

// Package environment provides the context for an instance of the VM. More
// than one VM instance can exist at once. The playmode host runs the main
// emulation while the performance and digest tools create their own
// instances, and the label is used to tell them apart.
package environment

import (
	"github.com/jetsetilly/gopherworld/paths"
	"github.com/jetsetilly/gopherworld/prefs"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// the preferences used by the emulation. shared between environments if
	// required
	Prefs *Preferences

	// verbose logging for environments other than the main emulation
	Verbose bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. The prefs argument can be nil, in which case a new
// Preferences instance is created. Providing a non-nil value allows the
// preferences of more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error
	if prefs == nil {
		prefs, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	if env == nil {
		return false
	}
	return env.IsMainEmulation() || env.Verbose
}

// the name of the preferences file in the configuration directory
const prefsFile = "preferences"

// Preferences for an emulation environment.
type Preferences struct {
	dsk *prefs.Disk

	// the rate at which the host drives the VM
	TicksPerSecond prefs.Int

	// rounds per tick when fast-forwarding
	FastForwardRounds prefs.Int

	// rewind history
	RewindMaxEntries prefs.Int
	RewindFreq       prefs.Int

	// audio output frequency in Hz
	AudioOutputFreq prefs.Int

	// window scaling and presentation
	DisplayScale  prefs.Int
	DisplayOpenGL prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// configuration directory if one exists.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("playmode.ticksPerSecond", &p.TicksPerSecond); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("playmode.fastForwardRounds", &p.FastForwardRounds); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.maxEntries", &p.RewindMaxEntries); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.snapshotFreq", &p.RewindFreq); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.outputFreq", &p.AudioOutputFreq); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.scale", &p.DisplayScale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.opengl", &p.DisplayOpenGL); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to default values.
func (p *Preferences) SetDefaults() {
	p.TicksPerSecond.Set(50)
	p.FastForwardRounds.Set(8)
	p.RewindMaxEntries.Set(100)
	p.RewindFreq.Set(25)
	p.AudioOutputFreq.Set(44100)
	p.DisplayScale.Set(3)
	p.DisplayOpenGL.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
