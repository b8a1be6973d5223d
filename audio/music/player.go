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

package music

import "fmt"

// Mixer is the part of the audio mixer used by the Player.
type Mixer interface {
	Play(id int, channel int, freq uint16, volume uint8)
	Stop(channel int)
}

// PlayerState is the complete state of the Player.
type PlayerState struct {
	Module   *Module
	Order    uint16
	Line     uint8
	Register int16
	Request  bool
}

// Player steps through a Module.
type Player struct {
	state PlayerState
}

func (p *Player) String() string {
	if p.state.Module == nil {
		return "stopped"
	}
	return fmt.Sprintf("order %d line %d", p.state.Order, p.state.Line)
}

// Load starts playback of the module from the order position.
func (p *Player) Load(m *Module, pos uint8) {
	p.state = PlayerState{
		Module: m,
		Order:  uint16(pos),
	}
	if p.state.Order >= m.NumOrder {
		p.state.Module = nil
	}
}

// Stop playback. A pending register request is discarded.
func (p *Player) Stop() {
	p.state = PlayerState{}
}

// Playing returns true if a module is being played.
func (p *Player) Playing() bool {
	return p.state.Module != nil
}

// Delay returns the tempo of the current module.
func (p *Player) Delay() uint16 {
	if p.state.Module == nil {
		return 0
	}
	return p.state.Module.Delay
}

// TakeRegisterRequest returns the most recent value requested by the module
// for the music synchronisation register. The request is cleared.
func (p *Player) TakeRegisterRequest() (int16, bool) {
	if !p.state.Request {
		return 0, false
	}
	p.state.Request = false
	return p.state.Register, true
}

// State returns a copy of the player state. The module is shared.
func (p *Player) State() PlayerState {
	return p.state
}

// Plumb replaces the player state.
func (p *Player) Plumb(state PlayerState) {
	p.state = state
}

// Process plays the next line of the current pattern.
func (p *Player) Process(mixer Mixer) {
	m := p.state.Module
	if m == nil {
		return
	}

	pattern := &m.Patterns[m.Order[p.state.Order]]
	for channel, n := range pattern[p.state.Line] {
		switch {
		case n.Note == noteStop:
			mixer.Stop(channel)

		case n.Note == noteSetRegister:
			p.state.Register = int16(n.Param)
			p.state.Request = true

		case n.Note >= noteMin && n.Note <= noteMax:
			inst := int(n.Param>>12) & 0x0f

			// instrument zero skips the note
			if inst == 0 {
				continue
			}
			instrument := m.Instruments[inst-1]

			volume := int(instrument.Volume)
			param := int(n.Param & 0x00ff)
			switch (n.Param >> 8) & 0x0f {
			case effectVolumeUp:
				volume += param
			case effectVolumeDown:
				volume -= param
			}
			volume = max(0, min(volume, 0x3f))

			mixer.Play(int(instrument.Resource), channel, Frequency(n.Note), uint8(volume))
		}
	}

	p.state.Line++
	if p.state.Line >= LinesPerPattern {
		p.state.Line = 0
		p.state.Order++
		if p.state.Order >= m.NumOrder {
			p.state.Module = nil
		}
	}
}
