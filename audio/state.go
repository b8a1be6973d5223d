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

package audio

import (
	"maps"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gopherworld/audio/music"
	"github.com/jetsetilly/gopherworld/logger"
)

// State is the value returned by the Backend's Snapshot() function. Samples
// and the music module are shared with the Backend and must not be
// modified.
type State struct {
	Channels  [NumChannels]Channel
	Samples   map[int]*Sample
	Player    music.PlayerState
	Tempo     uint16
	UntilLine int
}

// encoded has the fields of State without its methods. encoding a State
// directly would call MarshalBinary again
type encoded State

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (s *State) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*encoded)(s))
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (s *State) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, (*encoded)(s))
}

// Snapshot implements the vm.Audio interface.
func (b *Backend) Snapshot() any {
	b.crit.Lock()
	defer b.crit.Unlock()

	return &State{
		Channels:  b.mixer.channels,
		Samples:   maps.Clone(b.mixer.samples),
		Player:    b.player.State(),
		Tempo:     b.tempo,
		UntilLine: b.untilLine,
	}
}

// Plumb implements the vm.Audio interface. The state can be the value
// returned by Snapshot() or the result of MarshalBinary().
func (b *Backend) Plumb(state any) {
	switch s := state.(type) {
	case *State:
		b.crit.Lock()
		defer b.crit.Unlock()

		b.mixer.channels = s.Channels
		b.mixer.samples = maps.Clone(s.Samples)
		if b.mixer.samples == nil {
			b.mixer.samples = make(map[int]*Sample)
		}
		b.player.Plumb(s.Player)
		b.tempo = s.Tempo
		b.untilLine = s.UntilLine
	case []byte:
		var st State
		if err := st.UnmarshalBinary(s); err != nil {
			logger.Logf(b.env, "audio", "cannot restore state: %v", err)
			return
		}
		b.Plumb(&st)
	case nil:
	default:
		logger.Logf(b.env, "audio", "cannot plumb state of type %T", state)
	}
}
