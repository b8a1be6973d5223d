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
	"sync"

	"github.com/jetsetilly/gopherworld/audio/music"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/logger"
)

// Backend implements the audio capability of the virtual machine.
type Backend struct {
	env *environment.Environment

	// the virtual machine and the audio device access the mixer and player
	// from different goroutines
	crit sync.Mutex

	mixer  *Mixer
	player music.Player

	// music tempo and the number of output samples until the next pattern
	// line is processed
	tempo     uint16
	untilLine int

	// replacement samples indexed by resource ID
	overrides map[int]*Sample
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(env *environment.Environment, outputFreq int) *Backend {
	return &Backend{
		env:   env,
		mixer: NewMixer(outputFreq),
	}
}

// SetOverrides installs samples that replace sound resources when they are
// added by the virtual machine.
func (b *Backend) SetOverrides(overrides map[int]*Sample) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.overrides = overrides
}

func (b *Backend) String() string {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.mixer.String() + "music: " + b.player.String()
}

// OutputFreq returns the frequency of the rendered output.
func (b *Backend) OutputFreq() int {
	return b.mixer.OutputFreq()
}

// AddSample implements the vm.Audio interface.
func (b *Backend) AddSample(id int, s *Sample) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if o, ok := b.overrides[id]; ok {
		logger.Logf(b.env, "audio", "using replacement for sample %02x", id)
		s = o
	}
	b.mixer.AddSample(id, s)
}

// HasSample implements the vm.Audio interface.
func (b *Backend) HasSample(id int) bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.mixer.HasSample(id)
}

// Play implements the vm.Audio interface.
func (b *Backend) Play(id int, channel int, freq uint16, volume uint8) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.mixer.Play(id, channel, freq, volume)
}

// Stop implements the vm.Audio interface.
func (b *Backend) Stop(channel int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.mixer.Stop(channel)
}

// PlayMusic implements the vm.Audio interface. A tempo of zero uses the
// tempo of the module.
func (b *Backend) PlayMusic(m *music.Module, tempo uint16, pos uint8) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if tempo == 0 {
		tempo = m.Delay
	}
	b.player.Load(m, pos)
	b.tempo = tempo
	b.untilLine = 0
}

// UpdateTempo implements the vm.Audio interface.
func (b *Backend) UpdateTempo(tempo uint16) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.tempo = tempo
}

// StopMusic implements the vm.Audio interface.
func (b *Backend) StopMusic() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.player.Stop()
}

// Reset implements the vm.Audio interface.
func (b *Backend) Reset() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.mixer.Reset()
	b.player.Stop()
	b.untilLine = 0
}

// TakeRegisterRequest implements the vm.Audio interface.
func (b *Backend) TakeRegisterRequest() (int16, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.player.TakeRegisterRequest()
}

// samplesPerLine returns the number of output samples each pattern line
// lasts for.
func (b *Backend) samplesPerLine() int {
	return max(1, music.LineDuration(b.tempo)*b.mixer.outputFreq/1000)
}

// Render mixes the next len(out) samples. Pattern lines of the current music
// module are processed as the output advances.
func (b *Backend) Render(out []int8) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for len(out) > 0 {
		n := len(out)
		if b.player.Playing() {
			if b.untilLine <= 0 {
				b.player.Process(b.mixer)
				b.untilLine += b.samplesPerLine()
			}
			n = min(n, b.untilLine)
			b.untilLine -= n
		}
		b.mixer.Mix(out[:n])
		out = out[n:]
	}
}
