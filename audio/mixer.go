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
	"fmt"
	"strings"
)

// NumChannels is the number of samples that can be played at once.
const NumChannels = 4

// Channel is one voice of the Mixer. Position and Increment are fixed point
// values with eight fractional bits.
type Channel struct {
	Active    bool
	SampleID  int
	Volume    uint8
	Position  uint32
	Increment uint32
}

// Mixer plays samples on four channels and mixes them into signed eight bit
// output.
type Mixer struct {
	outputFreq int
	channels   [NumChannels]Channel
	samples    map[int]*Sample
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer(outputFreq int) *Mixer {
	if outputFreq <= 0 {
		panic(fmt.Sprintf("audio: invalid output frequency (%d)", outputFreq))
	}
	return &Mixer{
		outputFreq: outputFreq,
		samples:    make(map[int]*Sample),
	}
}

func (mx *Mixer) String() string {
	s := strings.Builder{}
	for i, ch := range mx.channels {
		if !ch.Active {
			continue
		}
		s.WriteString(fmt.Sprintf("%d: %02x vol=%02x pos=%d\n", i, ch.SampleID, ch.Volume, ch.Position>>8))
	}
	return s.String()
}

// OutputFreq returns the frequency the Mixer renders at.
func (mx *Mixer) OutputFreq() int {
	return mx.outputFreq
}

// AddSample makes a sample available for playing.
func (mx *Mixer) AddSample(id int, s *Sample) {
	mx.samples[id] = s
}

// Play a sample on the channel.
func (mx *Mixer) Play(id int, channel int, freq uint16, volume uint8) {
	if channel < 0 || channel >= NumChannels {
		return
	}
	mx.channels[channel] = Channel{
		Active:    true,
		SampleID:  id,
		Volume:    volume,
		Increment: (uint32(freq) << 8) / uint32(mx.outputFreq),
	}
}

// HasSample returns true if a sample with the ID has been added.
func (mx *Mixer) HasSample(id int) bool {
	_, ok := mx.samples[id]
	return ok
}

// Stop the channel.
func (mx *Mixer) Stop(channel int) {
	if channel < 0 || channel >= NumChannels {
		return
	}
	mx.channels[channel] = Channel{}
}

// Reset stops all channels and forgets all samples.
func (mx *Mixer) Reset() {
	mx.channels = [NumChannels]Channel{}
	mx.samples = make(map[int]*Sample)
}

// Mix renders the next len(out) output samples, overwriting the contents of
// out.
func (mx *Mixer) Mix(out []int8) {
	for i := range out {
		out[i] = 0
	}

	for c := range mx.channels {
		ch := &mx.channels[c]
		if !ch.Active {
			continue
		}

		s, ok := mx.samples[ch.SampleID]
		if !ok || len(s.Data) == 0 {
			*ch = Channel{}
			continue
		}

		mixChannel(ch, s, out)
	}
}

func mixChannel(ch *Channel, s *Sample, out []int8) {
	length := uint32(len(s.Data))
	loops := s.Loops()

	for i := range out {
		pos := ch.Position >> 8
		frac := ch.Position & 0xff

		if pos >= length {
			if !loops {
				*ch = Channel{}
				return
			}
			pos = uint32(s.LoopStart) + (pos-length)%(length-uint32(s.LoopStart))
			ch.Position = pos<<8 | frac
		}

		next := pos + 1
		if next >= length {
			if loops {
				next = uint32(s.LoopStart)
			} else {
				next = pos
			}
		}

		// linear interpolation between neighbouring samples
		s1 := int32(s.Data[pos])
		s2 := int32(s.Data[next])
		v := (s1*(0x100-int32(frac)) + s2*int32(frac)) >> 8

		v = v * int32(ch.Volume) / 0x40
		v += int32(out[i])
		out[i] = int8(max(-128, min(v, 127)))

		ch.Position += ch.Increment
	}
}
