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
	"encoding/binary"
	"slices"
	"testing"

	"github.com/jetsetilly/gopherworld/audio/music"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/test"
)

const testFreq = 8000

func sampleData(length, loopLength uint16, data ...int8) []byte {
	b := make([]byte, sampleHeaderLen)
	binary.BigEndian.PutUint16(b, length)
	binary.BigEndian.PutUint16(b[2:], loopLength)
	for _, v := range data {
		b = append(b, byte(v))
	}
	return b
}

func TestDecodeSample(t *testing.T) {
	s, err := DecodeSample(sampleData(2, 1, 1, 2, 3, 4, -5, -6, 99))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Data), 6)
	test.ExpectEquality(t, s.Data[4], int8(-5))
	test.ExpectEquality(t, s.LoopStart, 4)
	test.ExpectSuccess(t, s.Loops())

	s, err = DecodeSample(sampleData(1, 0, 1, 2))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.LoopStart, -1)
	test.ExpectFailure(t, s.Loops())

	_, err = DecodeSample(sampleData(2, 0, 1, 2))
	test.ExpectFailure(t, err)

	_, err = DecodeSample([]byte{0, 1})
	test.ExpectFailure(t, err)
}

func TestMixer(t *testing.T) {
	mx := NewMixer(testFreq)
	mx.AddSample(1, &Sample{Data: []int8{64, 64, 64, 64}, LoopStart: -1})

	out := make([]int8, 6)
	mx.Play(1, 0, testFreq, 0x40)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(64))
	test.ExpectEquality(t, out[3], int8(64))
	test.ExpectEquality(t, out[4], int8(0))
	test.ExpectEquality(t, out[5], int8(0))
	test.ExpectFailure(t, mx.channels[0].Active)

	// volume scales the output
	mx.Play(1, 2, testFreq, 0x20)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(32))

	// invalid channels are ignored
	mx.Play(1, 4, testFreq, 0x20)
	mx.Stop(-1)
}

func TestMixerClamp(t *testing.T) {
	mx := NewMixer(testFreq)
	mx.AddSample(1, &Sample{Data: []int8{100, -100}, LoopStart: -1})

	out := make([]int8, 2)
	mx.Play(1, 0, testFreq, 0x40)
	mx.Play(1, 1, testFreq, 0x40)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(127))
	test.ExpectEquality(t, out[1], int8(-128))
}

func TestMixerLoop(t *testing.T) {
	mx := NewMixer(testFreq)
	mx.AddSample(1, &Sample{Data: []int8{10, 20}, LoopStart: 1})

	out := make([]int8, 4)
	mx.Play(1, 3, testFreq, 0x40)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(10))
	test.ExpectEquality(t, out[1], int8(20))
	test.ExpectEquality(t, out[2], int8(20))
	test.ExpectEquality(t, out[3], int8(20))
	test.ExpectSuccess(t, mx.channels[3].Active)
}

func TestMixerInterpolation(t *testing.T) {
	mx := NewMixer(testFreq)
	mx.AddSample(1, &Sample{Data: []int8{0, 100}, LoopStart: -1})

	out := make([]int8, 5)
	mx.Play(1, 0, testFreq/2, 0x40)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(0))
	test.ExpectEquality(t, out[1], int8(50))
	test.ExpectEquality(t, out[2], int8(100))
	test.ExpectEquality(t, out[3], int8(100))
	test.ExpectEquality(t, out[4], int8(0))
}

func TestMixerReset(t *testing.T) {
	mx := NewMixer(testFreq)
	mx.AddSample(1, &Sample{Data: []int8{10, 20}, LoopStart: 0})
	mx.Play(1, 0, testFreq, 0x40)
	mx.Reset()

	out := make([]int8, 2)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(0))

	// the sample has gone
	mx.Play(1, 0, testFreq, 0x40)
	mx.Mix(out)
	test.ExpectEquality(t, out[0], int8(0))
	test.ExpectFailure(t, mx.channels[0].Active)
}

func testModule() *music.Module {
	m := &music.Module{
		Delay:    7050,
		NumOrder: 1,
		Patterns: make([]music.Pattern, 1),
	}
	m.Instruments[0] = music.Instrument{Resource: 0x20, Volume: 0x30}
	m.Patterns[0][0][1] = music.Note{Note: 0x01ac, Param: 0x1000}
	m.Patterns[0][0][2] = music.Note{Note: 0xfffd, Param: 0x0007}
	return m
}

func TestBackendMusic(t *testing.T) {
	b := NewBackend(&environment.Environment{Label: "test"}, testFreq)
	b.AddSample(0x20, &Sample{Data: []int8{1, 1, 1, 1}, LoopStart: 0})

	_, ok := b.TakeRegisterRequest()
	test.ExpectFailure(t, ok)

	b.PlayMusic(testModule(), 0, 0)
	test.ExpectEquality(t, b.tempo, uint16(7050))
	test.ExpectEquality(t, b.samplesPerLine(), testFreq*60/1000)

	out := make([]int8, 10)
	b.Render(out)
	test.ExpectSuccess(t, b.mixer.channels[1].Active)
	test.ExpectEquality(t, b.mixer.channels[1].Volume, uint8(0x30))
	test.ExpectEquality(t, b.untilLine, testFreq*60/1000-10)

	v, ok := b.TakeRegisterRequest()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, int16(7))

	b.UpdateTempo(14100)
	test.ExpectEquality(t, b.samplesPerLine(), testFreq*120/1000)

	b.StopMusic()
	test.ExpectFailure(t, b.player.Playing())

	b.Reset()
	test.ExpectFailure(t, b.mixer.channels[1].Active)
	test.ExpectEquality(t, len(b.mixer.samples), 0)
}

func TestBackendOverrides(t *testing.T) {
	b := NewBackend(&environment.Environment{Label: "test"}, testFreq)
	o := &Sample{Data: []int8{5}, LoopStart: -1}
	b.SetOverrides(map[int]*Sample{0x10: o})

	b.AddSample(0x10, &Sample{Data: []int8{1}, LoopStart: -1})
	b.AddSample(0x11, &Sample{Data: []int8{1}, LoopStart: -1})
	test.ExpectEquality(t, b.mixer.samples[0x10], o)
	test.ExpectInequality(t, b.mixer.samples[0x11], o)
}

func TestBackendSnapshot(t *testing.T) {
	b := NewBackend(&environment.Environment{Label: "test"}, testFreq)
	b.AddSample(0x20, &Sample{Data: []int8{1, 2, 3, 4}, LoopStart: 2})
	b.PlayMusic(testModule(), 0, 0)
	b.Render(make([]int8, 3))

	s := b.Snapshot()
	pos := s.(*State).Channels[1].Position
	test.ExpectInequality(t, pos, uint32(0))

	data, err := s.(*State).MarshalBinary()
	test.DemandSuccess(t, err)

	b.Reset()
	test.ExpectFailure(t, b.player.Playing())

	b.Plumb(s)
	test.ExpectSuccess(t, b.player.Playing())
	test.ExpectSuccess(t, b.mixer.channels[1].Active)
	test.ExpectEquality(t, b.mixer.channels[1].Position, pos)

	b.Reset()
	b.Plumb(data)
	test.ExpectSuccess(t, b.player.Playing())
	test.ExpectEquality(t, b.mixer.channels[1].Position, pos)
	test.ExpectEquality(t, len(b.mixer.samples), 1)
	test.ExpectEquality(t, b.mixer.samples[0x20].LoopStart, 2)
	test.ExpectEquality(t, b.tempo, uint16(7050))

	// bad data is ignored
	b.Plumb([]byte{0xff})
	test.ExpectSuccess(t, b.player.Playing())
}

func TestStateEncoding(t *testing.T) {
	// an empty state
	s := &State{Samples: map[int]*Sample{}}
	data, err := s.MarshalBinary()
	test.DemandSuccess(t, err)
	var e State
	test.DemandSuccess(t, e.UnmarshalBinary(data))
	test.ExpectEquality(t, len(e.Samples), 0)

	// state of a playing backend restored into a new backend
	b := NewBackend(&environment.Environment{Label: "test"}, testFreq)
	b.AddSample(0x20, &Sample{Data: []int8{1, -2, 3, -4}, LoopStart: -1})
	b.Play(0x20, 2, 8000, 40)
	b.PlayMusic(testModule(), 0, 0)
	b.Render(make([]int8, 2))

	data, err = b.Snapshot().(*State).MarshalBinary()
	test.DemandSuccess(t, err)

	c := NewBackend(&environment.Environment{Label: "test"}, testFreq)
	c.Plumb(data)
	test.ExpectSuccess(t, c.player.Playing())
	test.ExpectEquality(t, c.mixer.channels[2], b.mixer.channels[2])
	test.ExpectEquality(t, c.tempo, b.tempo)
	test.ExpectEquality(t, c.untilLine, b.untilLine)
	test.ExpectSuccess(t, c.HasSample(0x20))
	test.ExpectFailure(t, c.HasSample(0x21))
	test.DemandEquality(t, len(c.mixer.samples), 1)
	test.ExpectSuccess(t, slices.Equal(c.mixer.samples[0x20].Data, []int8{1, -2, 3, -4}))
	test.ExpectEquality(t, c.mixer.samples[0x20].LoopStart, -1)

	// both backends produce the same output from here
	out1 := make([]int8, 16)
	out2 := make([]int8, 16)
	b.Render(out1)
	c.Render(out2)
	test.ExpectSuccess(t, slices.Equal(out1, out2))
}
