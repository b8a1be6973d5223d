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

// Package sdlaudio outputs the mixed audio of the VM through an SDL audio
// device. Samples are pushed to the device queue by the host loop rather than
// pulled by an SDL callback.
package sdlaudio

import (
	"fmt"

	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the device buffer. the precise value is not
// critical but a short buffer reduces lag between video and audio
const bufferLength = 512

// the maximum amount of audio, in multiples of the device buffer, that can
// be queued before samples are dropped. this stops latency growing without
// limit when the host loop is running faster than real time, for example
// when fast-forwarding
const maxQueued = 8

// Audio outputs sound using SDL.
type Audio struct {
	env  *environment.Environment
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer. reused between calls to WriteSamples()
	buffer []uint8

	paused bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// SDL audio subsystem must have been initialised.
func NewAudio(env *environment.Environment, outputFreq int) (*Audio, error) {
	aud := &Audio{
		env: env,
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(outputFreq),
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	if aud.spec.Freq != spec.Freq {
		logger.Logf(env, "sdlaudio", "requested frequency of %dHz but device is %dHz", spec.Freq, aud.spec.Freq)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (aud *Audio) String() string {
	return fmt.Sprintf("%dHz, %d bytes queued", aud.spec.Freq, sdl.GetQueuedAudioSize(aud.id))
}

// OutputFreq returns the frequency of the opened device. This may be
// different to the requested frequency.
func (aud *Audio) OutputFreq() int {
	return int(aud.spec.Freq)
}

// WriteSamples queues the samples for playback. Errors are logged.
func (aud *Audio) WriteSamples(samples []int8) {
	if aud.paused {
		return
	}

	if sdl.GetQueuedAudioSize(aud.id) > bufferLength*maxQueued {
		logger.Log(aud.env, "sdlaudio", "audio queue is full. dropping samples")
		return
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range samples {
		aud.buffer = append(aud.buffer, uint8(s))
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		logger.Log(aud.env, "sdlaudio", err)
	}
}

// Pause stops playback and discards any queued samples. Calls to
// WriteSamples() are ignored while the device is paused.
func (aud *Audio) Pause(paused bool) {
	aud.paused = paused
	if paused {
		sdl.ClearQueuedAudio(aud.id)
	}
	sdl.PauseAudioDevice(aud.id, paused)
}

// EndMixing closes the audio device.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
