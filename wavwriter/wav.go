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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/logger"
)

// the mixer output is eight bits but is written to the file as sixteen bit
// samples
const bitDepth = 16

// WavWriter collects mixed audio and writes it to a WAV file.
type WavWriter struct {
	env        *environment.Environment
	filename   string
	outputFreq int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(env *environment.Environment, filename string, outputFreq int) (*WavWriter, error) {
	if outputFreq <= 0 {
		return nil, fmt.Errorf("wavwriter: invalid output frequency (%d)", outputFreq)
	}
	return &WavWriter{
		env:        env,
		filename:   filename,
		outputFreq: outputFreq,
	}, nil
}

// WriteSamples adds mixed samples to the buffer.
func (aw *WavWriter) WriteSamples(samples []int8) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s)<<8)
	}
}

// Len returns the number of samples in the buffer.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.outputFreq, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.outputFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.env, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}

// Reset discards the buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
