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

// Package override loads replacement sound samples from a directory. Files
// are named after the resource they replace, in hexadecimal, with either a
// .wav or an .mp3 extension. For example:
//
//	5b.wav
//	5c.mp3
//
// Only the first (or left) channel of the file is used and it is reduced to
// eight bits. The replacement is played at the frequency requested by the
// game and so should be recorded at a similar rate to the original sample.
package override

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/logger"
)

// Load all replacement samples in the directory. Files that aren't named
// correctly are ignored.
func Load(dir string) (map[int]*audio.Sample, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("override: %w", err)
	}

	samples := make(map[int]*audio.Sample)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(e.Name()))
		id, err := strconv.ParseUint(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), 16, 16)
		if err != nil {
			continue
		}

		var s *audio.Sample
		switch ext {
		case ".wav":
			s, err = loadWAV(filepath.Join(dir, e.Name()))
		case ".mp3":
			s, err = loadMP3(filepath.Join(dir, e.Name()))
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("override: %s: %w", e.Name(), err)
		}

		logger.Logf(logger.Allow, "override", "sample %02x replaced by %s (%d bytes)", id, e.Name(), len(s.Data))
		samples[int(id)] = s
	}

	return samples, nil
}

func loadWAV(name string) (*audio.Sample, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	return fromIntBuffer(buf), nil
}

// fromIntBuffer takes the first channel of the buffer and reduces it to
// eight bits.
func fromIntBuffer(buf *goaudio.IntBuffer) *audio.Sample {
	chans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		chans = buf.Format.NumChannels
	}
	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = 16
	}

	s := &audio.Sample{
		Data:      make([]int8, 0, len(buf.Data)/chans),
		LoopStart: -1,
	}
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if depth == 8 {
			// eight bit wav data is unsigned
			v -= 128
		} else {
			v >>= uint(depth - 8)
		}
		s.Data = append(s.Data, int8(v))
	}

	return s
}

func loadMP3(name string) (*audio.Sample, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	// the decoded stream is always 16 bit little endian with two channels
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	s := &audio.Sample{
		Data:      make([]int8, 0, len(data)/4),
		LoopStart: -1,
	}
	for i := 0; i+1 < len(data); i += 4 {
		// the high byte of the left channel
		s.Data = append(s.Data, int8(data[i+1]))
	}

	return s, nil
}
