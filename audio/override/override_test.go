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

package override

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherworld/test"
)

func writeWAV(t *testing.T, name string, data []int) {
	t.Helper()

	f, err := os.Create(name)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 2, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	writeWAV(t, filepath.Join(dir, "5b.wav"), []int{0x1000, -1, -0x2000, 0x7fff, 0x7f00, 0})
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "notes.wav"), []byte("ignored"), 0600))

	samples, err := Load(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(samples), 1)

	s, ok := samples[0x5b]
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(s.Data), 3)
	test.ExpectEquality(t, s.Data[0], int8(0x10))
	test.ExpectEquality(t, s.Data[1], int8(-0x20))
	test.ExpectEquality(t, s.Data[2], int8(0x7f))
	test.ExpectEquality(t, s.LoopStart, -1)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "10.wav"), []byte("not a wav file"), 0600))

	_, err := Load(dir)
	test.ExpectFailure(t, err)

	_, err = Load(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
}

func TestFromIntBuffer(t *testing.T) {
	s := fromIntBuffer(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1},
		Data:           []int{0, 128, 255},
		SourceBitDepth: 8,
	})
	test.ExpectEquality(t, len(s.Data), 3)
	test.ExpectEquality(t, s.Data[0], int8(-128))
	test.ExpectEquality(t, s.Data[1], int8(0))
	test.ExpectEquality(t, s.Data[2], int8(127))
}
