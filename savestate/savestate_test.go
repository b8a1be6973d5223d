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

package savestate_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx/raster"
	"github.com/jetsetilly/gopherworld/savestate"
	"github.com/jetsetilly/gopherworld/test"
	"github.com/jetsetilly/gopherworld/vm"
	"github.com/jetsetilly/gopherworld/vm/threads"
)

func snapshot(t *testing.T) (*vm.Snapshot, *raster.Raster, *audio.Backend) {
	t.Helper()

	env := &environment.Environment{Label: "test"}
	g := raster.NewRaster(env, nil)
	a := audio.NewBackend(env, 22050)
	g.FillPage(2, 0x0a)
	a.AddSample(0x20, &audio.Sample{Data: []int8{1, 2, 3}, LoopStart: -1})

	s := &vm.Snapshot{
		Round:    17,
		Graphics: g.Snapshot(),
		Audio:    a.Snapshot(),
	}
	s.State.Scene = 3
	s.State.FrontPage = 2
	s.State.Registers.Set(0x10, -5)
	s.State.Threads[4].State = threads.PausedAt(0x1234)
	s.State.Threads[4].Push(0x20)
	s.State.Palette[3] = 0x77

	return s, g, a
}

func TestSaveLoad(t *testing.T) {
	s, g, a := snapshot(t)

	var buf bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&buf, s))

	l, err := savestate.Load(&buf)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, l.Round, 17)
	test.ExpectEquality(t, l.State.Scene, 3)
	test.ExpectEquality(t, l.State.FrontPage, 2)
	test.ExpectEquality(t, l.State.Registers, s.State.Registers)
	test.ExpectEquality(t, l.State.Threads[4].State, threads.PausedAt(0x1234))
	test.DemandEquality(t, len(l.State.Threads[4].CallStack), 1)
	test.ExpectEquality(t, l.State.Threads[4].CallStack[0], 0x20)
	test.ExpectEquality(t, l.State.Palette, s.State.Palette)

	// the capability state is plumbed from the encoded form
	g.FillPage(2, 0)
	g.Plumb(l.Graphics)
	test.ExpectEquality(t, g.Page(2)[0], uint8(0x0a))

	a.Reset()
	a.Plumb(l.Audio)
	st, ok := a.Snapshot().(*audio.State)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(st.Samples), 1)
}

// the same snapshot always produces the same file
func TestCanonical(t *testing.T) {
	s, _, _ := snapshot(t)

	var a, b bytes.Buffer
	test.DemandSuccess(t, savestate.Save(&a, s))
	test.DemandSuccess(t, savestate.Save(&b, s))
	test.ExpectSuccess(t, bytes.Equal(a.Bytes(), b.Bytes()))
}

func TestFile(t *testing.T) {
	s, _, _ := snapshot(t)
	pth := filepath.Join(t.TempDir(), "save")

	test.DemandSuccess(t, savestate.SaveFile(pth, s))
	l, err := savestate.LoadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Round, s.Round)

	_, err = savestate.LoadFile(filepath.Join(t.TempDir(), "missing"))
	test.ExpectFailure(t, err)
}

func TestBadData(t *testing.T) {
	_, err := savestate.Load(bytes.NewReader([]byte{0xa1, 0x61}))
	test.ExpectSuccess(t, curated.Is(err, savestate.NotSaveState))

	// unsupported capability state
	s := &vm.Snapshot{Graphics: 10}
	var buf bytes.Buffer
	test.ExpectFailure(t, savestate.Save(&buf, s))
}
