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

package prefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherworld/prefs"
	"github.com/jetsetilly/gopherworld/test"
)

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set("TRUE"))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("foo"))
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectFailure(t, b.Set(10))

	var i prefs.Int
	test.ExpectEquality(t, i.String(), "0")
	test.ExpectSuccess(t, i.Set(" 50"))
	test.ExpectEquality(t, i.Get().(int), 50)
	test.ExpectSuccess(t, i.Set(int64(100)))
	test.ExpectEquality(t, i.Get().(int), 100)
	test.ExpectFailure(t, i.Set("fifty"))

	var f prefs.Float
	test.ExpectEquality(t, f.String(), "0.000")
	test.ExpectSuccess(t, f.Set("1.5"))
	test.ExpectEquality(t, f.Get().(float64), 1.5)

	var s prefs.String
	s.SetMaxLen(5)
	test.ExpectSuccess(t, s.Set("gopherworld"))
	test.ExpectEquality(t, s.String(), "gophe")
}

func TestHooks(t *testing.T) {
	var i prefs.Int
	var pre, post int
	i.SetHookPre(func(v prefs.Value) error {
		pre = v.(int)
		return nil
	})
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})
	test.ExpectSuccess(t, i.Set(7))
	test.ExpectEquality(t, pre, 7)
	test.ExpectEquality(t, post, 7)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var maxEntries prefs.Int
	var opengl prefs.Bool
	var label prefs.String
	test.ExpectSuccess(t, dsk.Add("rewind.maxEntries", &maxEntries))
	test.ExpectSuccess(t, dsk.Add("display.opengl", &opengl))
	test.ExpectSuccess(t, dsk.Add("test.label", &label))
	test.ExpectFailure(t, dsk.Add("test.label", &label))

	test.ExpectSuccess(t, maxEntries.Set(50))
	test.ExpectSuccess(t, opengl.Set(true))
	test.ExpectSuccess(t, label.Set("hello"))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))

	// load into a second disk that only knows about some of the values
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var maxEntries2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("rewind.maxEntries", &maxEntries2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, maxEntries2.Get().(int), 50)

	// saving the second disk preserves the values it doesn't know about
	test.ExpectSuccess(t, maxEntries2.Set(25))
	test.DemandSuccess(t, dsk2.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, maxEntries.Get().(int), 25)
	test.ExpectEquality(t, opengl.Get().(bool), true)
	test.ExpectEquality(t, label.String(), "hello")
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var freq prefs.Int
	test.ExpectSuccess(t, dsk.Add("rewind.snapshotFreq", &freq))
	test.ExpectSuccess(t, freq.Set(5))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("rewind.snapshotFreq::10; unknown::1")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, freq.Get().(int), 10)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	// command line values are used once only
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, freq.Get().(int), 5)
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "missing"))
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Load())
}
