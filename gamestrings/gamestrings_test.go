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

package gamestrings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/gamestrings"
	"github.com/jetsetilly/gopherworld/test"
)

const sample = `0x001: P E A N U T  3000
0x002: Copyright  } 1990 Peanut Computer, Inc.\nAll rights reserved.

0x15e: LEVEL
`

func TestParse(t *testing.T) {
	tab, err := gamestrings.Parse(strings.NewReader(sample))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(tab), 3)

	s, ok := tab.Get(0x001)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "P E A N U T  3000")

	s, ok = tab.Get(0x002)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "Copyright  } 1990 Peanut Computer, Inc.\nAll rights reserved.")

	s, ok = tab.Get(0x15e)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "LEVEL")

	_, ok = tab.Get(0x003)
	test.ExpectFailure(t, ok)
}

func TestParseErrors(t *testing.T) {
	_, err := gamestrings.Parse(strings.NewReader("0x001 no separator\n"))
	test.ExpectEquality(t, curated.Is(err, gamestrings.InvalidLine), true)

	_, err = gamestrings.Parse(strings.NewReader("001: no prefix\n"))
	test.ExpectEquality(t, curated.Is(err, gamestrings.InvalidLine), true)

	_, err = gamestrings.Parse(strings.NewReader("0xzz: bad hex\n"))
	test.ExpectEquality(t, curated.Is(err, gamestrings.InvalidLine), true)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tab, err := gamestrings.Load(filepath.Join(dir, "strings.txt"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tab), 0)

	pth := filepath.Join(dir, "strings.txt")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(sample), 0600))
	tab, err = gamestrings.Load(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tab), 3)
}
