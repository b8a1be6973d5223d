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

//go:build !release

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherworld/paths"
	"github.com/jetsetilly/gopherworld/test"
)

func TestPaths(t *testing.T) {
	// development paths are relative to the working directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherworld", "preferences"))

	pth, err = paths.ResourcePath("savestates", "slot1")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherworld", "savestates", "slot1"))

	info, err := os.Stat(filepath.Join(".gopherworld", "savestates"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("savestates", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherworld", "savestates"))
}
