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

package paths

import (
	"fmt"
	"path/filepath"
)

// ResourcePath returns the path of a file in a sub-directory of the base
// directory. The sub-directory is created if it does not exist. Either
// argument can be empty.
//
// For example, the save state for slot 1 in a development build:
//
//	p, err := paths.ResourcePath("savestates", "slot1")
//
//	// p == ".gopherworld/savestates/slot1"
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(base, file), nil
}
