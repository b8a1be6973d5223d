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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# preferences file. edits made while the application is running may be lost"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to the Disk instance. The key must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already registered: %s", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file into a map. a missing file is not an error.
func (dsk *Disk) read() (map[string]any, error) {
	data := make(map[string]any)

	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	if err := toml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	return data, nil
}

// Save current preference values to disk. Values in the file that have not
// been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.Get()
	}

	var buf bytes.Buffer
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")

	// writing keys in sorted order means the files are stable between saves
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	enc := toml.NewEncoder(&buf)
	for _, k := range keys {
		if err := enc.Encode(map[string]any{k: data[k]}); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Any values given on the command line
// for registered keys are applied after the values from the file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Reset all registered values to their zero values.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}
