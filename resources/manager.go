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

package resources

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/logger"
)

// Sentinal error patterns.
const (
	NotFound       = "resources: resource %#02x not found"
	InvalidMemList = "resources: memlist: %v"
	BankError      = "resources: bank %02x: %v"
)

// name of the resource list in the data directory.
const memListFile = "memlist.bin"

// each memlist record is twenty bytes long.
const recordLen = 20

// Manager loads resources from the data directory. Loaded resources are kept
// for the lifetime of the Manager.
type Manager struct {
	dir     string
	entries []Entry
	loaded  map[int][]byte
}

// NewManager reads the memlist.bin file in the data directory.
func NewManager(dir string) (*Manager, error) {
	f, err := os.Open(filepath.Join(dir, memListFile))
	if err != nil {
		return nil, curated.Errorf(InvalidMemList, err)
	}
	defer f.Close()

	mgr := &Manager{
		dir:    dir,
		loaded: make(map[int][]byte),
	}

	mgr.entries, err = readMemList(bufio.NewReader(f))
	if err != nil {
		return nil, curated.Errorf(InvalidMemList, err)
	}

	logger.Logf(logger.Allow, "resources", "%d entries in %s", len(mgr.entries), memListFile)

	return mgr, nil
}

func readMemList(r io.Reader) ([]Entry, error) {
	var entries []Entry

	rec := make([]byte, recordLen)
	for {
		if _, err := io.ReadFull(r, rec[:1]); err != nil {
			return nil, fmt.Errorf("missing end marker: %w", err)
		}

		// the list ends with a record whose state byte is 0xff. the rest of
		// that record is not guaranteed to exist
		switch rec[0] {
		case 0xff:
			return entries, nil
		case 0x00:
		default:
			return nil, fmt.Errorf("invalid state %#02x in entry %d", rec[0], len(entries))
		}

		if _, err := io.ReadFull(r, rec[1:]); err != nil {
			return nil, fmt.Errorf("truncated entry %d: %w", len(entries), err)
		}

		if rec[1] > byte(Unknown) {
			return nil, fmt.Errorf("invalid type %d in entry %d", rec[1], len(entries))
		}

		entries = append(entries, Entry{
			Type:       Type(rec[1]),
			Rank:       rec[6],
			Bank:       rec[7],
			Offset:     binary.BigEndian.Uint32(rec[8:]),
			PackedSize: int(binary.BigEndian.Uint16(rec[14:])),
			Size:       int(binary.BigEndian.Uint16(rec[18:])),
		})
	}
}

// Len returns the number of entries in the resource list.
func (mgr *Manager) Len() int {
	return len(mgr.entries)
}

// Entry returns the memlist record for the resource.
func (mgr *Manager) Entry(id int) (Entry, error) {
	// resource zero is never valid
	if id <= 0 || id >= len(mgr.entries) {
		return Entry{}, curated.Errorf(NotFound, id)
	}
	return mgr.entries[id], nil
}

// Load returns the resource with the ID, reading it from the bank file if
// it hasn't been loaded before.
func (mgr *Manager) Load(id int) (Resource, error) {
	e, err := mgr.Entry(id)
	if err != nil {
		return Resource{}, err
	}

	if d, ok := mgr.loaded[id]; ok {
		return Resource{ID: id, Type: e.Type, Data: d}, nil
	}

	d, err := mgr.read(e)
	if err != nil {
		return Resource{}, err
	}
	mgr.loaded[id] = d

	return Resource{ID: id, Type: e.Type, Data: d}, nil
}

func (mgr *Manager) read(e Entry) ([]byte, error) {
	if e.Size == 0 {
		return []byte{}, nil
	}

	if e.PackedSize > e.Size {
		return nil, curated.Errorf(BankError, e.Bank, fmt.Errorf("packed size %d larger than size %d", e.PackedSize, e.Size))
	}

	f, err := os.Open(filepath.Join(mgr.dir, fmt.Sprintf("bank%02x", e.Bank)))
	if err != nil {
		return nil, curated.Errorf(BankError, e.Bank, err)
	}
	defer f.Close()

	data := make([]byte, e.Size)
	if _, err := f.ReadAt(data[:e.PackedSize], int64(e.Offset)); err != nil {
		return nil, curated.Errorf(BankError, e.Bank, err)
	}

	if e.Size > e.PackedSize {
		if err := unpack(data, e.PackedSize); err != nil {
			return nil, curated.Errorf(BankError, e.Bank, err)
		}
	}

	return data, nil
}
