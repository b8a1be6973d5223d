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

// Package savestate writes VM snapshots to disk and reads them back. The
// file is a single CBOR value in canonical form.
//
// The state of the Graphics and Audio capabilities is stored when it
// implements the encoding.BinaryMarshaler interface. When loaded, that
// state is presented to the capabilities' Plumb() function as a byte slice.
package savestate

import (
	"encoding"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/vm"
)

// Sentinal error patterns.
const (
	NotSaveState = "savestate: not a save state file"
	WrongVersion = "savestate: unsupported version (%d)"
)

const (
	magic   = "gopherworld"
	version = 1
)

type file struct {
	Magic    string
	Version  int
	Round    int
	State    vm.State
	Graphics []byte
	Audio    []byte
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("savestate: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

func marshal(state any) ([]byte, error) {
	switch s := state.(type) {
	case nil:
		return nil, nil
	case []byte:
		return s, nil
	case encoding.BinaryMarshaler:
		return s.MarshalBinary()
	}
	return nil, fmt.Errorf("savestate: cannot save state of type %T", state)
}

// Save snapshot to the writer.
func Save(w io.Writer, s *vm.Snapshot) error {
	f := file{
		Magic:   magic,
		Version: version,
		Round:   s.Round,
		State:   s.State,
	}

	var err error
	f.Graphics, err = marshal(s.Graphics)
	if err != nil {
		return err
	}
	f.Audio, err = marshal(s.Audio)
	if err != nil {
		return err
	}

	data, err := encMode.Marshal(f)
	if err != nil {
		return fmt.Errorf("savestate: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("savestate: %w", err)
	}

	return nil
}

// Load snapshot from the reader.
func Load(r io.Reader) (*vm.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}

	var f file
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, curated.Errorf(NotSaveState)
	}
	if f.Magic != magic {
		return nil, curated.Errorf(NotSaveState)
	}
	if f.Version != version {
		return nil, curated.Errorf(WrongVersion, f.Version)
	}

	s := &vm.Snapshot{
		State: f.State,
		Round: f.Round,
	}

	// leave the capability state as nil rather than an empty slice
	if len(f.Graphics) > 0 {
		s.Graphics = f.Graphics
	}
	if len(f.Audio) > 0 {
		s.Audio = f.Audio
	}

	return s, nil
}

// SaveFile writes the snapshot to the named file.
func SaveFile(path string, s *vm.Snapshot) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("savestate: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("savestate: %w", err)
		}
	}()
	return Save(f, s)
}

// LoadFile reads a snapshot from the named file.
func LoadFile(path string) (*vm.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}
	defer f.Close()
	return Load(f)
}
