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

package raster

import (
	"fmt"

	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"
)

// State is a copy of the four pages. It is the value returned by the
// Snapshot() function.
type State struct {
	Pages [gfx.NumPages][]byte
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (s *State) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, gfx.NumPages*pageLen)
	for _, p := range s.Pages {
		if len(p) != pageLen {
			return nil, fmt.Errorf("raster: page is %d bytes not %d", len(p), pageLen)
		}
		data = append(data, p...)
	}
	return data, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != gfx.NumPages*pageLen {
		return fmt.Errorf("raster: state is %d bytes not %d", len(data), gfx.NumPages*pageLen)
	}
	for i := range s.Pages {
		s.Pages[i] = make([]byte, pageLen)
		copy(s.Pages[i], data[i*pageLen:])
	}
	return nil
}

// Snapshot implements the vm.Graphics interface.
func (r *Raster) Snapshot() any {
	s := &State{}
	for i, p := range r.pages {
		s.Pages[i] = make([]byte, pageLen)
		copy(s.Pages[i], p)
	}
	return s
}

// Plumb implements the vm.Graphics interface. The state can be the value
// returned by Snapshot() or the result of MarshalBinary().
func (r *Raster) Plumb(state any) {
	switch s := state.(type) {
	case *State:
		for i := range r.pages {
			copy(r.pages[i], s.Pages[i])
		}
	case []byte:
		var st State
		if err := st.UnmarshalBinary(s); err != nil {
			logger.Log(r.env, "raster", err)
			return
		}
		r.Plumb(&st)
	case nil:
	default:
		logger.Logf(r.env, "raster", "cannot plumb state of type %T", state)
	}
}
