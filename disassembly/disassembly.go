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

package disassembly

import (
	"fmt"
	"slices"
)

// Disassembly is the linear disassembly of a single program.
type Disassembly struct {
	Entries []Entry

	// addresses referred to by jump, subroutine and setvec instructions
	Labels map[int]string

	// error that ended the disassembly early. nil if the entire program was
	// decoded
	Err error
}

// FromProgram decodes the program from the first byte to the last. The
// returned error is the same as the Err field in the Disassembly.
func FromProgram(code []byte) (*Disassembly, error) {
	dsm := &Disassembly{
		Labels: make(map[int]string),
	}

	addr := 0
	for addr < len(code) {
		e, err := Decode(code, addr)
		if err != nil {
			dsm.Err = err
			break
		}
		dsm.Entries = append(dsm.Entries, e)
		addr += len(e.Bytecode)
	}

	for _, e := range dsm.Entries {
		if e.HasTarget {
			dsm.Labels[e.Target] = fmt.Sprintf("L%04x", e.Target)
		}
	}

	return dsm, dsm.Err
}

// Targets returns the sorted list of labelled addresses.
func (dsm *Disassembly) Targets() []int {
	t := make([]int, 0, len(dsm.Labels))
	for a := range dsm.Labels {
		t = append(t, a)
	}
	slices.Sort(t)
	return t
}

// Search the disassembly for the entry at the address. Returns false if no
// instruction starts at that address.
func (dsm *Disassembly) Search(addr int) (Entry, bool) {
	i, ok := slices.BinarySearchFunc(dsm.Entries, addr, func(e Entry, a int) int {
		return e.Address - a
	})
	if !ok {
		return Entry{}, false
	}
	return dsm.Entries[i], true
}
