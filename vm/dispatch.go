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

package vm

// execution is the context for the thread being run.
type execution struct {
	thread int
	c      cursor

	// address and value of the instruction being executed
	pc int
	op uint8

	gfx Graphics
	aud Audio
}

// handler executes a single instruction. The opcode has already been read
// from the cursor. Returns true if the thread should stop for this round.
type handler func(vm *VM, ex *execution) (bool, error)

// family returns the handler for an opcode or nil if the opcode is not part
// of the family.
type family func(op uint8) handler

// families are tried in order. the sprs and sprl instructions overlap every
// opcode with the top bits set so the graphics family must come after the
// state and thread families.
var families = [...]family{
	stateFamily,
	threadFamily,
	graphicsFamily,
	audioFamily,
	resourceFamily,
}

func lookup(op uint8) handler {
	for _, f := range families {
		if h := f(op); h != nil {
			return h
		}
	}
	return nil
}
