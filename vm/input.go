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

import "github.com/jetsetilly/gopherworld/vm/registers"

// Input is the state of the player's controls. Horizontal and Vertical are
// -1, 0 or 1 (left/up, centre, right/down).
type Input struct {
	Horizontal int
	Vertical   int
	Action     bool

	// the most recent character typed. zero if there is none
	LastChar byte
}

// bits in the input mask registers
const (
	maskRight  = 0x01
	maskLeft   = 0x02
	maskDown   = 0x04
	maskUp     = 0x08
	maskAction = 0x80
)

// UpdateInput mirrors the state of the controls into the input registers.
// Should be called before ProcessRound().
func (vm *VM) UpdateInput(in Input) {
	regs := &vm.state.Registers

	var mask int16

	var v int16
	switch {
	case in.Vertical < 0:
		v = -1
		mask |= maskUp
	case in.Vertical > 0:
		v = 1
		mask |= maskDown
	}
	regs.Set(registers.HeroPosUpDown, v)
	regs.Set(registers.HeroPosJumpDown, v)

	var h int16
	switch {
	case in.Horizontal < 0:
		h = -1
		mask |= maskLeft
	case in.Horizontal > 0:
		h = 1
		mask |= maskRight
	}
	regs.Set(registers.HeroPosLeftRight, h)

	// the position mask does not include the action button
	regs.Set(registers.HeroPosMask, mask)

	var a int16
	if in.Action {
		a = 1
		mask |= maskAction
	}
	regs.Set(registers.HeroAction, a)
	regs.Set(registers.HeroActionPosMask, mask)

	if in.LastChar != 0 {
		regs.Set(registers.LastKeyChar, int16(in.LastChar))
	}
}
