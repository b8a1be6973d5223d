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

import "github.com/jetsetilly/gopherworld/curated"

// Snapshot is the complete state of the VM and the state of the Graphics and
// Audio capabilities at the time the snapshot was taken.
type Snapshot struct {
	State State
	Round int

	Graphics any
	Audio    any
}

// TakeSnapshot of the VM. Should only be called between rounds.
func (vm *VM) TakeSnapshot(gfx Graphics, aud Audio) *Snapshot {
	return &Snapshot{
		State:    vm.state.Clone(),
		Round:    vm.round,
		Graphics: gfx.Snapshot(),
		Audio:    aud.Snapshot(),
	}
}

// RestoreSnapshot replaces the state of the VM and of the Graphics and Audio
// capabilities. The restored front page is presented with the restored
// palette.
//
// If the snapshot was taken in a different scene the resources for that
// scene are loaded. An error is returned if that fails, in which case the
// VM is unchanged.
func (vm *VM) RestoreSnapshot(s *Snapshot, gfx Graphics, aud Audio) error {
	if s.State.Scene != vm.state.Scene && s.State.Scene != NoScene {
		if err := vm.loadSegments(s.State.Scene); err != nil {
			return curated.Errorf(SceneLoad, s.State.Scene, err)
		}
	}

	vm.state = s.State.Clone()
	vm.round = s.Round
	gfx.Plumb(s.Graphics)
	aud.Plumb(s.Audio)

	gfx.Present(vm.state.FrontPage, vm.palette())

	return nil
}
