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

import (
	"github.com/jetsetilly/gopherworld/audio"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/resources"
)

func resourceFamily(op uint8) handler {
	if op == OpLoadResource {
		return loadresource
	}
	return nil
}

func loadresource(vm *VM, ex *execution) (bool, error) {
	id := int(ex.c.u16())

	if ex.c.err != nil {
		return false, nil
	}

	switch {
	case id == 0:
		logger.Log(vm.env, "vm", "loadresource: ignoring request to release resources")
		return false, nil
	case id >= SceneThreshold:
		vm.RequestScene(id - SceneThreshold)
		return false, nil
	}

	r, err := vm.resources.Load(id)
	if err != nil {
		logger.Logf(vm.env, "vm", "loadresource: %v", err)
		return false, nil
	}

	switch r.Type {
	case resources.Sound:
		s, err := audio.DecodeSample(r.Data)
		if err != nil {
			logger.Logf(vm.env, "vm", "loadresource: %#02x: %v", id, err)
			return false, nil
		}
		ex.aud.AddSample(id, s)
	case resources.Music:
		// music is decoded when it is played
	case resources.Bitmap:
		ex.gfx.BlitBitmap(0, r.Data)
	default:
		logger.Logf(vm.env, "vm", "loadresource: unexpected %s resource (%#02x)", r.Type, id)
	}

	return false, nil
}
