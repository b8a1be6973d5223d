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
	"github.com/jetsetilly/gopherworld/audio/music"
	"github.com/jetsetilly/gopherworld/logger"
)

// the highest volume accepted by the audio capability
const maxVolume = 0x3f

func audioFamily(op uint8) handler {
	switch op {
	case OpPlaySound:
		return playsound
	case OpPlayMusic:
		return playmusic
	}
	return nil
}

func playsound(vm *VM, ex *execution) (bool, error) {
	id := int(ex.c.u16())
	freq := int(ex.c.u8())
	vol := ex.c.u8()
	channel := int(ex.c.u8() & 0x03)

	if ex.c.err != nil {
		return false, nil
	}

	if vol == 0 {
		ex.aud.Stop(channel)
		return false, nil
	}

	if freq >= len(audio.FrequencyTable) {
		logger.Logf(vm.env, "vm", "playsound: frequency index out of range (%d)", freq)
		return false, nil
	}

	if !ex.aud.HasSample(id) {
		logger.Logf(vm.env, "vm", "playsound: sample %#02x has not been loaded", id)
		return false, nil
	}

	ex.aud.Play(id, channel, audio.FrequencyTable[freq], min(vol, maxVolume))
	return false, nil
}

func playmusic(vm *VM, ex *execution) (bool, error) {
	id := int(ex.c.u16())
	delay := ex.c.u16()
	pos := ex.c.u8()

	if ex.c.err != nil {
		return false, nil
	}

	switch {
	case id != 0:
		r, err := vm.resources.Load(id)
		if err != nil {
			logger.Logf(vm.env, "vm", "playmusic: %v", err)
			return false, nil
		}
		m, err := music.DecodeModule(r.Data)
		if err != nil {
			logger.Logf(vm.env, "vm", "playmusic: %v", err)
			return false, nil
		}
		ex.aud.PlayMusic(m, delay, pos)
	case delay != 0:
		ex.aud.UpdateTempo(delay)
	default:
		ex.aud.StopMusic()
	}

	return false, nil
}
