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

package sdlplay

import (
	"github.com/jetsetilly/gopherworld/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() []gui.Event {
	scr.events = scr.events[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.events = append(scr.events, gui.Event{ID: gui.EventQuit})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if e, ok := keyEvent(ev.Keysym.Sym, ev.Type == sdl.KEYDOWN); ok {
				scr.events = append(scr.events, e)
			}
		}
	}

	return scr.events
}

// keyEvent translates a key press or release into a gui.Event. Keys that are
// released only produce an event if the event is for an input that is held.
func keyEvent(sym sdl.Keycode, down bool) (gui.Event, bool) {
	switch sym {
	case sdl.K_ESCAPE:
		return gui.Event{ID: gui.EventQuit}, down
	case sdl.K_LEFT:
		return gui.Event{ID: gui.EventLeft, Down: down}, true
	case sdl.K_RIGHT:
		return gui.Event{ID: gui.EventRight, Down: down}, true
	case sdl.K_UP:
		return gui.Event{ID: gui.EventUp, Down: down}, true
	case sdl.K_DOWN:
		return gui.Event{ID: gui.EventDown, Down: down}, true
	case sdl.K_SPACE, sdl.K_RETURN:
		return gui.Event{ID: gui.EventAction, Down: down}, true
	case sdl.K_TAB:
		return gui.Event{ID: gui.EventFastForward, Down: down}, true
	case sdl.K_F1:
		return gui.Event{ID: gui.EventPause}, down
	case sdl.K_F2:
		return gui.Event{ID: gui.EventStep}, down
	case sdl.K_F3:
		return gui.Event{ID: gui.EventRewind}, down
	case sdl.K_F5:
		return gui.Event{ID: gui.EventSaveState}, down
	case sdl.K_F9:
		return gui.Event{ID: gui.EventLoadState}, down
	case sdl.K_BACKSPACE:
		return gui.Event{ID: gui.EventChar, Char: 0x08}, down
	}

	// letters are always given to the VM in upper case
	if sym >= sdl.K_a && sym <= sdl.K_z {
		return gui.Event{ID: gui.EventChar, Char: byte(sym-sdl.K_a) + 'A'}, down
	}
	if sym >= sdl.K_0 && sym <= sdl.K_9 {
		return gui.Event{ID: gui.EventChar, Char: byte(sym-sdl.K_0) + '0'}, down
	}

	return gui.Event{}, false
}
