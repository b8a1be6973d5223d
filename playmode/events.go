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

package playmode

import (
	"github.com/jetsetilly/gopherworld/gui"
	"github.com/jetsetilly/gopherworld/logger"
)

// handleEvents applies the events from the GUI. Returns true if one of the
// events was a request to quit.
func (pl *playmode) handleEvents(events []gui.Event) (bool, error) {
	for _, ev := range events {
		switch ev.ID {
		case gui.EventQuit:
			return true, nil

		case gui.EventLeft, gui.EventRight, gui.EventUp, gui.EventDown, gui.EventAction:
			if ev.Down {
				pl.press(ev.ID)
			} else {
				pl.released = append(pl.released, ev.ID)
			}

		case gui.EventFastForward:
			pl.fastForward = ev.Down

		case gui.EventChar:
			pl.input.LastChar = ev.Char

		case gui.EventPause:
			pl.setPause(!pl.paused)

		case gui.EventStep:
			if pl.paused {
				if err := pl.step(); err != nil {
					return false, err
				}
			}

		case gui.EventRewind:
			if err := pl.rewind.Rewind(); err != nil {
				logger.Log(pl.env, "playmode", err)
			}
			pl.wait = 0

		case gui.EventSaveState:
			pl.saveState()

		case gui.EventLoadState:
			pl.loadState()
		}
	}

	return false, nil
}

func (pl *playmode) press(id gui.EventID) {
	switch id {
	case gui.EventLeft:
		pl.input.Horizontal = -1
	case gui.EventRight:
		pl.input.Horizontal = 1
	case gui.EventUp:
		pl.input.Vertical = -1
	case gui.EventDown:
		pl.input.Vertical = 1
	case gui.EventAction:
		pl.input.Action = true
	}
}

// applyReleases clears the inputs that were released during the tick. A
// direction is only cleared if it is still the most recent direction
// pressed on that axis.
func (pl *playmode) applyReleases() {
	for _, id := range pl.released {
		switch id {
		case gui.EventLeft:
			if pl.input.Horizontal < 0 {
				pl.input.Horizontal = 0
			}
		case gui.EventRight:
			if pl.input.Horizontal > 0 {
				pl.input.Horizontal = 0
			}
		case gui.EventUp:
			if pl.input.Vertical < 0 {
				pl.input.Vertical = 0
			}
		case gui.EventDown:
			if pl.input.Vertical > 0 {
				pl.input.Vertical = 0
			}
		case gui.EventAction:
			pl.input.Action = false
		}
	}
	pl.released = pl.released[:0]
}

// step processes a single round while paused. The state before the round is
// recorded in the rewind history so that the step can be undone.
func (pl *playmode) step() error {
	pl.rewind.Record()
	pl.vm.UpdateInput(pl.input)

	ok, err := pl.round()
	if err != nil {
		return err
	}
	if !ok {
		logger.Log(pl.env, "playmode", "no threads to run")
	}
	return nil
}
