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

package gui

import "fmt"

// EventID identifies the type of an Event.
type EventID int

// List of valid EventID values.
const (
	EventQuit EventID = iota

	// directions and the action button. the Down field of the Event indicates
	// whether the input has been pressed or released
	EventLeft
	EventRight
	EventUp
	EventDown
	EventAction

	// fast-forward is active for as long as the input is held
	EventFastForward

	// toggle pause. single step is only acted upon while paused
	EventPause
	EventStep

	EventRewind
	EventSaveState
	EventLoadState

	// a character key was pressed. the character is in the Char field
	EventChar
)

func (id EventID) String() string {
	switch id {
	case EventQuit:
		return "quit"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventAction:
		return "action"
	case EventFastForward:
		return "fast forward"
	case EventPause:
		return "pause"
	case EventStep:
		return "step"
	case EventRewind:
		return "rewind"
	case EventSaveState:
		return "save state"
	case EventLoadState:
		return "load state"
	case EventChar:
		return "char"
	}
	return fmt.Sprintf("unknown event (%d)", id)
}

// Event is a single item of user input.
type Event struct {
	ID   EventID
	Down bool
	Char byte
}

func (ev Event) String() string {
	switch ev.ID {
	case EventChar:
		return fmt.Sprintf("%s %q", ev.ID, ev.Char)
	case EventLeft, EventRight, EventUp, EventDown, EventAction, EventFastForward:
		if ev.Down {
			return fmt.Sprintf("%s down", ev.ID)
		}
		return fmt.Sprintf("%s up", ev.ID)
	}
	return ev.ID.String()
}
