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
	"fmt"

	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/vm/registers"
	"github.com/jetsetilly/gopherworld/vm/threads"
)

// NoScene is the value of State.Scene before any scene has been loaded.
const NoScene = -1

// State is the complete mutable state of the VM. Copy with the Clone()
// function. A plain assignment shares the thread call stacks.
type State struct {
	Registers registers.File
	Threads   threads.Table

	// the scene currently loaded and any scene requested for the next round
	Scene          int
	SceneRequest   int
	SceneRequested bool

	// page indexes
	RenderPage int
	BackPage   int
	FrontPage  int

	// the palette most recently selected by setpalette
	Palette [gfx.PaletteSize]byte
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Threads = s.Threads.Clone()
	return c
}

func (s *State) String() string {
	return fmt.Sprintf("scene %d render %d back %d front %d", s.Scene, s.RenderPage, s.BackPage, s.FrontPage)
}
