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

// Package scenes lists the resources used by each part of the game. A scene
// is loaded when the bytecode requests a resource numbered 0x3e80 or above,
// the scene number being the difference.
package scenes

import (
	"github.com/jetsetilly/gopherworld/curated"
)

// Sentinal error patterns.
const (
	UnknownScene = "scenes: unknown scene (%d)"
)

// Scene names the resources for one part of the game. Video2 is zero for
// scenes that don't have a second polygon segment.
type Scene struct {
	Name     string
	Palette  int
	Bytecode int
	Video1   int
	Video2   int
}

// the order of the table is fixed by the game data.
var table = [...]Scene{
	{Name: "copy protection", Palette: 0x14, Bytecode: 0x15, Video1: 0x16},
	{Name: "intro", Palette: 0x17, Bytecode: 0x18, Video1: 0x19},
	{Name: "water", Palette: 0x1a, Bytecode: 0x1b, Video1: 0x1c, Video2: 0x11},
	{Name: "jail", Palette: 0x1d, Bytecode: 0x1e, Video1: 0x1f, Video2: 0x11},
	{Name: "city", Palette: 0x20, Bytecode: 0x21, Video1: 0x22, Video2: 0x11},
	{Name: "arena", Palette: 0x23, Bytecode: 0x24, Video1: 0x25},
	{Name: "bath", Palette: 0x26, Bytecode: 0x27, Video1: 0x28, Video2: 0x11},
	{Name: "end", Palette: 0x29, Bytecode: 0x2a, Video1: 0x2b, Video2: 0x11},
	{Name: "password", Palette: 0x7d, Bytecode: 0x7e, Video1: 0x7f},
}

// Count is the number of scenes in the game.
const Count = len(table)

// Default is the scene started when no other scene is specified. The copy
// protection screen is skipped.
const Default = 1

// Get returns the scene with the index.
func Get(index int) (Scene, error) {
	if index < 0 || index >= len(table) {
		return Scene{}, curated.Errorf(UnknownScene, index)
	}
	return table[index], nil
}
