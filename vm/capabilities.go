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
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/resources"
)

// ResourceProvider supplies resources by ID. Errors for resources that don't
// exist should match the resources.NotFound pattern.
type ResourceProvider interface {
	Load(id int) (resources.Resource, error)
}

// StringTable supplies the text for the drawstring instruction.
type StringTable interface {
	Get(id uint16) (string, bool)
}

// Graphics is the drawing capability. Pages are numbered zero to three.
type Graphics interface {
	SetPalette(palette gfx.Palette)
	FillPage(page int, color uint8)
	CopyPage(src int, dst int, vscroll int16)
	FillPolygon(page int, pos gfx.Point, offset gfx.Point, color uint8, zoom uint16, poly gfx.Polygon)
	DrawChar(page int, pos gfx.Point, color uint8, char byte)
	BlitBitmap(page int, bitmap []byte)
	Present(page int, palette gfx.Palette)

	// the value returned by Snapshot() is opaque to the VM and is passed
	// back to Plumb() when a snapshot is restored
	Snapshot() any
	Plumb(state any)
}

// Audio is the sound and music capability.
type Audio interface {
	AddSample(id int, sample *audio.Sample)
	HasSample(id int) bool
	Play(id int, channel int, freq uint16, volume uint8)
	Stop(channel int)
	PlayMusic(module *music.Module, tempo uint16, pos uint8)
	UpdateTempo(tempo uint16)
	StopMusic()
	Reset()

	// a music module can request a value to be written to the music
	// synchronisation register. the request is collected once per round
	TakeRegisterRequest() (int16, bool)

	Snapshot() any
	Plumb(state any)
}
