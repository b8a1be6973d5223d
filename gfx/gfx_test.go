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

package gfx_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/test"
)

func TestDecodePalette(t *testing.T) {
	raw := make([]byte, gfx.PaletteSize)
	raw[0] = 0x0f
	raw[1] = 0x00
	raw[2] = 0x00
	raw[3] = 0xf0
	raw[30] = 0x03
	raw[31] = 0x5a

	pal, err := gfx.DecodePalette(raw)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pal[0], color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, pal[1], color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, pal[15], color.RGBA{R: 0x33, G: 0x55, B: 0xaa, A: 0xff})

	_, err = gfx.DecodePalette(raw[1:])
	test.ExpectFailure(t, err)
}
