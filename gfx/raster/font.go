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

package raster

import (
	"image"
	"sync"

	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphs are eight pixels square.
const glyphSize = 8

// range of printable characters.
const (
	firstChar = 0x20
	lastChar  = 0x7e
)

// one byte per row. the top bit is the leftmost pixel.
type glyph [glyphSize]uint8

var glyphs struct {
	once sync.Once
	set  [lastChar - firstChar + 1]glyph
}

// prepareGlyphs renders the basic font into eight by eight cells.
func prepareGlyphs() {
	face := basicfont.Face7x13
	cell := image.NewAlpha(image.Rect(0, 0, glyphSize, glyphSize))

	for c := firstChar; c <= lastChar; c++ {
		dot := fixed.P(0, face.Ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(c))
		if !ok {
			continue
		}

		for i := range cell.Pix {
			cell.Pix[i] = 0
		}
		sr := image.Rectangle{Min: maskp, Max: maskp.Add(dr.Size())}
		draw.NearestNeighbor.Scale(cell, cell.Bounds(), mask, sr, draw.Src, nil)

		var g glyph
		for y := range glyphSize {
			for x := range glyphSize {
				if cell.AlphaAt(x, y).A >= 0x80 {
					g[y] |= 0x80 >> uint(x)
				}
			}
		}
		glyphs.set[c-firstChar] = g
	}
}

// DrawChar implements the vm.Graphics interface.
func (r *Raster) DrawChar(page int, pos gfx.Point, color uint8, char byte) {
	if !r.validPage(page) {
		return
	}

	// only direct colours are valid for text
	if color > 0x0f {
		logger.Logf(r.env, "raster", "unexpected text colour (%#02x)", color)
		return
	}

	if char < firstChar || char > lastChar {
		logger.Logf(r.env, "raster", "character not in font (%#02x)", char)
		return
	}

	glyphs.once.Do(prepareGlyphs)
	g := glyphs.set[char-firstChar]

	dst := r.pages[page]
	for row, bits := range g {
		y := int(pos.Y) + row
		if y < 0 || y >= gfx.ScreenHeight {
			continue
		}
		for col := range glyphSize {
			x := int(pos.X) + col
			if x < 0 || x >= gfx.ScreenWidth {
				continue
			}
			if bits&(0x80>>uint(col)) != 0 {
				dst[y*gfx.ScreenWidth+x] = color
			}
		}
	}
}
