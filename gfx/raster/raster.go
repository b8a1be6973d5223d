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

// Package raster is a software implementation of the graphics capability of
// the virtual machine. It keeps four pages of colour indices and converts the
// presented page to RGBA using the current palette.
//
// Presented frames are passed to a Display. The Display might be a window, a
// digest of the frame or nothing at all.
package raster

import (
	"image"

	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/resources"
)

// Display receives every presented frame. The frame is reused by the Raster
// and should be copied if it is to be kept.
type Display interface {
	Present(frame *image.RGBA) error
}

const pageLen = gfx.ScreenWidth * gfx.ScreenHeight

// Raster implements the graphics capability in software.
type Raster struct {
	env     *environment.Environment
	display Display

	pages   [gfx.NumPages][]byte
	palette gfx.Palette
	frame   *image.RGBA
}

// NewRaster is the preferred method of initialisation for the Raster type.
// The display argument can be nil.
func NewRaster(env *environment.Environment, display Display) *Raster {
	r := &Raster{
		env:     env,
		display: display,
		frame:   image.NewRGBA(image.Rect(0, 0, gfx.ScreenWidth, gfx.ScreenHeight)),
	}
	for i := range r.pages {
		r.pages[i] = make([]byte, pageLen)
	}
	return r
}

// SetDisplay changes the Display that receives presented frames.
func (r *Raster) SetDisplay(display Display) {
	r.display = display
}

// Page returns the colour indices of the page. The returned slice should not
// be modified.
func (r *Raster) Page(page int) []byte {
	return r.pages[page]
}

// Frame returns the most recently presented frame.
func (r *Raster) Frame() *image.RGBA {
	return r.frame
}

func (r *Raster) validPage(page int) bool {
	if page < 0 || page >= gfx.NumPages {
		logger.Logf(r.env, "raster", "invalid page (%d)", page)
		return false
	}
	return true
}

// SetPalette implements the vm.Graphics interface.
func (r *Raster) SetPalette(palette gfx.Palette) {
	r.palette = palette
}

// FillPage implements the vm.Graphics interface.
func (r *Raster) FillPage(page int, color uint8) {
	if !r.validPage(page) {
		return
	}
	dst := r.pages[page]
	for i := range dst {
		dst[i] = color
	}
}

// CopyPage implements the vm.Graphics interface. A positive vscroll moves
// the image down the destination page.
func (r *Raster) CopyPage(src int, dst int, vscroll int16) {
	if !r.validPage(src) || !r.validPage(dst) {
		return
	}
	if src == dst {
		logger.Logf(r.env, "raster", "cannot copy page %d into itself", src)
		return
	}
	if vscroll < -199 || vscroll > 199 {
		logger.Logf(r.env, "raster", "vscroll out of range (%d)", vscroll)
		return
	}

	var srcStart, dstStart int
	if vscroll < 0 {
		srcStart = int(-vscroll) * gfx.ScreenWidth
	} else {
		dstStart = int(vscroll) * gfx.ScreenWidth
	}

	copy(r.pages[dst][dstStart:pageLen-srcStart], r.pages[src][srcStart:pageLen-dstStart])
}

// BlitBitmap implements the vm.Graphics interface.
func (r *Raster) BlitBitmap(page int, bitmap []byte) {
	if !r.validPage(page) {
		return
	}
	pixels, err := resources.Deplanarise(bitmap)
	if err != nil {
		logger.Log(r.env, "raster", err)
		return
	}
	copy(r.pages[page], pixels)
}

// Present implements the vm.Graphics interface.
func (r *Raster) Present(page int, palette gfx.Palette) {
	if !r.validPage(page) {
		return
	}

	src := r.pages[page]
	pix := r.frame.Pix
	for i, c := range src {
		col := palette[c&0x0f]
		pix[i*4] = col.R
		pix[i*4+1] = col.G
		pix[i*4+2] = col.B
		pix[i*4+3] = 0xff
	}

	if r.display != nil {
		if err := r.display.Present(r.frame); err != nil {
			logger.Log(r.env, "raster", err)
		}
	}
}
