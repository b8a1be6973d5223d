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
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/vm/registers"
)

// special page operands
const (
	pageBack  uint8 = 0xff
	pageFront uint8 = 0xfe
)

// the range of vscroll values accepted by copyvideopage
const maxVScroll = gfx.ScreenHeight - 1

// text is drawn on a grid of 8x8 cells
const charSize = 8

func graphicsFamily(op uint8) handler {
	switch {
	case IsSprs(op):
		return sprs
	case IsSprl(op):
		return sprl
	}

	switch op {
	case OpSetPalette:
		return setpalette
	case OpSelectVideoPage:
		return selectvideopage
	case OpFillVideoPage:
		return fillvideopage
	case OpCopyVideoPage:
		return copyvideopage
	case OpBlitFramebuffer:
		return blitframebuffer
	case OpDrawString:
		return drawstring
	}
	return nil
}

// page resolves a page operand to a page index
func (vm *VM) page(id uint8) int {
	switch {
	case id == pageBack:
		return vm.state.BackPage
	case id == pageFront:
		return vm.state.FrontPage
	case id <= 3:
		return int(id)
	case id&0xfc == 0x40:
		return int(id & 0x03)
	case id&0xf8 == 0x80:
		return int(id & 0x03)
	}
	logger.Logf(vm.env, "vm", "unusual page operand (%#02x)", id)
	return int(id & 0x03)
}

func setpalette(vm *VM, ex *execution) (bool, error) {
	id := int(ex.c.u8())

	// fade speed is not used
	_ = ex.c.u8()

	start := id * gfx.PaletteSize
	end := start + gfx.PaletteSize
	if end > len(vm.palettes) {
		logger.Logf(vm.env, "vm", "palette (%d) is not in the palette resource", id)
		return false, nil
	}

	copy(vm.state.Palette[:], vm.palettes[start:end])

	pal, err := gfx.DecodePalette(vm.state.Palette[:])
	if err != nil {
		logger.Log(vm.env, "vm", err)
		return false, nil
	}
	ex.gfx.SetPalette(pal)

	return false, nil
}

func selectvideopage(vm *VM, ex *execution) (bool, error) {
	vm.state.RenderPage = vm.page(ex.c.u8())
	return false, nil
}

func fillvideopage(vm *VM, ex *execution) (bool, error) {
	page := vm.page(ex.c.u8())
	color := ex.c.u8()
	ex.gfx.FillPage(page, color)
	return false, nil
}

func copyvideopage(vm *VM, ex *execution) (bool, error) {
	srcID := ex.c.u8()
	dstID := ex.c.u8()
	src := vm.page(srcID)
	dst := vm.page(dstID)

	// the scroll register is only used when copying from a numbered page
	// with the top bit set
	var vscroll int16
	if srcID < pageFront && srcID&0x80 == 0x80 {
		vscroll = vm.state.Registers.Get(registers.ScrollY)
	}

	if vscroll < -maxVScroll || vscroll > maxVScroll {
		logger.Logf(vm.env, "vm", "copyvideopage: vscroll out of range (%d)", vscroll)
		return false, nil
	}

	ex.gfx.CopyPage(src, dst, vscroll)
	return false, nil
}

func blitframebuffer(vm *VM, ex *execution) (bool, error) {
	id := ex.c.u8()
	front := vm.page(id)

	if id == pageBack {
		vm.state.BackPage, vm.state.FrontPage = vm.state.FrontPage, vm.state.BackPage
	}
	vm.state.FrontPage = front

	ex.gfx.Present(vm.state.FrontPage, vm.palette())
	vm.state.Registers.Set(registers.SlicesUsed, 1)

	return false, nil
}

// palette returns the decoded form of the palette most recently selected.
func (vm *VM) palette() gfx.Palette {
	// the raw palette is always the correct length so an error isn't possible
	pal, _ := gfx.DecodePalette(vm.state.Palette[:])
	return pal
}

func drawstring(vm *VM, ex *execution) (bool, error) {
	id := ex.c.u16()
	startX := int16(ex.c.u8()) * charSize
	y := int16(ex.c.u8())
	color := ex.c.u8()

	var s string
	var ok bool
	if vm.strings != nil {
		s, ok = vm.strings.Get(id)
	}
	if !ok {
		logger.Logf(vm.env, "vm", "drawstring: no string with id %#03x", id)
		return false, nil
	}

	x := startX
	for _, r := range s {
		switch {
		case r == '\n':
			y += charSize
			x = startX
		case r < 0x80:
			ex.gfx.DrawChar(vm.state.RenderPage, gfx.Point{X: x, Y: y}, color, byte(r))
			x += charSize
		default:
			logger.Logf(vm.env, "vm", "drawstring: cannot draw character (%q)", r)
		}
	}

	return false, nil
}

func sprs(vm *VM, ex *execution) (bool, error) {
	offset := (int(ex.op&0x7f)<<8 | int(ex.c.u8())) * 2
	x := int16(ex.c.u8())
	y := int16(ex.c.u8())

	// positions below the bottom of the screen are moved onto the last line
	// and the excess is added to the horizontal position
	if y > gfx.ScreenHeight-1 {
		x += y - (gfx.ScreenHeight - 1)
		y = gfx.ScreenHeight - 1
	}

	if ex.c.err != nil {
		return false, nil
	}

	vm.drawShape(ex.gfx, vm.cinematic, offset, gfx.Point{X: x, Y: y}, gfx.DefaultZoom)
	return false, nil
}

func sprl(vm *VM, ex *execution) (bool, error) {
	offset := int(ex.c.u16()) * 2

	var x int16
	switch ex.op & 0x30 {
	case 0x00:
		x = ex.c.i16()
	case 0x10:
		x = vm.state.Registers.Get(ex.c.u8())
	case 0x30:
		x = int16(ex.c.u8()) + 0x100
	default:
		x = int16(ex.c.u8())
	}

	var y int16
	switch ex.op & 0x0c {
	case 0x00:
		y = ex.c.i16()
	case 0x04:
		y = vm.state.Registers.Get(ex.c.u8())
	default:
		y = int16(ex.c.u8())
	}

	segment := vm.cinematic
	zoom := uint16(gfx.DefaultZoom)
	switch ex.op & 0x03 {
	case 0x01:
		zoom = uint16(vm.state.Registers.Get(ex.c.u8()))
	case 0x02:
		zoom = uint16(ex.c.u8())
	case 0x03:
		segment = vm.video
	}

	if ex.c.err != nil {
		return false, nil
	}

	vm.drawShape(ex.gfx, segment, offset, gfx.Point{X: x, Y: y}, zoom)
	return false, nil
}
