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
)

// type bytes in the shape encoding
const (
	shapeLeafMask  = 0xc0
	shapeHierarchy = 0x02
)

// limit of nested hierarchies. deeper nesting is treated as bad data
const maxShapeDepth = 16

// no inherited colour
const noColor = -1

// drawShape draws the shape at the offset in the segment to the render page.
// problems with the shape data are logged and drawing stops.
func (vm *VM) drawShape(g Graphics, segment []byte, offset int, pos gfx.Point, zoom uint16) {
	vm.drawNode(g, segment, offset, pos, gfx.Point{}, zoom, noColor, 0)
}

func (vm *VM) drawNode(g Graphics, segment []byte, offset int, pos gfx.Point, origin gfx.Point, zoom uint16, color int, depth int) {
	if depth > maxShapeDepth {
		logger.Logf(vm.env, "vm", "shape at %04x is nested too deeply", offset)
		return
	}

	c := cursor{data: segment, pos: offset}
	typ := c.u8()

	switch {
	case typ&shapeLeafMask == shapeLeafMask:
		if color == noColor {
			color = int(typ & 0x3f)
		}

		poly := gfx.Polygon{
			BBW: c.u8(),
			BBH: c.u8(),
		}
		n := int(c.u8())
		poly.Points = make([]gfx.Point, n)
		for i := range poly.Points {
			poly.Points[i].X = int16(c.u8())
			poly.Points[i].Y = int16(c.u8())
		}

		if c.err != nil {
			logger.Logf(vm.env, "vm", "polygon at %04x: %v", offset, c.err)
			return
		}

		g.FillPolygon(vm.state.RenderPage, pos, origin, uint8(color), zoom, poly)

	case typ == shapeHierarchy:
		origin.X -= int16(c.u8())
		origin.Y -= int16(c.u8())
		n := int(c.u8()) + 1

		for range n {
			w := c.u16()
			child := int(w&0x7fff) * 2
			childOrigin := gfx.Point{
				X: origin.X + int16(c.u8()),
				Y: origin.Y + int16(c.u8()),
			}

			childColor := color
			if w&0x8000 == 0x8000 {
				childColor = int(c.u8() & 0x7f)

				// mask byte is not used
				_ = c.u8()
			}

			if c.err != nil {
				logger.Logf(vm.env, "vm", "shape hierarchy at %04x: %v", offset, c.err)
				return
			}

			vm.drawNode(g, segment, child, pos, childOrigin, zoom, childColor, depth+1)
		}

	default:
		if c.err != nil {
			logger.Logf(vm.env, "vm", "shape at %04x: %v", offset, c.err)
			return
		}
		logger.Logf(vm.env, "vm", "shape at %04x has unknown type (%#02x)", offset, typ)
	}
}
