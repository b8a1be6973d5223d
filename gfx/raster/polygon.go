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
	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/logger"
)

func scale(v int16, zoom uint16) int {
	return int(v) * int(zoom) / 64
}

// spanFunc draws a horizontal run of pixels. start is the index of the
// first pixel of the run within the page.
type spanFunc func(run []byte, start int)

// FillPolygon implements the vm.Graphics interface. The pos argument is the
// centre of the polygon on the page and offset is its displacement from
// that centre before zooming.
func (r *Raster) FillPolygon(page int, pos gfx.Point, offset gfx.Point, color uint8, zoom uint16, poly gfx.Polygon) {
	if !r.validPage(page) {
		return
	}
	if len(poly.Points) == 0 {
		return
	}

	dst := r.pages[page]

	var span spanFunc
	switch {
	case color < gfx.ColorBlend:
		span = func(run []byte, _ int) {
			for i := range run {
				run[i] = color
			}
		}
	case color == gfx.ColorBlend:
		span = func(run []byte, _ int) {
			for i := range run {
				run[i] |= 0x08
			}
		}
	case color == gfx.ColorCopy:
		if page == 0 {
			return
		}
		src := r.pages[0]
		span = func(run []byte, start int) {
			copy(run, src[start:start+len(run)])
		}
	default:
		logger.Logf(r.env, "raster", "unexpected polygon colour (%#02x)", color)
		return
	}

	// a polygon with an empty bounding box is a single pixel
	if poly.BBW == 0 && poly.BBH == 0 {
		x := int(pos.X)
		y := int(pos.Y)
		if x >= 0 && x < gfx.ScreenWidth && y >= 0 && y < gfx.ScreenHeight {
			o := y*gfx.ScreenWidth + x
			span(dst[o:o+1], o)
		}
		return
	}

	tx := int(pos.X) + scale(offset.X, zoom) - scale(int16(poly.BBW), zoom)/2
	ty := int(pos.Y) + scale(offset.Y, zoom) - scale(int16(poly.BBH), zoom)/2

	pts := make([]point, len(poly.Points))
	for i, p := range poly.Points {
		pts[i] = point{
			x: tx + scale(p.X, zoom),
			y: ty + scale(p.Y, zoom),
		}
	}

	fillConvex(dst, pts, span)
}

type point struct {
	x, y int
}

// fillConvex fills the area inside the points. the polygon must be convex so
// that each row is a single run.
func fillConvex(dst []byte, pts []point, span spanFunc) {
	top, bottom := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		top = min(top, p.y)
		bottom = max(bottom, p.y)
	}
	top = max(top, 0)
	bottom = min(bottom, gfx.ScreenHeight-1)

	for y := top; y <= bottom; y++ {
		left := gfx.ScreenWidth
		right := -1
		found := false

		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			if y < min(a.y, b.y) || y > max(a.y, b.y) {
				continue
			}
			found = true
			if a.y == b.y {
				left = min(left, a.x, b.x)
				right = max(right, a.x, b.x)
				continue
			}
			x := a.x + (y-a.y)*(b.x-a.x)/(b.y-a.y)
			left = min(left, x)
			right = max(right, x)
		}

		if !found {
			continue
		}

		left = max(left, 0)
		right = min(right, gfx.ScreenWidth-1)
		if left > right {
			continue
		}

		o := y * gfx.ScreenWidth
		span(dst[o+left:o+right+1], o+left)
	}
}
