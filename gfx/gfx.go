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

// Package gfx contains the types shared by the virtual machine and the
// graphics backends: screen geometry, points, polygons and palettes.
//
// The screen is 320x200 pixels with 16 colours. There are four pages, any of
// which can be drawn to or presented.
package gfx

import (
	"fmt"
	"image/color"
)

// Screen geometry.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
	NumPages     = 4
)

// Colour values above the direct colours have special meaning when filling
// polygons.
const (
	// ColorBlend sets the top bit of the colour index already on the page.
	ColorBlend = 0x10

	// ColorCopy copies pixels from page zero.
	ColorCopy = 0x11
)

// DefaultZoom draws polygons at their natural size.
const DefaultZoom = 64

// Point is a position on the screen or in polygon space.
type Point struct {
	X, Y int16
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Polygon is a convex shape described by its bounding box and its points.
// The first half of the points run clockwise down the right edge and the
// second half run back up the left edge.
type Polygon struct {
	BBW, BBH uint8
	Points   []Point
}

func (poly Polygon) String() string {
	return fmt.Sprintf("%dx%d %v", poly.BBW, poly.BBH, poly.Points)
}

// PaletteSize is the number of raw bytes in a palette.
const PaletteSize = 32

// Palette is sixteen colours.
type Palette [16]color.RGBA

// DecodePalette converts the raw palette data. Each colour is two bytes with
// four bits per channel.
func DecodePalette(raw []byte) (Palette, error) {
	var pal Palette
	if len(raw) != PaletteSize {
		return pal, fmt.Errorf("gfx: palette data is %d bytes not %d", len(raw), PaletteSize)
	}

	for i := range pal {
		c1 := raw[i*2]
		c2 := raw[i*2+1]
		pal[i] = color.RGBA{
			R: expand(c1 & 0x0f),
			G: expand(c2 >> 4),
			B: expand(c2 & 0x0f),
			A: 0xff,
		}
	}

	return pal, nil
}

// expand a four bit channel into eight bits.
func expand(v uint8) uint8 {
	return v<<4 | v
}
