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

package resources

import "fmt"

// dimensions of a bitmap resource.
const (
	BitmapWidth  = 320
	BitmapHeight = 200

	// size in bytes of a bitmap resource. four bits per pixel.
	BitmapSize = BitmapWidth * BitmapHeight / 2

	planeLen = BitmapSize / 4
)

// Deplanarise converts bitmap data stored as four bit planes into one colour
// index per pixel.
func Deplanarise(data []byte) ([]byte, error) {
	if len(data) != BitmapSize {
		return nil, fmt.Errorf("resources: bitmap is %d bytes not %d", len(data), BitmapSize)
	}

	pixels := make([]byte, BitmapWidth*BitmapHeight)
	for i := range pixels {
		idx := i / 8
		bit := 7 - uint(i%8)
		var c byte
		for p := range 4 {
			c |= ((data[p*planeLen+idx] >> bit) & 0x01) << p
		}
		pixels[i] = c
	}

	return pixels, nil
}
