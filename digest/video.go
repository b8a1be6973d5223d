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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/gopherworld/gfx"
	"github.com/jetsetilly/gopherworld/gfx/raster"
)

const pixelDepth = 3

// Video is an implementation of raster.Display that fingerprints every frame
// presented to it. Frames are also passed to the next Display, if there is
// one.
type Video struct {
	next   raster.Display
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// next argument can be nil.
func NewVideo(next raster.Display) *Video {
	dig := &Video{next: next}

	// length of pixels array contains enough room for the previous frames
	// digest value
	dig.pixels = make([]byte, len(dig.digest)+gfx.ScreenWidth*gfx.ScreenHeight*pixelDepth)

	return dig
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements raster.Display interface.
func (dig *Video) Present(frame *image.RGBA) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y && y-b.Min.Y < gfx.ScreenHeight; y++ {
		for x := b.Min.X; x < b.Max.X && x-b.Min.X < gfx.ScreenWidth; x++ {
			o := frame.PixOffset(x, y)
			dig.pixels[i] = frame.Pix[o]
			dig.pixels[i+1] = frame.Pix[o+1]
			dig.pixels[i+2] = frame.Pix[o+2]
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	if dig.next != nil {
		return dig.next.Present(frame)
	}
	return nil
}
