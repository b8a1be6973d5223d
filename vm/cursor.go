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
	"encoding/binary"

	"github.com/jetsetilly/gopherworld/curated"
)

// cursor reads big-endian values from a program or polygon segment. reading
// beyond the end of the data sets the err field and returns zero.
type cursor struct {
	data []byte
	pos  int
	err  error
}

// overrun returns true if fewer than n bytes remain. the error records the
// first address that could not be read
func (c *cursor) overrun(n int) bool {
	if c.pos >= 0 && c.pos+n <= len(c.data) {
		return false
	}
	if c.err == nil {
		c.err = curated.Errorf(CursorOverrun, max(c.pos, len(c.data)))
	}
	return true
}

func (c *cursor) u8() uint8 {
	if c.overrun(1) {
		return 0
	}
	v := c.data[c.pos]
	c.pos++
	return v
}

func (c *cursor) u16() uint16 {
	if c.overrun(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) i16() int16 {
	return int16(c.u16())
}
