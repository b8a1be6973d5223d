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
	"testing"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/test"
)

func TestCursor(t *testing.T) {
	c := cursor{data: []byte{0x12, 0x34, 0xff, 0xfe, 0x07}}
	test.ExpectEquality(t, c.u16(), uint16(0x1234))
	test.ExpectEquality(t, c.i16(), int16(-2))
	test.ExpectEquality(t, c.pos, 4)
	test.ExpectSuccess(t, c.err)

	// one byte remains so a word cannot be read
	test.ExpectEquality(t, c.u16(), uint16(0))
	test.ExpectEquality(t, c.pos, 4)
	test.ExpectSuccess(t, curated.Is(c.err, CursorOverrun))
	test.ExpectEquality(t, c.err.Error(), "vm: program overrun at 0005")

	// the first error is kept
	c.pos = 100
	test.ExpectEquality(t, c.u8(), uint8(0))
	test.ExpectEquality(t, c.err.Error(), "vm: program overrun at 0005")

	c = cursor{data: []byte{0x07}}
	test.ExpectEquality(t, c.u8(), uint8(0x07))
	test.ExpectEquality(t, c.u8(), uint8(0))
	test.ExpectEquality(t, c.err.Error(), "vm: program overrun at 0001")
}
