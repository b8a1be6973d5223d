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

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// unpacker decodes ByteKiller data. Input is consumed one word at a time from
// the end of the packed data and output is written from the end of the
// buffer towards the start.
type unpacker struct {
	data []byte
	crc  uint32
	chk  uint32
	in   int
	out  int
	err  error
}

func unpack(data []byte, packedLen int) error {
	if packedLen%4 != 0 || packedLen < 12 || packedLen > len(data) {
		return fmt.Errorf("unpack: invalid packed length %d", packedLen)
	}

	u := unpacker{data: data, in: packedLen - 4}

	size := int(binary.BigEndian.Uint32(data[u.in:]))
	if size != len(data) {
		return fmt.Errorf("unpack: unpacked size is %d not %d", size, len(data))
	}
	u.in -= 4
	u.crc = binary.BigEndian.Uint32(data[u.in:])
	u.in -= 4
	u.chk = binary.BigEndian.Uint32(data[u.in:])
	u.crc ^= u.chk
	u.out = size

	for u.out > 0 && u.err == nil {
		if u.nextBit() {
			switch c := u.code(2); c {
			case 3:
				u.literal(8, 9)
			case 0, 1:
				u.copy(uint8(c+9), int(c+3))
			default:
				u.copy(12, int(u.code(8))+1)
			}
		} else if u.nextBit() {
			u.copy(8, 2)
		} else {
			u.literal(3, 1)
		}
	}

	if u.err != nil {
		return u.err
	}
	if u.crc != 0 {
		return errors.New("unpack: invalid CRC")
	}

	return nil
}

func (u *unpacker) nextBit() bool {
	cf := u.chk&1 == 1
	u.chk >>= 1
	if u.chk != 0 {
		return cf
	}

	// the bit just shifted out was the end marker. load the next word and set
	// a new end marker in the top bit
	if u.in < 4 {
		if u.err == nil {
			u.err = errors.New("unpack: input exhausted")
		}
		return false
	}
	u.in -= 4
	u.chk = binary.BigEndian.Uint32(u.data[u.in:])
	u.crc ^= u.chk
	cf = u.chk&1 == 1
	u.chk = (u.chk >> 1) | 0x80000000

	return cf
}

func (u *unpacker) code(bits uint8) uint16 {
	var c uint16
	for range bits {
		c <<= 1
		if u.nextBit() {
			c |= 1
		}
	}
	return c
}

// literal copies bytes from the input stream.
func (u *unpacker) literal(bits uint8, add int) {
	count := int(u.code(bits)) + add
	for range count {
		if !u.write() {
			return
		}
		u.data[u.out] = byte(u.code(8))
	}
}

// copy repeats bytes already written to the output.
func (u *unpacker) copy(bits uint8, count int) {
	offset := int(u.code(bits))
	for range count {
		if !u.write() {
			return
		}
		if u.out+offset >= len(u.data) {
			u.err = fmt.Errorf("unpack: copy offset %d out of range", offset)
			return
		}
		u.data[u.out] = u.data[u.out+offset]
	}
}

// write moves the output position back by one byte. the output must never
// overtake the input.
func (u *unpacker) write() bool {
	if u.err != nil {
		return false
	}
	if u.out <= 0 || u.out < u.in {
		u.err = errors.New("unpack: output overlaps input")
		return false
	}
	u.out--
	return true
}
