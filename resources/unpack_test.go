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
	"strings"
	"testing"

	"github.com/jetsetilly/gopherworld/test"
)

// bitStream builds ByteKiller input for the tests.
type bitStream struct {
	bits []bool
}

func (b *bitStream) code(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		b.bits = append(b.bits, (v>>uint(i))&1 == 1)
	}
}

// pack lays the bit stream out in words in the order the unpacker reads
// them. the first word holds up to 31 bits below its end marker
func (b *bitStream) pack(size int) []byte {
	first := b.bits
	if len(first) > 31 {
		first = first[:31]
	}
	rest := b.bits[len(first):]

	chk := uint32(1) << uint(len(first))
	for i, v := range first {
		if v {
			chk |= 1 << uint(i)
		}
	}

	var refills []uint32
	for len(rest) > 0 {
		n := min(len(rest), 32)
		var w uint32
		for i, v := range rest[:n] {
			if v {
				w |= 1 << uint(i)
			}
		}
		refills = append(refills, w)
		rest = rest[n:]
	}

	crc := chk
	for _, w := range refills {
		crc ^= w
	}

	n := len(refills)
	packed := make([]byte, 12+4*n)
	for k, w := range refills {
		binary.BigEndian.PutUint32(packed[4*(n-1-k):], w)
	}
	binary.BigEndian.PutUint32(packed[4*n:], chk)
	binary.BigEndian.PutUint32(packed[4*n+4:], crc)
	binary.BigEndian.PutUint32(packed[4*n+8:], uint32(size))

	return packed
}

// a two byte literal followed by a long back reference produces 64 bytes of
// repeating "ab"
func repeatingStream() *bitStream {
	var b bitStream

	// literal run of two bytes. bytes are written from the end of the output
	b.code(0, 1)
	b.code(0, 1)
	b.code(1, 3)
	b.code('b', 8)
	b.code('a', 8)

	// back reference of 62 bytes at offset 2
	b.code(1, 1)
	b.code(2, 2)
	b.code(61, 8)
	b.code(2, 12)

	return &b
}

func TestUnpack(t *testing.T) {
	const size = 64

	packed := repeatingStream().pack(size)
	test.ExpectEquality(t, len(packed), 16)

	data := make([]byte, size)
	copy(data, packed)
	test.ExpectSuccess(t, unpack(data, len(packed)))
	test.ExpectEquality(t, string(data), strings.Repeat("ab", size/2))
}

func TestUnpackCRC(t *testing.T) {
	const size = 64

	packed := repeatingStream().pack(size)
	packed[len(packed)-5] ^= 0x01

	data := make([]byte, size)
	copy(data, packed)
	test.ExpectFailure(t, unpack(data, len(packed)))
}

func TestUnpackSize(t *testing.T) {
	packed := repeatingStream().pack(64)

	data := make([]byte, 80)
	copy(data, packed)
	test.ExpectFailure(t, unpack(data, len(packed)))

	test.ExpectFailure(t, unpack(data, 14))
}
