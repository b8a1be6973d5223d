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
)

// the number of samples collected before the digest is updated
const audioBufferLength = 1024

// Audio fingerprints the mixed audio output of the VM.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]byte, len(dig.digest)+audioBufferLength)
	dig.bufferCt = len(dig.digest)
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = len(dig.digest)
}

// WriteSamples adds mixed samples to the digest.
func (dig *Audio) WriteSamples(samples []int8) {
	for _, s := range samples {
		dig.buffer[dig.bufferCt] = uint8(s)
		dig.bufferCt++
		if dig.bufferCt >= len(dig.buffer) {
			dig.flush()
		}
	}
}

func (dig *Audio) flush() {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the audio data
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.bufferCt = len(dig.digest)
}
