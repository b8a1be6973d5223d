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

package audio

import (
	"encoding/binary"
	"fmt"
)

// length of the header of a sound resource.
const sampleHeaderLen = 8

// Sample is a decoded sound resource.
type Sample struct {
	Data []int8

	// index in Data to return to when the end of the sample is reached. a
	// negative value means the sample doesn't loop
	LoopStart int
}

func (s *Sample) String() string {
	if s.LoopStart < 0 {
		return fmt.Sprintf("%d bytes", len(s.Data))
	}
	return fmt.Sprintf("%d bytes (loop from %d)", len(s.Data), s.LoopStart)
}

// Loops returns true if the sample has a loop point.
func (s *Sample) Loops() bool {
	return s.LoopStart >= 0 && s.LoopStart < len(s.Data)
}

// DecodeSample decodes a sound resource. The header gives the length of the
// sample before the loop point and the length of the looping section, both
// in words.
func DecodeSample(data []byte) (*Sample, error) {
	if len(data) < sampleHeaderLen {
		return nil, fmt.Errorf("audio: sample is too short (%d bytes)", len(data))
	}

	length := int(binary.BigEndian.Uint16(data)) * 2
	loopLength := int(binary.BigEndian.Uint16(data[2:])) * 2

	body := data[sampleHeaderLen:]
	if length+loopLength > len(body) {
		return nil, fmt.Errorf("audio: sample data is %d bytes, header specifies %d", len(body), length+loopLength)
	}
	body = body[:length+loopLength]

	s := &Sample{
		Data:      make([]int8, len(body)),
		LoopStart: -1,
	}
	for i, b := range body {
		s.Data[i] = int8(b)
	}
	if loopLength > 0 {
		s.LoopStart = length
	}

	return s, nil
}
