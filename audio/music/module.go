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

package music

import (
	"encoding/binary"
	"fmt"
)

// Module format constants.
const (
	NumInstruments  = 15
	OrderTableLen   = 0x80
	LinesPerPattern = 64
	NumChannels     = 4

	headerLen  = 0xc0
	noteLen    = 4
	patternLen = LinesPerPattern * NumChannels * noteLen
)

// Instrument maps an instrument number to a sound resource.
type Instrument struct {
	Resource uint16
	Volume   uint16
}

// Note is one channel of one line of a pattern. The first word is the note
// or one of the special values. The second word is the instrument and effect.
type Note struct {
	Note  uint16
	Param uint16
}

// special note values.
const (
	noteStop        = 0xfffe
	noteSetRegister = 0xfffd
	noteMin         = 0x37
	noteMax         = 0xfff
)

// effects in bits 8 to 11 of the second word.
const (
	effectVolumeUp   = 5
	effectVolumeDown = 6
)

// Pattern is 64 lines of four notes.
type Pattern [LinesPerPattern][NumChannels]Note

// Module is a decoded music resource.
type Module struct {
	Delay       uint16
	Instruments [NumInstruments]Instrument
	NumOrder    uint16
	Order       [OrderTableLen]uint8
	Patterns    []Pattern
}

// DecodeModule decodes a music resource.
func DecodeModule(data []byte) (*Module, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("music: module is too short (%d bytes)", len(data))
	}
	if (len(data)-headerLen)%patternLen != 0 {
		return nil, fmt.Errorf("music: pattern data is not a whole number of patterns (%d bytes)", len(data)-headerLen)
	}

	m := &Module{
		Delay: binary.BigEndian.Uint16(data),
	}

	o := 2
	for i := range m.Instruments {
		m.Instruments[i].Resource = binary.BigEndian.Uint16(data[o:])
		m.Instruments[i].Volume = binary.BigEndian.Uint16(data[o+2:])
		o += 4
	}

	m.NumOrder = binary.BigEndian.Uint16(data[o:])
	o += 2
	copy(m.Order[:], data[o:o+OrderTableLen])
	o += OrderTableLen

	m.Patterns = make([]Pattern, (len(data)-headerLen)/patternLen)
	for p := range m.Patterns {
		for l := range LinesPerPattern {
			for c := range NumChannels {
				m.Patterns[p][l][c] = Note{
					Note:  binary.BigEndian.Uint16(data[o:]),
					Param: binary.BigEndian.Uint16(data[o+2:]),
				}
				o += noteLen
			}
		}
	}

	if m.NumOrder > OrderTableLen {
		return nil, fmt.Errorf("music: order table length too long (%d)", m.NumOrder)
	}
	for i := range int(m.NumOrder) {
		if int(m.Order[i]) >= len(m.Patterns) {
			return nil, fmt.Errorf("music: order %d refers to missing pattern %d", i, m.Order[i])
		}
	}

	return m, nil
}

// Frequency returns the playback frequency of a note value.
func Frequency(note uint16) uint16 {
	return uint16(7159092 / (uint32(note) * 2))
}

// LineDuration returns the number of milliseconds each pattern line lasts
// for the tempo.
func LineDuration(tempo uint16) int {
	return int(tempo) * 60 / 7050
}
