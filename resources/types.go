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

// Type of a resource as recorded in memlist.bin.
type Type int

// List of valid Type values.
const (
	Sound Type = iota
	Music
	Bitmap
	Palette
	Bytecode
	Cinematic
	Unknown
)

func (t Type) String() string {
	switch t {
	case Sound:
		return "Sound"
	case Music:
		return "Music"
	case Bitmap:
		return "Bitmap"
	case Palette:
		return "Palette"
	case Bytecode:
		return "Bytecode"
	case Cinematic:
		return "Cinematic"
	case Unknown:
		return "Unknown"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Entry is a single record from memlist.bin.
type Entry struct {
	Type       Type
	Rank       uint8
	Bank       uint8
	Offset     uint32
	PackedSize int
	Size       int
}

func (e Entry) String() string {
	return fmt.Sprintf("%-9s bank %02x offset %06x packed %5d size %5d", e.Type, e.Bank, e.Offset, e.PackedSize, e.Size)
}

// Resource is the unpacked data of an Entry.
type Resource struct {
	ID   int
	Type Type
	Data []byte
}
