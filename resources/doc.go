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

// Package resources reads the game's resource banks. The memlist.bin file
// describes every resource: its type, the bank file it lives in, the offset
// into that bank and its packed and unpacked sizes. Resources are loaded
// lazily by the Manager and unpacked if they were stored compressed.
//
// Compressed resources use the ByteKiller scheme, which is decoded backwards
// and in place. The final three words of the packed data hold a checksum
// seed, a CRC and the unpacked size.
//
// Bitmap resources are stored as four bit planes of 8000 bytes each. The
// Deplanarise() function converts them into one colour index per pixel.
package resources
