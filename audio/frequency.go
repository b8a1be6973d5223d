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

// FrequencyTable converts the frequency operand of the playsound
// instruction into a playback frequency in Hz.
var FrequencyTable = [...]uint16{
	0x0CFF, 0x0DC3, 0x0E91, 0x0F6F, 0x1056, 0x114E, 0x1259, 0x136C, 0x149F, 0x15D9,
	0x1726, 0x1888, 0x19FD, 0x1B86, 0x1D21, 0x1EDE, 0x20AB, 0x229C, 0x24B3, 0x26D7,
	0x293F, 0x2BB2, 0x2E4C, 0x3110, 0x33FB, 0x370D, 0x3A43, 0x3DDF, 0x4157, 0x4538,
	0x4998, 0x4DAE, 0x5240, 0x5764, 0x5C9A, 0x61C8, 0x6793, 0x6E19, 0x7485, 0x7BBD,
}
