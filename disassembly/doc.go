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

// Package disassembly creates listings of VM programs. The program is
// decoded linearly from the first byte; every byte is assumed to be part of
// an instruction. Addresses that are the target of a jump, a subroutine call
// or a setvec instruction are labelled.
//
// Decoding stops at the first unknown opcode or at an instruction that is
// truncated by the end of the program. The entries decoded up to that point
// are still available.
package disassembly
