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

// Package modalflag handles command lines made up of modes, sub-modes and
// flags. For example:
//
//	gopherworld RESOURCES DUMP -data ./data ./out
//
// Each layer of the command line is parsed in turn. Flags and the list of
// possible sub-modes are declared for the layer and then Parse() is called.
// The first sub-mode in the list is the default and is chosen when the next
// argument does not name a sub-mode. NewMode() is called before declaring
// the flags for the next layer.
//
// Sub-mode comparisons are case insensitive. Modes are reported in upper
// case.
package modalflag
