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

// Package music plays the game's music modules. A module is a rudimentary
// four channel tracker format: fifteen instruments that refer to sound
// resources, an order table and a list of patterns of 64 lines.
//
// The Player processes one line of the current pattern each time Process()
// is called. Notes are played through the Mixer interface. The caller decides
// how often to call Process() from the module's tempo, see LineDuration().
//
// A special note asks for a value to be written to the virtual machine's
// music synchronisation register. The value is kept until collected with
// TakeRegisterRequest().
package music
