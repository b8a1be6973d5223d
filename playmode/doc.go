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

// Package playmode is the host loop for playing the game. The VM is driven at
// a fixed tick rate, with user input from the GUI mirrored into the VM's
// input registers before every tick.
//
// Each tick runs zero rounds while paused, the number of rounds given by the
// playmode.fastForwardRounds preference while fast-forwarding, and one round
// otherwise. A round is only processed by the VM once the number of ticks
// requested by the previous round (see vm.FramesToWait()) have elapsed.
//
// The rewind history is updated after every round and audio is rendered for
// every tick that is run, whether a round was processed in that tick or not.
package playmode
