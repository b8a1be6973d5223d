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

// Package vm is the virtual machine that runs the game's bytecode. The VM
// has 256 registers and 64 cooperative threads. It is driven by the host
// calling ProcessRound() once per game tick. Each round runs every active
// thread in turn until the thread yields with a break or killthread
// instruction.
//
// Threads never change the set of threads running in the current round.
// The resetthread and setvec instructions request a new state, which is
// applied at the start of the next round.
//
// Everything outside the VM is reached through the capabilities defined in
// capabilities.go: the ResourceProvider for scene data, Graphics for drawing
// and presenting pages and Audio for samples and music. Graphics and Audio
// are passed to ProcessRound() and are not retained by the VM.
//
// A scene switch is requested by loading a resource numbered 0x3e80 or
// above. The switch happens at the start of the following round, when the
// code, palettes and polygon segments of the new scene are loaded and the
// thread table is reset so that only thread zero is active.
//
// The complete state of the VM can be captured with TakeSnapshot() and
// restored with RestoreSnapshot(). The snapshot includes the state of the
// Graphics and Audio implementations.
package vm
