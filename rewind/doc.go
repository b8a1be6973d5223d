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

// Package rewind keeps a history of VM snapshots so that play can be wound
// back. Snapshots are taken every few rounds, the frequency and the size of
// the history being controlled by the rewind preferences of the environment.
//
// The history is circular. When it is full the oldest snapshot is forgotten
// to make room for the newest.
package rewind
