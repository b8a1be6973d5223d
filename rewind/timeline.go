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

package rewind

// Timeline provides a summary of the current state of the rewind system.
//
// Useful for GUIs for example, to present the range of rounds that are
// available in the rewind history.
type Timeline struct {
	// the number of entries in the history
	Count int

	// the rounds of the oldest and most recent entries
	Start int
	End   int
}

// Timeline returns a summary of the rewind history.
func (r *Rewind) Timeline() Timeline {
	if r.count == 0 {
		return Timeline{}
	}
	return Timeline{
		Count: r.count,
		Start: r.entries[r.start].Round,
		End:   r.entries[r.last()].Round,
	}
}
