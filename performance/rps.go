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

package performance

// CalcRPS takes the the number of rounds and duration (in seconds) and returns
// the rounds-per-second and the accuracy of that value as a percentage of the
// target rate.
func CalcRPS(numRounds int, duration float64, target int) (rps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	rps = float64(numRounds) / duration
	if target > 0 {
		accuracy = 100 * rps / float64(target)
	}
	return rps, accuracy
}
