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

// Package audio implements the audio capability of the virtual machine. The
// Mixer plays up to four samples at once, each at its own frequency and
// volume. The Backend combines the Mixer with a music Player and guards both
// with a mutex so that output can be rendered from the audio device's
// goroutine while the virtual machine runs on another.
//
// Samples are signed eight bit and may have a loop point. The DecodeSample()
// function converts a sound resource into a Sample.
package audio
