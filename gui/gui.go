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

package gui

import "image"

// GUI defines the operations required of the presentation layer in playmode.
// All functions must be called from the main thread.
type GUI interface {
	// Service the GUI and return the events that have been queued since the
	// previous call.
	Service() []Event

	// SetImage shows the image. The image is the size of the VM screen and
	// will be scaled by the GUI as required.
	SetImage(img *image.RGBA) error

	// Destroy the GUI and free any resources.
	Destroy()
}
