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

// Package digest is used to create fingerprints of the output of the VM. A
// fingerprint is chained so that it reflects every frame (or every audio
// buffer) since the digest was last reset. Two runs of the VM with the same
// input produce the same digest.
package digest

// Digest implementations compute a fingerprint of the VM's output.
type Digest interface {
	Hash() string
	ResetDigest()
}
