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

// Package paths resolves the location of the files written and read by the
// application: the preferences file, save states and recordings.
//
// The base directory depends on the build. Development builds use the
// ".gopherworld" directory in the current working directory. Release builds
// (built with the "release" tag) use the "gopherworld" directory in the
// user's configuration directory as reported by os.UserConfigDir().
//
// Directories are created as required. Files are not.
package paths
