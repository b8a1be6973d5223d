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

// Package prefs holds the typed preference values used throughout the
// application. Each value is safe to read from any goroutine and can carry
// hook functions that run just before and just after the value changes.
//
// Values are grouped by registering them with a Disk instance under a key.
// The Disk type loads and saves the registered values in a TOML file. Keys
// are conventionally of the form "package.name", for example
// "rewind.maxEntries".
//
// Preference values can also be given on the command line with the -prefs
// flag. The command line string is pushed onto a stack with
// PushCommandLineStack() and the values are applied the next time a Disk is
// loaded. A command line value is used only once.
package prefs
