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

// Package logger is the central log for the application. Entries are made
// by the VM and by the collaborating packages when something worth noting,
// but not worth stopping for, has happened. A missing sound resource or an
// out of range palette are good examples.
//
// Every call to Log() and Logf() takes a Permission argument. Instances of
// the VM that are not the main emulation (the headless digest instance for
// example) can use this to silence their log entries. The Allow value can
// be used when an entry should always be made.
//
// Repeated entries are collapsed into a single entry with a repeat count.
// The central log holds a maximum of 256 entries, the oldest entries being
// dropped first.
package logger
