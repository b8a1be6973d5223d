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

// Package test contains helper functions to remove common boilerplate and to
// make testing easier. The functions are intended to be used with the
// standard go test harness.
//
// The Expect functions report a test error and allow the test to continue.
// The Demand functions report a fatal error and stop the test. Demand
// functions should be used when the result of a test is needed for further
// tests. For example, testing that the lengths of two slices are equal
// before iterating over them in unison.
//
// The ExpectSuccess() and ExpectFailure() functions test values for a
// generic success or failure condition. The supported types are:
//
//	bool -> true is success
//	error -> nil is success
//
// The nil value (with no type) is considered a success. This matches how
// errors are usually interpreted.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
