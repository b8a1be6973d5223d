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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later. For example:
//
//	const UnknownOpcode = "vm: unknown opcode %02x at %04x"
//
//	e := curated.Errorf(UnknownOpcode, op, pc)
//
//	if curated.Is(e, UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("round: %v", e)
//
//	if curated.Has(f, UnknownOpcode) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as the difference between expected and unexpected
// errors.
//
// The Error() function normalises the error chain. Chains are composed of
// parts separated by the sub-string ": " and adjacent duplicate parts are
// removed. This means that wrapping errors with the package name at every
// level does not result in messages such as:
//
//	vm: vm: unknown opcode 5f at 0123
//
// Curated errors also implement the Unwrap() function so the errors.Is()
// and errors.As() functions from the standard library see any error values
// wrapped with the %v or %w verbs.
package curated
