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

package disassembly

import (
	"fmt"
	"strings"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address  int
	Bytecode []byte
	Operator string
	Operand  string

	// the address referred to by the instruction. only valid if HasTarget is
	// true
	Target    int
	HasTarget bool
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%04x %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%04x %s %s", e.Address, e.Operator, e.Operand)
}

// Field is used to select and format the parts of an Entry.
type Field int

// List of valid Field values.
const (
	FldAddress Field = iota
	FldBytecode
	FldOperator
	FldOperand
)

// widths of the fields when columnated. the bytecode field is wide enough
// for the longest instruction
var widths = [...]int{
	FldAddress:  4,
	FldBytecode: 20,
	FldOperator: 15,
	FldOperand:  0,
}

// GetField returns the formatted field of the entry, padded for columnation.
func (e Entry) GetField(fld Field) string {
	var s string
	switch fld {
	case FldAddress:
		s = fmt.Sprintf("%04x", e.Address)
	case FldBytecode:
		b := make([]string, len(e.Bytecode))
		for i, v := range e.Bytecode {
			b[i] = fmt.Sprintf("%02x", v)
		}
		s = strings.Join(b, " ")
	case FldOperator:
		s = e.Operator
	case FldOperand:
		s = e.Operand
	}

	if w := widths[fld]; len(s) < w {
		s = fmt.Sprintf("%-*s", w, s)
	}
	return s
}
