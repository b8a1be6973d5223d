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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer. Labels are written on their own
// line before the instruction they refer to. Targets that do not fall on an
// instruction boundary are listed at the end of the disassembly.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if l, ok := dsm.Labels[e.Address]; ok {
			if _, err := io.WriteString(output, fmt.Sprintf("%s:\n", l)); err != nil {
				return err
			}
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}

	for _, t := range dsm.Targets() {
		if _, ok := dsm.Search(t); !ok {
			if _, err := io.WriteString(output, fmt.Sprintf("; %s is not an instruction boundary\n", dsm.Labels[t])); err != nil {
				return err
			}
		}
	}

	if dsm.Err != nil {
		if _, err := io.WriteString(output, fmt.Sprintf("; %v\n", dsm.Err)); err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	s.WriteString(e.GetField(FldAddress))
	s.WriteString("  ")
	if attr.ByteCode {
		s.WriteString(e.GetField(FldBytecode))
		s.WriteString("  ")
	}
	s.WriteString(e.GetField(FldOperator))
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.GetField(FldOperand))
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}

// Disassemble the program and write the listing to io.Writer. The listing is
// written even if the program could not be fully decoded, in which case the
// decoding error is returned.
func Disassemble(code []byte, output io.Writer, attr WriteAttr) error {
	dsm, decodeErr := FromProgram(code)
	if err := dsm.Write(output, attr); err != nil {
		return err
	}
	return decodeErr
}
