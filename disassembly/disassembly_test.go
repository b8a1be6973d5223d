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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/disassembly"
	"github.com/jetsetilly/gopherworld/test"
)

var program = []byte{
	0x00, 0x01, 0x00, 0x05, // 0000 seti r01, 5
	0x09, 0x01, 0x00, 0x00, // 0004 jnz r01, L0000
	0x06,                   // 0008 break
	0x0c, 0x01, 0x03, 0x02, // 0009 resetthread 1, 3, kill
	0x19, 0x3e, 0x81, // 000d loadresource scene 1
	0x60, 0x00, 0x10, 0x20, 0x00, 0x30, // 0010 sprl
	0x85, 0x02, 0x0a, 0x14, // 0016 sprs
	0x0a, 0x43, 0x01, 0xff, 0xfe, 0x00, 0x08, // 001a condjmp
}

func TestDecode(t *testing.T) {
	dsm, err := disassembly.FromProgram(program)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 8)

	expected := []struct {
		addr     int
		operator string
		operand  string
		size     int
	}{
		{0x00, "seti", "r01, 5", 4},
		{0x04, "jnz", "r01, L0000", 4},
		{0x08, "break", "", 1},
		{0x09, "resetthread", "1, 3, kill", 4},
		{0x0d, "loadresource", "0x3e81 (scene 1)", 3},
		{0x10, "sprl", "0020, 32, 48", 6},
		{0x16, "sprs", "0a04, 10, 20", 4},
		{0x1a, "condjmp", "r01 >= -2, L0008", 7},
	}

	for i, x := range expected {
		e := dsm.Entries[i]
		test.ExpectEquality(t, e.Address, x.addr, x.operator)
		test.ExpectEquality(t, e.Operator, x.operator)
		test.ExpectEquality(t, e.Operand, x.operand, x.operator)
		test.ExpectEquality(t, len(e.Bytecode), x.size, x.operator)
	}

	test.ExpectEquality(t, len(dsm.Labels), 2)
	test.ExpectEquality(t, dsm.Labels[0x00], "L0000")
	test.ExpectEquality(t, dsm.Labels[0x08], "L0008")

	e, ok := dsm.Search(0x09)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Operator, "resetthread")
	_, ok = dsm.Search(0x0a)
	test.ExpectFailure(t, ok)
}

func TestWrite(t *testing.T) {
	w := &test.Writer{}
	err := disassembly.Disassemble(program, w, disassembly.WriteAttr{})
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 10)
	test.ExpectEquality(t, lines[0], "L0000:")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "0000  seti"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], " r01, 5"))
	test.ExpectEquality(t, lines[3], "L0008:")
	test.ExpectEquality(t, lines[4], "0008  break")

	w.Clear()
	err = disassembly.Disassemble(program, w, disassembly.WriteAttr{ByteCode: true})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "0000  00 01 00 05"))
}

func TestUnknownOpcode(t *testing.T) {
	code := []byte{0x06, 0x1b, 0x06}

	w := &test.Writer{}
	err := disassembly.Disassemble(code, w, disassembly.WriteAttr{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.UnknownOpcode))

	// the listing up to the bad opcode is still written
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "0000  break\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown opcode"))
}

func TestTruncated(t *testing.T) {
	dsm, err := disassembly.FromProgram([]byte{0x06, 0x00, 0x01})
	test.ExpectSuccess(t, curated.Is(err, disassembly.Truncated))
	test.ExpectEquality(t, len(dsm.Entries), 1)

	// a label pointing into the middle of an instruction
	dsm, err = disassembly.FromProgram([]byte{0x07, 0x00, 0x01})
	test.DemandSuccess(t, err)
	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectSuccess(t, strings.Contains(w.String(), "L0001 is not an instruction boundary"))
}
