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

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/vm"
)

// Sentinal error patterns.
const (
	UnknownOpcode = "disassembly: unknown opcode (%#02x) at %04x"
	Truncated     = "disassembly: instruction at %04x is truncated"
)

// decoder reads the operands of a single instruction.
type decoder struct {
	code  []byte
	start int
	pos   int
	short bool
}

func (d *decoder) u8() uint8 {
	if d.pos >= len(d.code) {
		d.short = true
		return 0
	}
	v := d.code[d.pos]
	d.pos++
	return v
}

func (d *decoder) u16() uint16 {
	hi := d.u8()
	lo := d.u8()
	return uint16(hi)<<8 | uint16(lo)
}

func (d *decoder) i16() int16 {
	return int16(d.u16())
}

var comparisons = [...]string{
	vm.CmpEqual:        "==",
	vm.CmpNotEqual:     "!=",
	vm.CmpGreater:      ">",
	vm.CmpGreaterEqual: ">=",
	vm.CmpLess:         "<",
	vm.CmpLessEqual:    "<=",
}

var mnemonics = map[uint8]string{
	vm.OpSeti:            "seti",
	vm.OpSet:             "set",
	vm.OpAdd:             "add",
	vm.OpAddi:            "addi",
	vm.OpJsr:             "jsr",
	vm.OpReturn:          "return",
	vm.OpBreak:           "break",
	vm.OpJmp:             "jmp",
	vm.OpSetVec:          "setvec",
	vm.OpJnz:             "jnz",
	vm.OpCondJmp:         "condjmp",
	vm.OpSetPalette:      "setpalette",
	vm.OpResetThread:     "resetthread",
	vm.OpSelectVideoPage: "selectvideopage",
	vm.OpFillVideoPage:   "fillvideopage",
	vm.OpCopyVideoPage:   "copyvideopage",
	vm.OpBlitFramebuffer: "blitframebuffer",
	vm.OpKillThread:      "killthread",
	vm.OpDrawString:      "drawstring",
	vm.OpSub:             "sub",
	vm.OpAnd:             "and",
	vm.OpOr:              "or",
	vm.OpShl:             "shl",
	vm.OpShr:             "shr",
	vm.OpPlaySound:       "playsound",
	vm.OpLoadResource:    "loadresource",
	vm.OpPlayMusic:       "playmusic",
}

var resetOps = [...]string{
	vm.ResetActivate: "activate",
	vm.ResetPause:    "pause",
	vm.ResetKill:     "kill",
}

// page operand
func page(p uint8) string {
	switch p {
	case 0xff:
		return "back"
	case 0xfe:
		return "front"
	}
	return fmt.Sprintf("%#02x", p)
}

// Decode the instruction at the address.
func Decode(code []byte, address int) (Entry, error) {
	d := &decoder{code: code, start: address, pos: address}
	e := Entry{Address: address}

	op := d.u8()
	if d.short {
		return e, curated.Errorf(Truncated, address)
	}

	target := func(addr uint16) string {
		e.Target = int(addr)
		e.HasTarget = true
		return fmt.Sprintf("L%04x", addr)
	}

	switch {
	case vm.IsSprs(op):
		offset := (int(op&0x7f)<<8 | int(d.u8())) * 2
		x := d.u8()
		y := d.u8()
		e.Operator = "sprs"
		e.Operand = fmt.Sprintf("%04x, %d, %d", offset, x, y)

	case vm.IsSprl(op):
		e.Operator = "sprl"
		e.Operand = sprl(d, op)

	default:
		var ok bool
		e.Operator, ok = mnemonics[op]
		if !ok {
			return e, curated.Errorf(UnknownOpcode, op, address)
		}

		switch op {
		case vm.OpSeti:
			r := d.u8()
			v := d.i16()
			e.Operand = fmt.Sprintf("r%02x, %d", r, v)
		case vm.OpSet, vm.OpAdd, vm.OpSub:
			dst := d.u8()
			src := d.u8()
			e.Operand = fmt.Sprintf("r%02x, r%02x", dst, src)
		case vm.OpAddi:
			r := d.u8()
			v := d.i16()
			e.Operand = fmt.Sprintf("r%02x, %d", r, v)
		case vm.OpAnd, vm.OpOr:
			r := d.u8()
			v := d.u16()
			e.Operand = fmt.Sprintf("r%02x, %#04x", r, v)
		case vm.OpShl, vm.OpShr:
			r := d.u8()
			v := d.u16()
			e.Operand = fmt.Sprintf("r%02x, %d", r, v)
		case vm.OpJsr, vm.OpJmp:
			e.Operand = target(d.u16())
		case vm.OpReturn, vm.OpBreak, vm.OpKillThread:
		case vm.OpSetVec:
			id := d.u8()
			e.Operand = fmt.Sprintf("%d, %s", id, target(d.u16()))
		case vm.OpJnz:
			r := d.u8()
			e.Operand = fmt.Sprintf("r%02x, %s", r, target(d.u16()))
		case vm.OpCondJmp:
			e.Operand = condjmp(d, target)
		case vm.OpResetThread:
			first := d.u8()
			last := d.u8()
			o := d.u8()
			name := fmt.Sprintf("%d", o)
			if int(o) < len(resetOps) {
				name = resetOps[o]
			}
			e.Operand = fmt.Sprintf("%d, %d, %s", first, last, name)
		case vm.OpSetPalette:
			id := d.u8()
			_ = d.u8()
			e.Operand = fmt.Sprintf("%d", id)
		case vm.OpSelectVideoPage:
			e.Operand = page(d.u8())
		case vm.OpFillVideoPage:
			p := d.u8()
			c := d.u8()
			e.Operand = fmt.Sprintf("%s, %d", page(p), c)
		case vm.OpCopyVideoPage:
			src := d.u8()
			dst := d.u8()
			e.Operand = fmt.Sprintf("%s, %s", page(src), page(dst))
		case vm.OpBlitFramebuffer:
			e.Operand = page(d.u8())
		case vm.OpDrawString:
			id := d.u16()
			x := d.u8()
			y := d.u8()
			c := d.u8()
			e.Operand = fmt.Sprintf("%#03x, %d, %d, %d", id, x, y, c)
		case vm.OpPlaySound:
			id := d.u16()
			freq := d.u8()
			vol := d.u8()
			ch := d.u8()
			e.Operand = fmt.Sprintf("%#02x, %d, %d, %d", id, freq, vol, ch)
		case vm.OpPlayMusic:
			id := d.u16()
			delay := d.u16()
			pos := d.u8()
			e.Operand = fmt.Sprintf("%#02x, %d, %d", id, delay, pos)
		case vm.OpLoadResource:
			id := d.u16()
			if id >= vm.SceneThreshold {
				e.Operand = fmt.Sprintf("%#04x (scene %d)", id, id-vm.SceneThreshold)
			} else {
				e.Operand = fmt.Sprintf("%#02x", id)
			}
		}
	}

	if d.short {
		return e, curated.Errorf(Truncated, address)
	}

	e.Bytecode = code[d.start:d.pos]

	return e, nil
}

func condjmp(d *decoder, target func(uint16) string) string {
	sub := d.u8()
	a := d.u8()

	var b string
	switch {
	case sub&vm.CondRegister == vm.CondRegister:
		b = fmt.Sprintf("r%02x", d.u8())
	case sub&vm.CondImmediate == vm.CondImmediate:
		b = fmt.Sprintf("%d", d.i16())
	default:
		b = fmt.Sprintf("%d", d.u8())
	}

	cmp := "??"
	if int(sub&0x07) < len(comparisons) {
		cmp = comparisons[sub&0x07]
	}

	return fmt.Sprintf("r%02x %s %s, %s", a, cmp, b, target(d.u16()))
}

func sprl(d *decoder, op uint8) string {
	offset := int(d.u16()) * 2

	var x string
	switch op & 0x30 {
	case 0x00:
		x = fmt.Sprintf("%d", d.i16())
	case 0x10:
		x = fmt.Sprintf("r%02x", d.u8())
	case 0x30:
		x = fmt.Sprintf("%d", int(d.u8())+0x100)
	default:
		x = fmt.Sprintf("%d", d.u8())
	}

	var y string
	switch op & 0x0c {
	case 0x00:
		y = fmt.Sprintf("%d", d.i16())
	case 0x04:
		y = fmt.Sprintf("r%02x", d.u8())
	default:
		y = fmt.Sprintf("%d", d.u8())
	}

	switch op & 0x03 {
	case 0x01:
		return fmt.Sprintf("%04x, %s, %s, zoom r%02x", offset, x, y, d.u8())
	case 0x02:
		return fmt.Sprintf("%04x, %s, %s, zoom %d", offset, x, y, d.u8())
	case 0x03:
		return fmt.Sprintf("%04x, %s, %s, video", offset, x, y)
	}
	return fmt.Sprintf("%04x, %s, %s", offset, x, y)
}
