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

package vm

import (
	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/vm/threads"
)

func stateFamily(op uint8) handler {
	switch op {
	case OpSeti:
		return seti
	case OpSet:
		return set
	case OpAdd:
		return add
	case OpAddi:
		return addi
	case OpJmp:
		return jmp
	case OpSetVec:
		return setvec
	case OpJnz:
		return jnz
	case OpCondJmp:
		return condjmp
	case OpResetThread:
		return resetthread
	case OpSub:
		return sub
	case OpAnd:
		return and
	case OpOr:
		return or
	case OpShl:
		return shl
	case OpShr:
		return shr
	}
	return nil
}

func seti(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	v := ex.c.i16()
	vm.state.Registers.Set(r, v)
	return false, nil
}

func set(vm *VM, ex *execution) (bool, error) {
	dst := ex.c.u8()
	src := ex.c.u8()
	vm.state.Registers.Set(dst, vm.state.Registers.Get(src))
	return false, nil
}

func add(vm *VM, ex *execution) (bool, error) {
	dst := ex.c.u8()
	src := ex.c.u8()
	vm.state.Registers.Set(dst, vm.state.Registers.Get(dst)+vm.state.Registers.Get(src))
	return false, nil
}

func addi(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	v := ex.c.i16()
	vm.state.Registers.Set(r, vm.state.Registers.Get(r)+v)
	return false, nil
}

func sub(vm *VM, ex *execution) (bool, error) {
	dst := ex.c.u8()
	src := ex.c.u8()
	vm.state.Registers.Set(dst, vm.state.Registers.Get(dst)-vm.state.Registers.Get(src))
	return false, nil
}

func and(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	v := ex.c.i16()
	vm.state.Registers.Set(r, vm.state.Registers.Get(r)&v)
	return false, nil
}

func or(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	v := ex.c.i16()
	vm.state.Registers.Set(r, vm.state.Registers.Get(r)|v)
	return false, nil
}

func shl(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	n := ex.c.u16()
	vm.state.Registers.Set(r, vm.state.Registers.Get(r)<<n)
	return false, nil
}

// shr is an arithmetic shift. the sign is preserved
func shr(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	n := ex.c.u16()
	vm.state.Registers.Set(r, vm.state.Registers.Get(r)>>n)
	return false, nil
}

func jmp(vm *VM, ex *execution) (bool, error) {
	addr := ex.c.u16()
	ex.c.pos = int(addr)
	return false, nil
}

func jnz(vm *VM, ex *execution) (bool, error) {
	r := ex.c.u8()
	addr := ex.c.u16()
	v := vm.state.Registers.Get(r) - 1
	vm.state.Registers.Set(r, v)
	if v != 0 {
		ex.c.pos = int(addr)
	}
	return false, nil
}

func condjmp(vm *VM, ex *execution) (bool, error) {
	sub := ex.c.u8()
	a := vm.state.Registers.Get(ex.c.u8())

	var b int16
	switch {
	case sub&CondRegister == CondRegister:
		b = vm.state.Registers.Get(ex.c.u8())
	case sub&CondImmediate == CondImmediate:
		b = ex.c.i16()
	default:
		b = int16(ex.c.u8())
	}

	addr := ex.c.u16()

	var jump bool
	switch sub & 0x07 {
	case CmpEqual:
		jump = a == b
	case CmpNotEqual:
		jump = a != b
	case CmpGreater:
		jump = a > b
	case CmpGreaterEqual:
		jump = a >= b
	case CmpLess:
		jump = a < b
	case CmpLessEqual:
		jump = a <= b
	default:
		return false, curated.Errorf(InvalidCondition, sub&0x07)
	}

	if jump {
		ex.c.pos = int(addr)
	}
	return false, nil
}

// setvec requests that a thread becomes active at the address. the request
// takes effect in the next round
func setvec(vm *VM, ex *execution) (bool, error) {
	id := ex.c.u8()
	addr := ex.c.u16()
	if int(id) >= threads.Count {
		return false, curated.Errorf(InvalidThreadID, id)
	}
	vm.state.Threads[id].Request(threads.ActiveAt(int(addr)))
	return false, nil
}

// resetthread requests a change of state for a range of threads. the
// resumption address for activated and paused threads is taken from the
// current state of the thread. for a thread that is running this round and
// has not yet reached its break instruction, the address will be the one it
// started the round with
func resetthread(vm *VM, ex *execution) (bool, error) {
	first := ex.c.u8()
	last := ex.c.u8()
	op := ex.c.u8()

	if op > ResetKill {
		return false, curated.Errorf(InvalidThreadOp, op)
	}
	if int(last) >= threads.Count || last < first {
		return false, curated.Errorf(InvalidThreadSpan, first, last)
	}

	for i := int(first); i <= int(last); i++ {
		t := &vm.state.Threads[i]

		var pc int
		switch {
		case t.State.Status == threads.Active && op != ResetActivate:
			pc = t.State.PC
		case t.State.Status == threads.Paused:
			pc = t.State.PC
		default:
			// activating an active thread leaves it alone. an inactive thread
			// can only be killed
			if op == ResetKill {
				t.Request(threads.Stopped)
			}
			continue
		}

		switch op {
		case ResetActivate:
			t.Request(threads.ActiveAt(pc))
		case ResetPause:
			t.Request(threads.PausedAt(pc))
		case ResetKill:
			t.Request(threads.Stopped)
		}
	}

	return false, nil
}
