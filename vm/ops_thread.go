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

func threadFamily(op uint8) handler {
	switch op {
	case OpJsr:
		return jsr
	case OpReturn:
		return ret
	case OpBreak:
		return brk
	case OpKillThread:
		return killthread
	}
	return nil
}

func jsr(vm *VM, ex *execution) (bool, error) {
	addr := ex.c.u16()
	vm.state.Threads[ex.thread].Push(ex.c.pos)
	ex.c.pos = int(addr)
	return false, nil
}

func ret(vm *VM, ex *execution) (bool, error) {
	pc, ok := vm.state.Threads[ex.thread].Pop()
	if !ok {
		return false, curated.Errorf(EmptyCallStack, ex.thread)
	}
	ex.c.pos = pc
	return false, nil
}

func brk(vm *VM, ex *execution) (bool, error) {
	vm.state.Threads[ex.thread].Break(ex.c.pos)
	return true, nil
}

// killthread stops the thread immediately. a state requested for the thread
// earlier in the round is not affected
func killthread(vm *VM, ex *execution) (bool, error) {
	vm.state.Threads[ex.thread].State = threads.Stopped
	return true, nil
}
