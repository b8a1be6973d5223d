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

// Package threads implements the thread table of the VM. There are 64
// threads and they exist for the lifetime of the VM. Threads are never
// created or destroyed, they only change state.
//
// Each thread has a current state and a requested state. The requested state
// is set by the resetthread and setvec opcodes and only becomes the current
// state at the start of the next round, when ApplyRequests() is called. An
// opcode can therefore never change the list of threads that run in the
// round it is executed in.
package threads

import (
	"fmt"
	"strings"
)

// Count is the number of threads in the thread table.
const Count = 64

// Status of a thread.
type Status int

// List of valid Status values.
const (
	Inactive Status = iota
	Active
	Paused
)

func (s Status) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// State of a thread. The PC field is meaningful for Active and Paused
// threads. It is the address in the program that execution will resume from.
type State struct {
	Status Status
	PC     int
}

// ActiveAt returns an Active state with the specified PC.
func ActiveAt(pc int) State {
	return State{Status: Active, PC: pc}
}

// PausedAt returns a Paused state with the specified PC.
func PausedAt(pc int) State {
	return State{Status: Paused, PC: pc}
}

// Stopped is the Inactive state.
var Stopped = State{Status: Inactive}

func (s State) String() string {
	if s.Status == Inactive {
		return s.Status.String()
	}
	return fmt.Sprintf("%s@%04x", s.Status, s.PC)
}

// Thread is a single cooperative thread of execution.
type Thread struct {
	State State

	// the state to move to at the start of the next round. only valid if
	// HasRequest is true
	Requested  State
	HasRequest bool

	// return addresses of jsr instructions
	CallStack []int
}

// Request a new state for the thread. The state takes effect at the start of
// the next round. A previous request in the same round is replaced.
func (t *Thread) Request(s State) {
	t.Requested = s
	t.HasRequest = true
}

// Push return address onto the call stack.
func (t *Thread) Push(pc int) {
	t.CallStack = append(t.CallStack, pc)
}

// Pop return address from the call stack. Returns false if the call stack is
// empty.
func (t *Thread) Pop() (int, bool) {
	if len(t.CallStack) == 0 {
		return 0, false
	}
	pc := t.CallStack[len(t.CallStack)-1]
	t.CallStack = t.CallStack[:len(t.CallStack)-1]
	return pc, true
}

// Break stops the thread for this round and records the PC at which it
// should resume. A Paused state already requested this round is corrected to
// use the same PC, otherwise the thread would resume from the PC that was
// current when the request was made.
func (t *Thread) Break(pc int) {
	t.State = ActiveAt(pc)
	if t.HasRequest && t.Requested.Status == Paused {
		t.Requested.PC = pc
	}
}

func (t Thread) String() string {
	if t.HasRequest {
		return fmt.Sprintf("%s (requested %s)", t.State, t.Requested)
	}
	return t.State.String()
}

// Entry in the worklist returned by Table.Worklist().
type Entry struct {
	ID int
	PC int
}

// Table of threads.
type Table [Count]Thread

// Reset the table to the state required at the start of a scene. Thread
// zero is active at address zero and every other thread is inactive. Call
// stacks and requests are cleared.
func (tbl *Table) Reset() {
	for i := range tbl {
		tbl[i] = Thread{}
	}
	tbl[0].State = ActiveAt(0)
}

// ApplyRequests moves every requested state into the current state.
func (tbl *Table) ApplyRequests() {
	for i := range tbl {
		t := &tbl[i]
		if t.HasRequest {
			t.State = t.Requested
			t.Requested = State{}
			t.HasRequest = false
		}
	}
}

// Worklist applies any requested states and returns the list of active
// threads in ascending ID order.
func (tbl *Table) Worklist() []Entry {
	tbl.ApplyRequests()

	var work []Entry
	for i := range tbl {
		if tbl[i].State.Status == Active {
			work = append(work, Entry{ID: i, PC: tbl[i].State.PC})
		}
	}
	return work
}

// Clone returns a deep copy of the table. Call stacks are not shared between
// the original and the copy.
func (tbl *Table) Clone() Table {
	c := *tbl
	for i := range c {
		if tbl[i].CallStack != nil {
			c[i].CallStack = make([]int, len(tbl[i].CallStack))
			copy(c[i].CallStack, tbl[i].CallStack)
		}
	}
	return c
}

// String returns the state of every thread that isn't inactive.
func (tbl *Table) String() string {
	s := strings.Builder{}
	for i, t := range tbl {
		if t.State.Status != Inactive || t.HasRequest {
			s.WriteString(fmt.Sprintf("%02d: %s\n", i, t))
		}
	}
	return s.String()
}
