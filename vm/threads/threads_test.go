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

package threads_test

import (
	"testing"

	"github.com/jetsetilly/gopherworld/test"
	"github.com/jetsetilly/gopherworld/vm/threads"
)

func TestReset(t *testing.T) {
	var tbl threads.Table
	tbl[5].State = threads.PausedAt(10)
	tbl[6].Request(threads.ActiveAt(20))
	tbl[0].Push(30)

	tbl.Reset()
	test.ExpectEquality(t, tbl[0].State, threads.ActiveAt(0))
	test.ExpectEquality(t, len(tbl[0].CallStack), 0)
	for i := 1; i < threads.Count; i++ {
		test.ExpectEquality(t, tbl[i].State, threads.Stopped)
		test.ExpectFailure(t, tbl[i].HasRequest)
	}
}

func TestRequestIsDeferred(t *testing.T) {
	var tbl threads.Table
	tbl.Reset()

	tbl[3].Request(threads.ActiveAt(0x100))
	test.ExpectEquality(t, tbl[3].State, threads.Stopped)

	work := tbl.Worklist()
	test.ExpectEquality(t, len(work), 2)
	test.ExpectEquality(t, work[0], threads.Entry{ID: 0, PC: 0})
	test.ExpectEquality(t, work[1], threads.Entry{ID: 3, PC: 0x100})
	test.ExpectFailure(t, tbl[3].HasRequest)

	// requests made after the worklist has been built don't change it
	tbl[4].Request(threads.ActiveAt(0x200))
	test.ExpectEquality(t, len(work), 2)
	test.ExpectEquality(t, len(tbl.Worklist()), 3)
}

func TestWorklistOrder(t *testing.T) {
	var tbl threads.Table
	for _, id := range []int{63, 2, 40, 7} {
		tbl[id].Request(threads.ActiveAt(id * 2))
	}
	tbl[10].Request(threads.PausedAt(5))

	work := tbl.Worklist()
	test.DemandEquality(t, len(work), 4)
	test.ExpectEquality(t, work[0].ID, 2)
	test.ExpectEquality(t, work[1].ID, 7)
	test.ExpectEquality(t, work[2].ID, 40)
	test.ExpectEquality(t, work[3].ID, 63)
	test.ExpectEquality(t, work[3].PC, 126)
	test.ExpectEquality(t, tbl[10].State, threads.PausedAt(5))
}

func TestEmptyWorklist(t *testing.T) {
	var tbl threads.Table
	test.ExpectEquality(t, len(tbl.Worklist()), 0)
}

func TestCallStack(t *testing.T) {
	var th threads.Thread
	_, ok := th.Pop()
	test.ExpectFailure(t, ok)

	th.Push(1)
	th.Push(2)
	pc, ok := th.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pc, 2)
	pc, ok = th.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pc, 1)
	_, ok = th.Pop()
	test.ExpectFailure(t, ok)
}

func TestBreak(t *testing.T) {
	var th threads.Thread
	th.State = threads.ActiveAt(0x10)

	th.Break(0x20)
	test.ExpectEquality(t, th.State, threads.ActiveAt(0x20))
	test.ExpectFailure(t, th.HasRequest)

	// a queued pause request is corrected to the new PC
	th.Request(threads.PausedAt(0x20))
	th.Break(0x30)
	test.ExpectEquality(t, th.Requested, threads.PausedAt(0x30))

	// other requests are left alone
	th.Request(threads.ActiveAt(0x40))
	th.Break(0x50)
	test.ExpectEquality(t, th.Requested, threads.ActiveAt(0x40))
	test.ExpectEquality(t, th.State, threads.ActiveAt(0x50))
}

func TestClone(t *testing.T) {
	var tbl threads.Table
	tbl.Reset()
	tbl[0].Push(0x10)

	c := tbl.Clone()
	tbl[0].Push(0x20)
	tbl[0].CallStack[0] = 0x99
	tbl[1].State = threads.ActiveAt(4)

	test.ExpectEquality(t, len(c[0].CallStack), 1)
	test.ExpectEquality(t, c[0].CallStack[0], 0x10)
	test.ExpectEquality(t, c[1].State, threads.Stopped)
}

func TestString(t *testing.T) {
	var tbl threads.Table
	tbl.Reset()
	tbl[2].Request(threads.PausedAt(0x1f))
	test.ExpectEquality(t, tbl.String(), "00: active@0000\n02: inactive (requested paused@001f)\n")
}
