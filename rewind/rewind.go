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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/vm"
)

// Sentinal error patterns.
const (
	NoEntries = "rewind: history is empty"
)

// values used if the environment has no preferences
const (
	defaultMaxEntries = 100
	defaultFreq       = 25
)

// Rewind contains a history of VM states.
type Rewind struct {
	env *environment.Environment
	vm  *vm.VM
	gfx vm.Graphics
	aud vm.Audio

	// circular array of snapshots. the number of entries is decided by the
	// preferences at the time of the most recent Reset()
	entries []*vm.Snapshot
	start   int
	count   int

	// snapshot every freq rounds
	freq int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The history is empty until Reset() is called.
func NewRewind(env *environment.Environment, machine *vm.VM, gfx vm.Graphics, aud vm.Audio) *Rewind {
	return &Rewind{
		env: env,
		vm:  machine,
		gfx: gfx,
		aud: aud,
	}
}

func (r *Rewind) String() string {
	tl := r.Timeline()
	if tl.Count == 0 {
		return "rewind: empty"
	}
	return fmt.Sprintf("rewind: %d entries (rounds %d to %d)", tl.Count, tl.Start, tl.End)
}

// preferences returns the maximum number of entries and the snapshot
// frequency.
func (r *Rewind) preferences() (int, int) {
	if r.env == nil || r.env.Prefs == nil {
		return defaultMaxEntries, defaultFreq
	}
	n := r.env.Prefs.RewindMaxEntries.Get().(int)
	freq := r.env.Prefs.RewindFreq.Get().(int)
	return n, freq
}

// Reset removes all entries and takes a snapshot of the current state. It
// should be called whenever the VM is started.
func (r *Rewind) Reset() {
	n, freq := r.preferences()
	r.entries = make([]*vm.Snapshot, max(n, 1))
	r.freq = max(freq, 1)
	r.start = 0
	r.count = 0
	r.Record()
}

// Check should be called once after every round. A snapshot will be taken if
// the round number is a multiple of the snapshot frequency.
func (r *Rewind) Check() {
	if len(r.entries) == 0 {
		return
	}
	if r.vm.Round()%r.freq != 0 {
		return
	}
	r.Record()
}

// Record a snapshot regardless of the snapshot frequency.
func (r *Rewind) Record() {
	if len(r.entries) == 0 {
		r.Reset()
		return
	}
	r.append(r.vm.TakeSnapshot(r.gfx, r.aud))
}

func (r *Rewind) append(s *vm.Snapshot) {
	if r.count == len(r.entries) {
		r.entries[r.start] = s
		r.start++
		if r.start >= len(r.entries) {
			r.start = 0
		}
		return
	}

	e := r.start + r.count
	if e >= len(r.entries) {
		e -= len(r.entries)
	}
	r.entries[e] = s
	r.count++
}

// index of the most recent entry
func (r *Rewind) last() int {
	e := r.start + r.count - 1
	if e >= len(r.entries) {
		e -= len(r.entries)
	}
	return e
}

// Rewind restores the most recent snapshot and removes it from the history.
// The oldest snapshot is never removed so repeated calls will eventually
// settle on that state.
func (r *Rewind) Rewind() error {
	if r.count == 0 {
		return curated.Errorf(NoEntries)
	}

	e := r.last()
	s := r.entries[e]
	if r.count > 1 {
		r.entries[e] = nil
		r.count--
	}

	if err := r.vm.RestoreSnapshot(s, r.gfx, r.aud); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	logger.Logf(r.env, "rewind", "restored round %d", s.Round)

	return nil
}

// Len returns the number of snapshots in the history.
func (r *Rewind) Len() int {
	return r.count
}
