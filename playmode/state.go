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

package playmode

import (
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/savestate"
)

// saveState writes the current state of the VM to the state file. Errors are
// logged.
func (pl *playmode) saveState() {
	if pl.statePath == "" {
		return
	}

	err := savestate.SaveFile(pl.statePath, pl.vm.TakeSnapshot(pl.gfx, pl.aud))
	if err != nil {
		logger.Log(pl.env, "playmode", err)
		return
	}

	logger.Logf(pl.env, "playmode", "state saved to %s", pl.statePath)
}

// loadState restores the VM from the state file. The restored state is
// recorded in the rewind history. Errors are logged.
func (pl *playmode) loadState() {
	if pl.statePath == "" {
		return
	}

	s, err := savestate.LoadFile(pl.statePath)
	if err != nil {
		logger.Log(pl.env, "playmode", err)
		return
	}

	err = pl.vm.RestoreSnapshot(s, pl.gfx, pl.aud)
	if err != nil {
		logger.Log(pl.env, "playmode", err)
		return
	}

	pl.wait = 0
	pl.rewind.Record()

	logger.Logf(pl.env, "playmode", "state loaded from %s (round %d)", pl.statePath, s.Round)
}
