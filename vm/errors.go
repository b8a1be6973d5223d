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

// Sentinal error patterns. All these errors are fatal and are returned by
// ProcessRound().
const (
	UnknownOpcode     = "vm: unknown opcode (%#02x) at %04x in thread %d"
	EmptyCallStack    = "vm: return with empty call stack in thread %d"
	InvalidThreadSpan = "vm: invalid thread range (%d to %d)"
	InvalidThreadOp   = "vm: invalid resetthread operation (%d)"
	InvalidThreadID   = "vm: invalid thread (%d)"
	InvalidCondition  = "vm: invalid condjmp comparison (%d)"
	CursorOverrun     = "vm: program overrun at %04x"
	SceneLoad         = "vm: scene %d: %v"
	Runaway           = "vm: thread %d has not yielded after %d instructions"
)
