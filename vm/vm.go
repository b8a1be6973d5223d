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
	"fmt"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/logger"
	"github.com/jetsetilly/gopherworld/scenes"
	"github.com/jetsetilly/gopherworld/vm/registers"
	"github.com/jetsetilly/gopherworld/vm/threads"
)

// the number of instructions a thread can execute in a single round before
// it is considered to be stuck
const maxInstructions = 1 << 20

// VM is the bytecode virtual machine.
type VM struct {
	env       *environment.Environment
	resources ResourceProvider
	strings   StringTable

	state State

	// the number of rounds processed since the VM was created
	round int

	// resources for the current scene
	program   []byte
	palettes  []byte
	cinematic []byte
	video     []byte
}

// NewVM is the preferred method of initialisation for the VM type. No scene
// is loaded until one is requested with RequestScene() and the next round is
// processed. The strings argument can be nil.
func NewVM(env *environment.Environment, provider ResourceProvider, strings StringTable) *VM {
	vm := &VM{
		env:       env,
		resources: provider,
		strings:   strings,
	}
	vm.state.Scene = NoScene
	vm.state.Registers.Seed()
	return vm
}

func (vm *VM) String() string {
	return fmt.Sprintf("round %d %s", vm.round, vm.state.String())
}

// Round returns the number of rounds processed.
func (vm *VM) Round() int {
	return vm.round
}

// State returns a copy of the VM state.
func (vm *VM) State() State {
	return vm.state.Clone()
}

// Program returns the code segment of the current scene. The returned slice
// should not be modified.
func (vm *VM) Program() []byte {
	return vm.program
}

// RequestScene asks for the scene to be loaded at the start of the next
// round. A previous request that has not yet been honoured is replaced.
func (vm *VM) RequestScene(index int) {
	vm.state.SceneRequest = index
	vm.state.SceneRequested = true
}

// FramesToWait returns the number of display frames the host should wait
// after the round just processed. The value is written by the scripts.
func (vm *VM) FramesToWait() int {
	return max(int(vm.state.Registers.Get(registers.PauseSlices)), 0)
}

// ProcessRound runs every active thread until it yields. Returns false if
// there were no active threads. A returned error is fatal and the VM
// should not be used again without restoring a snapshot.
func (vm *VM) ProcessRound(gfx Graphics, aud Audio) (bool, error) {
	if vm.state.SceneRequested {
		vm.state.SceneRequested = false
		if err := vm.loadScene(vm.state.SceneRequest, aud); err != nil {
			return false, err
		}
	}

	if v, ok := aud.TakeRegisterRequest(); ok {
		vm.state.Registers.Set(registers.MusicSync, v)
	}

	work := vm.state.Threads.Worklist()
	for _, w := range work {
		if err := vm.runThread(w, gfx, aud); err != nil {
			return false, err
		}
	}

	vm.round++

	return len(work) > 0, nil
}

// runThread executes instructions for the thread until a handler signals
// that the thread should stop for this round.
func (vm *VM) runThread(w threads.Entry, gfx Graphics, aud Audio) error {
	ex := &execution{
		thread: w.ID,
		c:      cursor{data: vm.program, pos: w.PC},
		gfx:    gfx,
		aud:    aud,
	}

	for range maxInstructions {
		ex.pc = ex.c.pos
		ex.op = ex.c.u8()
		if ex.c.err != nil {
			return ex.c.err
		}

		h := lookup(ex.op)
		if h == nil {
			return curated.Errorf(UnknownOpcode, ex.op, ex.pc, ex.thread)
		}

		stop, err := h(vm, ex)
		if err != nil {
			return err
		}
		if ex.c.err != nil {
			return ex.c.err
		}
		if stop {
			return nil
		}
	}

	return curated.Errorf(Runaway, ex.thread, maxInstructions)
}

// loadSegments loads the resources for the scene without changing the state
// of the VM.
func (vm *VM) loadSegments(index int) error {
	scn, err := scenes.Get(index)
	if err != nil {
		return err
	}

	load := func(id int) ([]byte, error) {
		r, err := vm.resources.Load(id)
		if err != nil {
			return nil, err
		}
		return r.Data, nil
	}

	program, err := load(scn.Bytecode)
	if err != nil {
		return err
	}
	palettes, err := load(scn.Palette)
	if err != nil {
		return err
	}
	cinematic, err := load(scn.Video1)
	if err != nil {
		return err
	}

	// scenes without a second segment continue to use the segment of the
	// previous scene
	video := vm.video
	if scn.Video2 != 0 {
		video, err = load(scn.Video2)
		if err != nil {
			return err
		}
	}

	vm.program = program
	vm.palettes = palettes
	vm.cinematic = cinematic
	vm.video = video
	vm.state.Scene = index

	logger.Logf(vm.env, "vm", "scene %d (%s)", index, scn.Name)

	return nil
}

// loadScene loads the resources for the scene and resets the VM ready for
// the scene to start.
func (vm *VM) loadScene(index int, aud Audio) error {
	if err := vm.loadSegments(index); err != nil {
		return curated.Errorf(SceneLoad, index, err)
	}
	vm.state.Registers.Seed()
	vm.state.Threads.Reset()
	aud.Reset()
	return nil
}
