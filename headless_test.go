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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherworld/curated"
	"github.com/jetsetilly/gopherworld/environment"
	"github.com/jetsetilly/gopherworld/resources"
	"github.com/jetsetilly/gopherworld/test"
	"github.com/jetsetilly/gopherworld/vm"
)

type provider map[int]resources.Resource

func (p provider) Load(id int) (resources.Resource, error) {
	r, ok := p[id]
	if !ok {
		return resources.Resource{}, curated.Errorf(resources.NotFound, id)
	}
	return r, nil
}

func intro(program []byte) provider {
	palette := make([]byte, 32)
	for i := range palette {
		palette[i] = byte(i * 7)
	}
	return provider{
		0x17: {ID: 0x17, Type: resources.Palette, Data: palette},
		0x18: {ID: 0x18, Type: resources.Bytecode, Data: program},
		0x19: {ID: 0x19, Type: resources.Cinematic, Data: []byte{}},
	}
}

func testEnv() *environment.Environment {
	env := &environment.Environment{
		Label: "test",
		Prefs: &environment.Preferences{},
	}
	env.Prefs.SetDefaults()
	return env
}

// fills page zero and presents it every round
var flasher = []byte{
	vm.OpSetPalette, 0x00, 0x00,
	vm.OpAddi, 0x00, 0x00, 0x01,
	vm.OpFillVideoPage, 0x00, 0x00,
	vm.OpBlitFramebuffer, 0x00,
	vm.OpBreak,
	vm.OpJmp, 0x00, 0x03,
}

func TestHeadless(t *testing.T) {
	_, a, err := runHeadless(testEnv(), intro(flasher), nil, 1, 20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Rounds, 20)
	test.ExpectEquality(t, a.Frames, 20)

	// the same run produces the same digest
	_, b, err := runHeadless(testEnv(), intro(flasher), nil, 1, 20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a, b)

	// a longer run does not
	_, c, err := runHeadless(testEnv(), intro(flasher), nil, 1, 21)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, a.Video, c.Video)
}

func TestHeadlessNoThreads(t *testing.T) {
	_, res, err := runHeadless(testEnv(), intro([]byte{vm.OpKillThread}), nil, 1, 20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Rounds, 1)
	test.ExpectEquality(t, res.Frames, 0)
}

func TestHeadlessError(t *testing.T) {
	_, _, err := runHeadless(testEnv(), intro([]byte{0x3f}), nil, 1, 20)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, vm.UnknownOpcode))

	_, _, err = runHeadless(testEnv(), provider{}, nil, 1, 20)
	test.ExpectFailure(t, err)
}

func TestMemviz(t *testing.T) {
	machine, _, err := runHeadless(testEnv(), intro(flasher), nil, 1, 5)
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	writeMemviz(w, machine)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
