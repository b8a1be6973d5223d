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

// Package registers implements the register file of the VM. There are 256
// registers, each a signed 16-bit value. The register file is global to the
// VM and is shared by all threads.
//
// Some registers have a special meaning. They mirror the input state, pace
// the game loop or are written by the music player. The indices of these
// registers are listed as constants.
package registers

import (
	"fmt"
	"strings"
)

// Count is the number of registers in the register file.
const Count = 256

// List of registers with a special meaning.
const (
	RandomSeed        uint8 = 0x3c
	LastKeyChar       uint8 = 0xda
	HeroPosUpDown     uint8 = 0xe5
	MusicSync         uint8 = 0xf4
	GraphicsDetail    uint8 = 0xf6
	SlicesUsed        uint8 = 0xf7
	ScrollY           uint8 = 0xf9
	HeroAction        uint8 = 0xfa
	HeroPosJumpDown   uint8 = 0xfb
	HeroPosLeftRight  uint8 = 0xfc
	HeroPosMask       uint8 = 0xfd
	HeroActionPosMask uint8 = 0xfe
	PauseSlices       uint8 = 0xff
)

// the values some scenes rely on being present. the purpose of most of them
// is unknown
var seeds = [...]struct {
	idx uint8
	val int16
}{
	{idx: RandomSeed, val: -0x4111}, // 0xbeef
	{idx: 0xbc, val: 0x10},
	{idx: 0xf2, val: 0xfa0},
	{idx: 0xdc, val: 0x21},
}

// File is the register file. The zero value is a register file with every
// register set to zero. Because it is an array it can be copied by simple
// assignment.
type File [Count]int16

// Get the value of register.
func (r *File) Get(idx uint8) int16 {
	return r[idx]
}

// Set the value of register.
func (r *File) Set(idx uint8, v int16) {
	r[idx] = v
}

// Seed sets the registers that must hold a specific value when a scene
// starts. Other registers are not affected.
func (r *File) Seed() {
	for _, s := range seeds {
		r[s.idx] = s.val
	}
}

// String returns the non-zero registers.
func (r *File) String() string {
	s := strings.Builder{}
	for i, v := range r {
		if v != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(fmt.Sprintf("%02x=%04x", i, uint16(v)))
		}
	}
	return s.String()
}
