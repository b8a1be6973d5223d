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

// List of opcodes. The sprs and sprl instructions are identified by the top
// bits of the opcode and use the remaining bits as operands.
const (
	OpSeti            uint8 = 0x00
	OpSet             uint8 = 0x01
	OpAdd             uint8 = 0x02
	OpAddi            uint8 = 0x03
	OpJsr             uint8 = 0x04
	OpReturn          uint8 = 0x05
	OpBreak           uint8 = 0x06
	OpJmp             uint8 = 0x07
	OpSetVec          uint8 = 0x08
	OpJnz             uint8 = 0x09
	OpCondJmp         uint8 = 0x0a
	OpSetPalette      uint8 = 0x0b
	OpResetThread     uint8 = 0x0c
	OpSelectVideoPage uint8 = 0x0d
	OpFillVideoPage   uint8 = 0x0e
	OpCopyVideoPage   uint8 = 0x0f
	OpBlitFramebuffer uint8 = 0x10
	OpKillThread      uint8 = 0x11
	OpDrawString      uint8 = 0x12
	OpSub             uint8 = 0x13
	OpAnd             uint8 = 0x14
	OpOr              uint8 = 0x15
	OpShl             uint8 = 0x16
	OpShr             uint8 = 0x17
	OpPlaySound       uint8 = 0x18
	OpLoadResource    uint8 = 0x19
	OpPlayMusic       uint8 = 0x1a

	OpSprs     uint8 = 0x80
	OpSprsMask uint8 = 0x80
	OpSprl     uint8 = 0x40
	OpSprlMask uint8 = 0xc0
)

// IsSprs returns true if the opcode is a short sprite instruction.
func IsSprs(op uint8) bool {
	return op&OpSprsMask == OpSprs
}

// IsSprl returns true if the opcode is a long sprite instruction.
func IsSprl(op uint8) bool {
	return op&OpSprlMask == OpSprl
}

// Comparisons used by the condjmp instruction. The comparison is in the low
// three bits of the condjmp sub-opcode.
const (
	CmpEqual = iota
	CmpNotEqual
	CmpGreater
	CmpGreaterEqual
	CmpLess
	CmpLessEqual
)

// Bits in the condjmp sub-opcode selecting the right-hand operand. If neither
// is set the operand is an unsigned byte.
const (
	CondRegister  uint8 = 0x80
	CondImmediate uint8 = 0x40
)

// SceneThreshold is the lowest loadresource ID that requests a scene switch.
// The scene index is the ID minus the threshold.
const SceneThreshold = 0x3e80

// Values for the op operand of resetthread.
const (
	ResetActivate = 0
	ResetPause    = 1
	ResetKill     = 2
)
