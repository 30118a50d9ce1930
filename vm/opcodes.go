// This file is part of brainfart - https://github.com/daddinuz/brainfart
//
// Copyright 2024 The brainfart Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

// Opcode is a VM instruction. Opcodes carry no payload: every operand is the
// value of the current tape cell.
type Opcode byte

// Brainfart Virtual Machine Opcodes.
const (
	OpMoveLeft Opcode = iota
	OpMoveRight
	OpDecrement
	OpIncrement
	OpReadByte
	OpWriteByte
	OpLoopStart
	OpLoopEnd
	OpDefineStart
	OpDefineEnd
	OpReturn
	OpCall
)

var opcodes = [...]rune{
	'<',
	'>',
	'-',
	'+',
	',',
	'.',
	'[',
	']',
	'{',
	'}',
	';',
	'@',
}

var opcodeIndex = make(map[rune]Opcode)

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Opcode(i)
	}
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	return int(op) < len(opcodes)
}

// String returns the source character of op.
func (op Opcode) String() string {
	if !op.Valid() {
		return "???"
	}
	return string(opcodes[op])
}

// OpcodeFor returns the opcode for the source character r.
func OpcodeFor(r rune) (op Opcode, ok bool) {
	op, ok = opcodeIndex[r]
	return
}
