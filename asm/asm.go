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

package asm

import (
	"io"
	"strings"

	"github.com/daddinuz/brainfart/internal/bfi"
	"github.com/daddinuz/brainfart/vm"
)

// Assemble compiles source read from the supplied io.Reader and returns the
// resulting code and error if any.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]vm.Opcode, error) {
	p := new(parser)
	code, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return code, nil
}

// Disassemble writes the opcode in the given slice at position pc to the
// specified io.Writer and returns the position of the next opcode and any
// write error.
func Disassemble(code []vm.Opcode, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*bfi.ErrWriter)
	if ew == nil {
		ew = bfi.NewErrWriter(w)
	}
	if pc < 0 || pc >= len(code) {
		ew.WriteString("???")
		return pc + 1, ew.Err
	}
	ew.WriteString(code[pc].String())
	return pc + 1, ew.Err
}

// DisassembleAll writes a listing of all opcodes in the given slice to the
// specified io.Writer, one per line, indented by nesting depth. The base
// argument specifies the real address of the first opcode (code[0]). It will
// return any write error.
func DisassembleAll(code []vm.Opcode, base int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	var depth int
	for pc := 0; pc < len(code); {
		op := code[pc]
		if (op == vm.OpLoopEnd || op == vm.OpDefineEnd) && depth > 0 {
			depth--
		}
		ew.WriteInt(base+pc, 10)
		ew.WriteByte('\t')
		ew.WriteString(strings.Repeat("  ", depth))
		pc, _ = Disassemble(code, pc, ew)
		ew.WriteByte('\n')
		if op == vm.OpLoopStart || op == vm.OpDefineStart {
			depth++
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// Format returns the source text of code.
func Format(code []vm.Opcode) string {
	var b strings.Builder
	for _, op := range code {
		b.WriteString(op.String())
	}
	return b.String()
}
