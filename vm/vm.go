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

import (
	"io"
)

// Instance represents a Brainfart VM instance.
//
// An Instance is a long lived object: its tape, subroutine table, call stack
// and program counter persist across calls to Run, Step and Extend, which is
// what interactive sessions rely on. Instances are not safe for concurrent
// use.
type Instance struct {
	code     []Opcode
	tape     *Tape
	slots    slots
	calls    callStack
	pc       int
	halted   bool
	insCount int64
	input    io.ByteReader
	output   byteWriter
}

// Option interface
type Option func(*Instance) error

// Input pushes the given Reader on top of the input stack. ReadByte
// instructions read from the topmost reader; when it is exhausted, the
// previously pushed reader is used.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output configures the output Writer. If w has a Flush() error method, it is
// called after each newline written and before any read.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Brainfart Virtual Machine instance loaded with the given
// program. The program counter starts at 0 and the tape holds a single zero
// cell.
//
// The code is expected to be well formed, with loops and definitions
// balanced, as returned by asm.Assemble or Load. New does not check it.
//
// Options will be set by calling SetOptions.
func New(code []Opcode, opts ...Option) (*Instance, error) {
	i := &Instance{
		code: append([]Opcode(nil), code...),
		tape: NewTape(),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Extend appends code at the end of the program. No other state is reset, so
// that the next call to Run resumes where the previous one stopped, with the
// same tape and bindings.
func (i *Instance) Extend(code ...Opcode) {
	i.code = append(i.code, code...)
}

// Abort abandons the code loaded so far: the program counter moves past the
// end of the code and the call stack is emptied. The tape and subroutine
// bindings are kept, so that code added by a later Extend runs on them.
func (i *Instance) Abort() {
	i.pc = len(i.code)
	i.calls = i.calls[:0]
}

// PC returns the program counter.
func (i *Instance) PC() int {
	return i.pc
}

// Halted reports whether a return with an empty call stack ended the program.
// A halted instance does not execute any further instructions, even if
// extended.
func (i *Instance) Halted() bool {
	return i.halted
}

// Done reports whether there is nothing left to execute: the instance is
// halted or the program counter is past the end of the code.
func (i *Instance) Done() bool {
	return i.halted || i.pc >= len(i.code)
}

// Code returns the loaded program. It must not be modified.
func (i *Instance) Code() []Opcode {
	return i.code
}

// Tape returns the VM tape. It should be treated as read-only while the
// instance is in use.
func (i *Instance) Tape() *Tape {
	return i.tape
}

// Slots returns the bound subroutine slots and their code positions.
func (i *Instance) Slots() map[int]int {
	m := make(map[int]int)
	for n, s := range i.slots {
		if s.bound {
			m[n] = s.pc
		}
	}
	return m
}

// Calls returns a copy of the call stack, outermost return address first.
func (i *Instance) Calls() []int {
	return append([]int(nil), i.calls...)
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
