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
	"context"
	"io"

	"github.com/pkg/errors"
)

// number of instructions between two context checks in RunContext.
const ctxCheckInterval = 1024

// Step executes a single instruction. It does nothing if the instance is Done.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and no other state will have been modified, so that execution can be
// resumed once the cause of the error is fixed.
func (i *Instance) Step() error {
	if i.Done() {
		return nil
	}
	return i.step()
}

// Run executes instructions until the instance is Done or an error occurs.
//
// Reaching the end of the code or returning from the top level are normal
// exit conditions and return a nil error. Input exhaustion is not an error
// either: reads at end of input store 0 in the current cell.
//
// Errors whose cause is ErrMalformed mean that the code was not well formed.
// They are not recoverable.
func (i *Instance) Run() (err error) {
	defer i.recoverError(&err)
	for !i.Done() {
		if err = i.step(); err != nil {
			return err
		}
	}
	return nil
}

// RunContext is like Run but stops with ctx.Err() when ctx is done. The
// context is only checked between instructions, so the instance is left in a
// consistent state and a later call to Run will resume execution.
func (i *Instance) RunContext(ctx context.Context) (err error) {
	defer i.recoverError(&err)
	for n := 0; !i.Done(); n++ {
		if n%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		if err = i.step(); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instance) recoverError(err *error) {
	if e := recover(); e != nil {
		switch e := e.(type) {
		case error:
			*err = errors.Wrapf(e, "recovered error @pc=%d/%d", i.pc, len(i.code))
		default:
			panic(e)
		}
	}
}

func (i *Instance) step() error {
	var err error
	pc := i.pc
	op := i.code[pc]
	i.pc++
	switch op {
	case OpMoveLeft:
		i.tape.MoveLeft()
	case OpMoveRight:
		i.tape.MoveRight()
	case OpDecrement:
		i.tape.Dec()
	case OpIncrement:
		i.tape.Inc()
	case OpReadByte:
		err = i.readByte()
	case OpWriteByte:
		err = i.writeByte()
	case OpLoopStart:
		if i.tape.Get() == 0 {
			var end int
			if end, err = matchForward(i.code, i.pc, OpLoopStart, OpLoopEnd); err == nil {
				i.pc = end + 1
			}
		}
	case OpLoopEnd:
		// jump back into the body, past the guard: the cell was just checked.
		if i.tape.Get() != 0 {
			var start int
			if start, err = matchBackward(i.code, pc, OpLoopStart, OpLoopEnd); err == nil {
				i.pc = start + 1
			}
		}
	case OpDefineStart:
		var end int
		if end, err = matchForward(i.code, i.pc, OpDefineStart, OpDefineEnd); err == nil {
			n := i.tape.Get()
			i.tape.Set(0)
			i.slots.bind(int(n), i.pc)
			i.pc = end + 1
		}
	case OpDefineEnd, OpReturn:
		if ret, ok := i.calls.pop(); ok {
			i.pc = ret
		} else {
			i.halted = true
		}
	case OpCall:
		n := i.tape.Get()
		i.tape.Set(0)
		if target, ok := i.slots.lookup(int(n)); ok {
			i.calls.push(i.pc)
			i.pc = target
		}
	default:
		err = errors.Errorf("invalid opcode %d", op)
	}
	if err != nil {
		i.pc = pc
		return err
	}
	i.insCount++
	return nil
}

func (i *Instance) readByte() error {
	if err := i.flush(); err != nil {
		return err
	}
	if i.input == nil {
		i.tape.Set(0)
		return nil
	}
	b, err := i.input.ReadByte()
	switch err {
	case nil:
		i.tape.Set(b)
	case io.EOF:
		i.tape.Set(0)
	default:
		return errors.Wrap(err, "read failed")
	}
	return nil
}

func (i *Instance) writeByte() error {
	if i.output == nil {
		return nil
	}
	c := i.tape.Get()
	if err := i.output.WriteByte(c); err != nil {
		return errors.Wrap(err, "write failed")
	}
	if c == '\n' {
		return i.flush()
	}
	return nil
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "flush failed")
	}
	return nil
}
