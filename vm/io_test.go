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

package vm_test

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/daddinuz/brainfart/vm"
	"github.com/pkg/errors"
)

var errBroken = errors.New("broken pipe")

// brokenReader fails until fixed.
type brokenReader struct {
	r      io.Reader
	broken bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if r.broken {
		return 0, errBroken
	}
	return r.r.Read(p)
}

type brokenWriter struct {
	b      bytes.Buffer
	broken bool
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.broken {
		return 0, errBroken
	}
	return w.b.Write(p)
}

func (w *brokenWriter) String() string { return w.b.String() }

func TestIO_readEOF(t *testing.T) {
	// no input at all
	i := setup(t, "+++,")
	check(t, "no input", i, []byte{0}, 0)
	// exhausted input
	i = setup(t, ",>+++,", vm.Input(strings.NewReader("x")))
	check(t, "EOF", i, []byte{'x', 0}, 1)
}

func TestIO_readError(t *testing.T) {
	r := &brokenReader{strings.NewReader("A"), true}
	i := setup(t, "+>,.", vm.Input(r))
	err := i.Run()
	if errors.Cause(err) != errBroken {
		t.Fatalf("Unexpected error: %v", err)
	}
	// state is as of the last completed instruction
	if i.PC() != 2 || i.Tape().Cursor() != 1 || i.Tape().Get() != 0 || i.InstructionCount() != 2 {
		t.Fatalf("Bad state after error: PC %d, cursor %d", i.PC(), i.Tape().Cursor())
	}
	// resume
	r.broken = false
	check(t, "resume", i, []byte{1, 'A'}, 1)
}

func TestIO_writeError(t *testing.T) {
	w := &brokenWriter{broken: true}
	i := setup(t, "+++.+", vm.Output(w))
	err := i.Run()
	if errors.Cause(err) != errBroken {
		t.Fatalf("Unexpected error: %v", err)
	}
	if i.PC() != 3 || i.Tape().Get() != 3 {
		t.Fatalf("Bad state after error: PC %d, cell %d", i.PC(), i.Tape().Get())
	}
	w.broken = false
	if !check(t, "resume", i, []byte{4}, 0) {
		return
	}
	if w.String() != "\x03" {
		t.Fatalf("Expected output 03, got %q", w.String())
	}
}

func TestIO_multiReader(t *testing.T) {
	var out bytes.Buffer
	i := setup(t, ",[.,]",
		vm.Input(strings.NewReader("56")),
		vm.Input(strings.NewReader("34")),
		vm.Input(strings.NewReader("12")),
		vm.Output(&out))
	if !check(t, "multireader", i, []byte{0}, 0) {
		return
	}
	if out.String() != "123456" {
		t.Fatalf("Expected 123456, got %q", out.String())
	}
}

func TestIO_flush(t *testing.T) {
	var b bytes.Buffer
	w := bufio.NewWriter(&b)
	i := setup(t, "+++++ +++++ .", vm.Output(w))
	if !check(t, "newline", i, []byte{10}, 0) {
		return
	}
	if b.String() != "\n" {
		t.Fatalf("Output not flushed on newline: %q", b.String())
	}

	// pending output is flushed before reading
	b.Reset()
	var seen string
	r := readerFunc(func(p []byte) (int, error) {
		seen = b.String()
		return 0, io.EOF
	})
	i = setup(t, "+++.,", vm.Input(r), vm.Output(w))
	if !check(t, "read", i, []byte{0}, 0) {
		return
	}
	if seen != "\x03" {
		t.Fatalf("Output not flushed before read: %q", seen)
	}
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestRunContext(t *testing.T) {
	i := setup(t, "+[]")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := i.RunContext(ctx)
	if err != context.DeadlineExceeded {
		t.Fatalf("Unexpected error: %v", err)
	}
	if i.Done() || i.Tape().Get() != 1 {
		t.Fatalf("Bad state after cancellation: PC %d", i.PC())
	}
	if pc := i.PC(); pc != 1 && pc != 2 {
		t.Fatalf("Bad PC after cancellation: %d", pc)
	}

	// a cancelled context stops before the first instruction
	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	i = setup(t, "+")
	if err = i.RunContext(ctx); err != context.Canceled {
		t.Fatalf("Unexpected error: %v", err)
	}
	if i.PC() != 0 {
		t.Fatalf("Expected PC 0, got %d", i.PC())
	}
	if err = i.RunContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if i.Tape().Get() != 1 {
		t.Fatal("Expected cell 1")
	}
}

func TestMalformed(t *testing.T) {
	var tests = [...]struct {
		name string
		code []vm.Opcode
		pc   int
		cell byte
	}{
		{"[", []vm.Opcode{vm.OpLoopStart}, 0, 0},
		{"]", []vm.Opcode{vm.OpIncrement, vm.OpLoopEnd}, 1, 1},
		{"{", []vm.Opcode{vm.OpIncrement, vm.OpDefineStart, vm.OpIncrement}, 1, 1},
		{"[]]", []vm.Opcode{vm.OpIncrement, vm.OpDecrement, vm.OpLoopStart, vm.OpLoopEnd, vm.OpIncrement, vm.OpLoopEnd}, 5, 1},
	}
	for _, test := range tests {
		i, err := vm.New(test.code)
		if err != nil {
			t.Fatal(err)
		}
		err = i.Run()
		if errors.Cause(err) != vm.ErrMalformed {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if i.PC() != test.pc || i.Tape().Get() != test.cell {
			t.Errorf("%s: bad state: PC %d, cell %d", test.name, i.PC(), i.Tape().Get())
		}
		if len(i.Slots()) != 0 {
			t.Errorf("%s: slot bound on error: %v", test.name, i.Slots())
		}
	}
}

func TestInvalidOpcode(t *testing.T) {
	i, _ := vm.New([]vm.Opcode{vm.OpIncrement, vm.Opcode(200)})
	err := i.Run()
	if err == nil || i.PC() != 1 {
		t.Fatalf("Expected error at PC 1, got %v at %d", err, i.PC())
	}
}

func TestDump(t *testing.T) {
	i := setup(t, "+{>+<}+<>@")
	i.Run()
	var b bytes.Buffer
	if err := i.Dump(&b); err != nil {
		t.Fatal(err)
	}
	exp := "pc: 10/10\nhalted: false\ntape: 0 [0] 1\nslots: 1:2\ncalls:\n"
	if b.String() != exp {
		t.Fatalf("Expected:\n%s\nGot:\n%s", exp, b.String())
	}
}
