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
	"testing"

	"github.com/pkg/errors"
)

func code(s string) []Opcode {
	c := make([]Opcode, 0, len(s))
	for _, r := range s {
		if op, ok := OpcodeFor(r); ok {
			c = append(c, op)
		}
	}
	return c
}

func TestMatchForward(t *testing.T) {
	var tests = [...]struct {
		code string
		from int
		open Opcode
		end  int
	}{
		{"[]", 1, OpLoopStart, 1},
		{"[+[-]+]+", 1, OpLoopStart, 6},
		{"[+[-]+]+", 3, OpLoopStart, 4},
		{"{[}]}", 1, OpDefineStart, 2}, // loops are not counted
		{"{{}{}}+", 1, OpDefineStart, 5},
	}
	for _, test := range tests {
		close := OpLoopEnd
		if test.open == OpDefineStart {
			close = OpDefineEnd
		}
		end, err := matchForward(code(test.code), test.from, test.open, close)
		if err != nil {
			t.Errorf("%s: %v", test.code, err)
			continue
		}
		if end != test.end {
			t.Errorf("%s @%d: expected %d, got %d", test.code, test.from, test.end, end)
		}
	}
}

func TestMatchBackward(t *testing.T) {
	var tests = [...]struct {
		code  string
		from  int
		start int
	}{
		{"[]", 1, 0},
		{"+[+[-]+]", 7, 1},
		{"+[+[-]+]", 5, 3},
		{"[[][]]", 5, 0},
	}
	for _, test := range tests {
		start, err := matchBackward(code(test.code), test.from, OpLoopStart, OpLoopEnd)
		if err != nil {
			t.Errorf("%s: %v", test.code, err)
			continue
		}
		if start != test.start {
			t.Errorf("%s @%d: expected %d, got %d", test.code, test.from, test.start, start)
		}
	}
}

func TestMatch_malformed(t *testing.T) {
	if _, err := matchForward(code("[[]"), 1, OpLoopStart, OpLoopEnd); errors.Cause(err) != ErrMalformed {
		t.Errorf("forward: unexpected error %v", err)
	}
	if _, err := matchBackward(code("[]]"), 2, OpLoopStart, OpLoopEnd); errors.Cause(err) != ErrMalformed {
		t.Errorf("backward: unexpected error %v", err)
	}
}

func TestCheckNesting(t *testing.T) {
	for _, s := range []string{"", "+[-]", "{[]}[{}]", "{{;}@}"} {
		if err := checkNesting(code(s)); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
	for _, s := range []string{"[", "]", "{[}]", "[}", "{]", "[[]"} {
		if err := checkNesting(code(s)); errors.Cause(err) != ErrMalformed {
			t.Errorf("%s: unexpected error %v", s, err)
		}
	}
}

func TestSlots(t *testing.T) {
	var s slots
	if _, ok := s.lookup(0); ok {
		t.Fatal("empty table has a binding")
	}
	s.bind(3, 10)
	if len(s) != 4 {
		t.Fatalf("Expected 4 slots, got %d", len(s))
	}
	for n := 0; n < 3; n++ {
		if _, ok := s.lookup(n); ok {
			t.Fatalf("slot %d bound", n)
		}
	}
	s.bind(1, 5)
	s.bind(3, 12)
	if pc, ok := s.lookup(3); !ok || pc != 12 {
		t.Fatalf("slot 3: expected 12, got %d %v", pc, ok)
	}
	if pc, ok := s.lookup(1); !ok || pc != 5 {
		t.Fatalf("slot 1: expected 5, got %d %v", pc, ok)
	}
	if len(s) != 4 {
		t.Fatal("table shrunk or grew on rebind")
	}
	if _, ok := s.lookup(255); ok {
		t.Fatal("slot 255 bound")
	}
}

func TestCallStack(t *testing.T) {
	var s callStack
	if _, ok := s.pop(); ok {
		t.Fatal("pop from empty stack")
	}
	s.push(1)
	s.push(0)
	if pc, ok := s.pop(); !ok || pc != 0 {
		t.Fatalf("Expected 0, got %d", pc)
	}
	if pc, ok := s.pop(); !ok || pc != 1 {
		t.Fatalf("Expected 1, got %d", pc)
	}
	if _, ok := s.pop(); ok {
		t.Fatal("stack not empty")
	}
}
