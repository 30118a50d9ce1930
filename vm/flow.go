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

import "github.com/pkg/errors"

// ErrMalformed is the cause of errors returned when a bracket scan runs off
// the program. Well-formed programs, as produced by the asm package, never
// trigger it.
var ErrMalformed = errors.New("malformed control flow")

// matchForward scans code forward from position from, which must be right
// after an open opcode, and returns the position of the matching close opcode.
func matchForward(code []Opcode, from int, open, close Opcode) (int, error) {
	depth := 1
	for p := from; p < len(code); p++ {
		switch code[p] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return p, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrMalformed, "no %v matching %v at %d", close, open, from-1)
}

// matchBackward scans code backward from position from, which must be the
// position of a close opcode, and returns the position of the matching open
// opcode.
func matchBackward(code []Opcode, from int, open, close Opcode) (int, error) {
	depth := 1
	for p := from - 1; p >= 0; p-- {
		switch code[p] {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return p, nil
			}
		}
	}
	return 0, errors.Wrapf(ErrMalformed, "no %v matching %v at %d", open, close, from)
}

// checkNesting verifies that loops and definitions in code are balanced and
// properly nested within each other.
func checkNesting(code []Opcode) error {
	var open []int
	for p, op := range code {
		switch op {
		case OpLoopStart, OpDefineStart:
			open = append(open, p)
		case OpLoopEnd, OpDefineEnd:
			want := OpLoopStart
			if op == OpDefineEnd {
				want = OpDefineStart
			}
			if len(open) == 0 || code[open[len(open)-1]] != want {
				return errors.Wrapf(ErrMalformed, "unmatched %v at %d", op, p)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		p := open[len(open)-1]
		return errors.Wrapf(ErrMalformed, "unclosed %v at %d", code[p], p)
	}
	return nil
}
