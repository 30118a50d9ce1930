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

// slot is a subroutine table entry. The zero value is an unbound slot.
type slot struct {
	pc    int
	bound bool
}

// slots maps slot numbers to the code position of subroutine bodies.
type slots []slot

// bind binds slot n to pc, growing the table as needed. Rebinding a slot
// overwrites the previous binding.
func (s *slots) bind(n int, pc int) {
	if n >= len(*s) {
		t := make(slots, n+1)
		copy(t, *s)
		*s = t
	}
	(*s)[n] = slot{pc, true}
}

// lookup returns the code position bound to slot n.
func (s slots) lookup(n int) (pc int, ok bool) {
	if n >= len(s) || !s[n].bound {
		return 0, false
	}
	return s[n].pc, true
}

// callStack holds the return addresses of active subroutine calls.
type callStack []int

func (s *callStack) push(pc int) {
	*s = append(*s, pc)
}

// pop returns the most recent return address. ok is false if the stack is
// empty, i.e. there is no caller to return to.
func (s *callStack) pop() (pc int, ok bool) {
	l := len(*s)
	if l == 0 {
		return 0, false
	}
	pc = (*s)[l-1]
	*s = (*s)[:l-1]
	return pc, true
}
