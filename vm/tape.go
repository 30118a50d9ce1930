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

const minTapeSize = 32

// Tape is a sequence of byte cells, unbounded in both directions, with a
// cursor selecting the current cell.
//
// Cells are kept in a buffer with free room on both sides, so that growing the
// tape at either end is amortized O(1). The tape never shrinks.
type Tape struct {
	buf  []byte
	head int // index in buf of the leftmost cell
	n    int // number of cells
	pos  int // cursor, relative to head
}

// NewTape returns a tape holding a single zero cell under the cursor.
func NewTape() *Tape {
	return &Tape{
		buf:  make([]byte, minTapeSize),
		head: minTapeSize / 2,
		n:    1,
	}
}

// MoveLeft moves the cursor one cell to the left. At the leftmost cell, a new
// zero cell is inserted in front of the tape and the cursor stays at 0.
func (t *Tape) MoveLeft() {
	if t.pos > 0 {
		t.pos--
		return
	}
	if t.head == 0 {
		t.grow()
	}
	t.head--
	t.buf[t.head] = 0
	t.n++
}

// MoveRight moves the cursor one cell to the right, appending a zero cell if
// it moves past the rightmost one.
func (t *Tape) MoveRight() {
	t.pos++
	if t.pos < t.n {
		return
	}
	if t.head+t.n == len(t.buf) {
		t.grow()
	}
	t.buf[t.head+t.n] = 0
	t.n++
}

// grow doubles the buffer and centers the cells in it.
func (t *Tape) grow() {
	b := make([]byte, 2*len(t.buf))
	h := (len(b) - t.n) / 2
	copy(b[h:], t.buf[t.head:t.head+t.n])
	t.buf, t.head = b, h
}

// Get returns the value of the current cell.
func (t *Tape) Get() byte { return t.buf[t.head+t.pos] }

// Set sets the value of the current cell.
func (t *Tape) Set(v byte) { t.buf[t.head+t.pos] = v }

// Inc increments the current cell, wrapping from 255 to 0.
func (t *Tape) Inc() { t.buf[t.head+t.pos]++ }

// Dec decrements the current cell, wrapping from 0 to 255.
func (t *Tape) Dec() { t.buf[t.head+t.pos]-- }

// Cursor returns the index of the current cell.
func (t *Tape) Cursor() int { return t.pos }

// Len returns the number of cells visited so far.
func (t *Tape) Len() int { return t.n }

// Cells returns a copy of the tape contents, leftmost cell first.
func (t *Tape) Cells() []byte {
	c := make([]byte, t.n)
	copy(c, t.buf[t.head:t.head+t.n])
	return c
}
