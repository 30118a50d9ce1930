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

// Package bfi holds helpers shared by the brainfart packages.
package bfi

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter writes text such as listings and state dumps. The first write
// error is kept in Err: later writes do nothing and return it, so that callers
// check for errors once, when done.
type ErrWriter struct {
	w   io.Writer
	b   [1]byte
	num []byte
	Err error
}

// NewErrWriter returns a new ErrWriter writing to w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes s.
func (w *ErrWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

// WriteByte writes c.
func (w *ErrWriter) WriteByte(c byte) error {
	w.b[0] = c
	_, err := w.Write(w.b[:])
	return err
}

// WriteInt writes v in decimal, right aligned in a field of width characters.
func (w *ErrWriter) WriteInt(v int, width int) error {
	w.num = strconv.AppendInt(w.num[:0], int64(v), 10)
	for n := len(w.num); n < width; n++ {
		w.WriteByte(' ')
	}
	_, err := w.Write(w.num)
	return err
}
