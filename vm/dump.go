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
	"strconv"

	"github.com/daddinuz/brainfart/internal/bfi"
)

// Dump writes the state of the VM to the specified io.Writer, one field per
// line. The cell under the cursor is enclosed in square brackets, bound
// subroutine slots are listed as slot:pc.
//
//	pc: 7/12
//	halted: false
//	tape: 0 [1] 3
//	slots: 1:2 3:9
//	calls: 5
func (i *Instance) Dump(w io.Writer) error {
	ew, _ := w.(*bfi.ErrWriter)
	if ew == nil {
		ew = bfi.NewErrWriter(w)
	}
	ew.WriteString("pc: ")
	ew.WriteInt(i.pc, 0)
	ew.WriteByte('/')
	ew.WriteInt(len(i.code), 0)
	ew.WriteString("\nhalted: ")
	ew.WriteString(strconv.FormatBool(i.halted))
	ew.WriteString("\ntape:")
	for k, c := range i.tape.Cells() {
		ew.WriteByte(' ')
		if k == i.tape.Cursor() {
			ew.WriteByte('[')
			ew.WriteInt(int(c), 0)
			ew.WriteByte(']')
		} else {
			ew.WriteInt(int(c), 0)
		}
	}
	ew.WriteString("\nslots:")
	for n, s := range i.slots {
		if !s.bound {
			continue
		}
		ew.WriteByte(' ')
		ew.WriteInt(n, 0)
		ew.WriteByte(':')
		ew.WriteInt(s.pc, 0)
	}
	ew.WriteString("\ncalls:")
	for _, pc := range i.calls {
		ew.WriteByte(' ')
		ew.WriteInt(pc, 0)
	}
	ew.WriteByte('\n')
	return ew.Err
}
