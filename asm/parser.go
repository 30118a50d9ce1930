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
	"text/scanner"

	"github.com/daddinuz/brainfart/vm"
)

// maximum number of errors reported by a single call to Assemble.
const maxErrors = 10

// ErrEntry is a single positioned assembly error.
type ErrEntry struct {
	Pos scanner.Position
	Msg string
}

func (e *ErrEntry) Error() string {
	if !e.Pos.IsValid() {
		return e.Msg
	}
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error list returned by Assemble.
type ErrAsm []ErrEntry

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[k].Error())
	}
	return b.String()
}

type opener struct {
	op  vm.Opcode
	pos scanner.Position
}

type parser struct {
	code []vm.Opcode
	s    scanner.Scanner
	open []opener
	errs ErrAsm
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrEntry{pos, msg})
	}
}

// inDefinition reports whether the parser is inside a subroutine definition.
func (p *parser) inDefinition() bool {
	for _, o := range p.open {
		if o.op == vm.OpDefineStart {
			return true
		}
	}
	return false
}

// srcReader records the first read error of the source. text/scanner reports
// it mixed with encoding errors, which do not matter here.
type srcReader struct {
	r   io.Reader
	err error
}

func (r *srcReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

// Parse does the parsing. Every rune that is not an opcode is a comment,
// including NUL bytes and invalid UTF-8 sequences.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Opcode, error) {
	src := &srcReader{r: r}
	p.s.Init(src)
	p.s.Mode = 0
	p.s.Whitespace = 0
	p.s.Filename = name
	// encoding errors from the scanner only ever concern comments.
	p.s.Error = func(*scanner.Scanner, string) {}

	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		op, ok := vm.OpcodeFor(tok)
		if !ok {
			continue
		}
		pos := p.s.Position
		switch op {
		case vm.OpLoopStart, vm.OpDefineStart:
			p.open = append(p.open, opener{op, pos})
		case vm.OpLoopEnd, vm.OpDefineEnd:
			want := vm.OpLoopStart
			if op == vm.OpDefineEnd {
				want = vm.OpDefineStart
			}
			l := len(p.open)
			if l == 0 || p.open[l-1].op != want {
				p.error(pos, "unmatched '"+op.String()+"'")
				continue
			}
			p.open = p.open[:l-1]
		case vm.OpReturn:
			if !p.inDefinition() {
				p.error(pos, "';' outside of a definition")
				continue
			}
		}
		p.code = append(p.code, op)
	}

	if src.err != nil {
		p.error(p.s.Pos(), src.err.Error())
	}
	for _, o := range p.open {
		p.error(o.pos, "unclosed '"+o.op.String()+"'")
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return p.code, nil
}
