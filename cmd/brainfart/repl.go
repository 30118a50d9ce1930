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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/daddinuz/brainfart/asm"
	"github.com/daddinuz/brainfart/vm"
)

// session is an interactive session: lines are assembled one at a time,
// appended to the program and run on the same VM.
type session struct {
	i      *vm.Instance
	lines  lineReader
	prompt string
	out    *bufio.Writer
	errOut io.Writer
	log    *slog.Logger
	n      int

	// runContext returns the context a line runs under. It defaults to
	// one cancelled by an interrupt signal.
	runContext func() (context.Context, context.CancelFunc)
}

// loop reads and runs lines until the line reader reports EOF.
func (s *session) loop() error {
	for {
		line, err := s.lines.ReadLine(s.prompt)
		switch {
		case err == errInterrupted:
			continue
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.n++
		if err = s.eval(line); err != nil {
			s.report(err)
		}
	}
}

// eval assembles and runs a single line. The VM keeps its state on error,
// except when interrupted: the interrupted code is then abandoned so that the
// next line does not resume it.
func (s *session) eval(line string) error {
	code, err := asm.Assemble("#"+strconv.Itoa(s.n), strings.NewReader(line))
	if err != nil {
		return err
	}
	s.i.Extend(code...)
	s.log.Debug("extend", "line", s.n, "opcodes", len(code), "size", len(s.i.Code()))

	newContext := s.runContext
	if newContext == nil {
		newContext = func() (context.Context, context.CancelFunc) {
			return signal.NotifyContext(context.Background(), os.Interrupt)
		}
	}
	ctx, stop := newContext()
	defer stop()
	err = run(ctx, s.i, s.log)
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	if err != nil && ctx.Err() != nil {
		s.i.Abort()
		s.log.Debug("abort", "line", s.n, "pc", s.i.PC())
		return errInterrupted
	}
	return err
}

func (s *session) report(err error) {
	if err == errInterrupted {
		fmt.Fprintf(s.errOut, "\nError: %v\n", errInterrupted)
		return
	}
	if el, ok := err.(asm.ErrAsm); ok {
		for _, e := range el {
			fmt.Fprintf(s.errOut, "Error: %s\n", e.Error())
		}
		return
	}
	if debug {
		fmt.Fprintf(s.errOut, "Error: %+v\n", err)
		return
	}
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}
