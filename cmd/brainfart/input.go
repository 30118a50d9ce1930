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
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

const eot = 4 // Ctrl-D

// rawInput reads from a terminal in raw mode, where Ctrl-D is not turned into
// end of file by the tty driver.
type rawInput struct {
	r io.Reader
}

func (r rawInput) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	for k := 0; k < n; k++ {
		if p[k] == eot {
			if k == 0 {
				return 0, io.EOF
			}
			return k, nil
		}
	}
	return n, err
}

// inputFile is a buffered input file. The VM closes it once exhausted.
type inputFile struct {
	*bufio.Reader
	f *os.File
}

func openInput(name string) (*inputFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &inputFile{bufio.NewReader(f), f}, nil
}

func (r *inputFile) Close() error { return r.f.Close() }

// lineReader reads lines for the interactive session.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

var errInterrupted = errors.New("interrupted")

// editLines reads lines from a terminal with line editing and history.
type editLines struct {
	rl *readline.Instance
}

func newEditLines(prompt, historyFile string) (*editLines, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "\n",
	})
	if err != nil {
		return nil, errors.Wrap(err, "readline")
	}
	return &editLines{rl}, nil
}

func (l *editLines) ReadLine(prompt string) (string, error) {
	l.rl.SetPrompt(prompt)
	s, err := l.rl.Readline()
	if err == readline.ErrInterrupt {
		return s, errInterrupted
	}
	return s, err
}

func (l *editLines) Close() error { return l.rl.Close() }

// plainLines reads lines from a non-interactive reader. Prompts are not
// printed.
type plainLines struct {
	r *bufio.Reader
}

func (l plainLines) ReadLine(string) (string, error) {
	s, err := l.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	return strings.TrimRight(s, "\r\n"), err
}

func (l plainLines) Close() error { return nil }

// lineInput serves program input one line at a time, read from a lineReader
// with its own prompt. Each line is terminated by a newline.
type lineInput struct {
	lines  lineReader
	prompt string
	buf    []byte
}

func (r *lineInput) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		s, err := r.lines.ReadLine(r.prompt)
		if err != nil {
			return 0, err
		}
		r.buf = append([]byte(s), '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}
