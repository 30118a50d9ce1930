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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/daddinuz/brainfart/asm"
	"github.com/daddinuz/brainfart/vm"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	interactive bool
	noRawIO     bool
	debug       bool
	dump        bool
	trace       bool
	list        bool
	outFileName string
	imageFile   string
	configFile  string
)

// run runs i until it is done, ctx is cancelled or an error occurs. With
// -trace, instructions are single-stepped and logged.
func run(ctx context.Context, i *vm.Instance, log *slog.Logger) error {
	if !trace {
		return i.RunContext(ctx)
	}
	for !i.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		pc := i.PC()
		t := i.Tape()
		log.Debug("step",
			"pc", pc,
			"op", i.Code()[pc].String(),
			"cursor", t.Cursor(),
			"cell", t.Get(),
			"depth", len(i.Calls()))
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}

// sourceFile returns the source file named on the command line, if any.
func sourceFile(args []string) (string, error) {
	switch {
	case len(args) > 1:
		return "", errors.New("too many arguments")
	case len(args) == 1 && imageFile != "":
		return "", errors.New("cannot run both a source file and an image")
	case len(args) == 1:
		return args[0], nil
	}
	return "", nil
}

// loadProgram loads the program from the image file if set, or assembles
// fileName. An empty program is returned if there is neither.
func loadProgram(fileName string) ([]vm.Opcode, error) {
	if imageFile != "" {
		return vm.Load(imageFile)
	}
	if fileName == "" {
		return nil, nil
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return asm.Assemble(fileName, bufio.NewReader(f))
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\nError: %+v\n", err)
	if i != nil {
		if pc := i.PC(); pc < len(i.Code()) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Cursor: %v, Calls: %v\n", pc, i.Code()[pc], i.Tape().Cursor(), i.Calls())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Cursor: %v, Calls: %v\n", pc, i.Tape().Cursor(), i.Calls())
		}
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if ferr := stdout.Flush(); err == nil {
			err = ferr
		}
		if err == nil && dump && i != nil {
			err = i.Dump(os.Stderr)
		}
		atExit(i, err)
	}()

	var withFiles fileList

	flag.BoolVar(&interactive, "i", false, "start an interactive session after running file")
	flag.StringVar(&imageFile, "image", "", "load a program image from `filename` instead of source")
	flag.StringVar(&outFileName, "o", "", "assemble the program and save its image to `filename`, then exit")
	flag.BoolVar(&list, "list", false, "print a listing of the program and exit")
	flag.Var(&withFiles, "with", "Add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&trace, "trace", false, "log every executed instruction")
	flag.BoolVar(&dump, "dump", false, "dump VM state to stderr upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&configFile, "config", "", "load configuration from `filename` (default $HOME/"+configName+")")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	var fileName string
	if fileName, err = sourceFile(flag.Args()); err != nil {
		flag.Usage()
		return
	}

	var c *config
	if c, err = loadConfig(configFile); err != nil {
		return
	}
	var log *slog.Logger
	var closeLog func() error
	if log, closeLog, err = newLogger(c, os.Stderr, debug || trace); err != nil {
		return
	}
	defer closeLog()

	if fileName == "" && imageFile == "" {
		interactive = true
	}

	var code []vm.Opcode
	if code, err = loadProgram(fileName); err != nil {
		return
	}
	log.Debug("program loaded", "file", fileName, "image", imageFile, "opcodes", len(code))

	if outFileName != "" {
		if err = vm.Save(outFileName, code); err == nil {
			log.Info("image saved", "file", outFileName, "opcodes", len(code))
		}
		return
	}
	if list {
		err = asm.DisassembleAll(code, 0, stdout)
		return
	}

	// set up program input. In interactive mode, the terminal is shared
	// with the line editor.
	var lines lineReader
	var input io.Reader
	tty := term.IsTerminal(int(os.Stdin.Fd()))
	switch {
	case interactive && tty:
		var el *editLines
		if el, err = newEditLines(c.Prompt, c.HistoryFile); err != nil {
			return
		}
		lines = el
		input = &lineInput{lines: el, prompt: c.InputPrompt}
	case interactive:
		br := bufio.NewReader(os.Stdin)
		lines = plainLines{br}
		input = br
	case tty && c.Raw && !noRawIO:
		tearDown, rerr := setRawIO(os.Stdin.Fd())
		if rerr != nil {
			log.Warn("raw terminal IO unavailable", "error", rerr)
			input = bufio.NewReader(os.Stdin)
			break
		}
		defer tearDown()
		input = rawInput{os.Stdin}
	default:
		input = bufio.NewReader(os.Stdin)
	}
	if lines != nil {
		defer lines.Close()
	}

	var opts = []vm.Option{
		vm.Output(stdout),
		vm.Input(input),
	}

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *inputFile
		if f, err = openInput(withFiles[n]); err != nil {
			return
		}
		opts = append(opts, vm.Input(f))
	}

	if i, err = vm.New(code, opts...); err != nil {
		return
	}

	if len(code) > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = run(ctx, i, log)
		stop()
		if err != nil {
			return
		}
	}
	if interactive {
		if err = stdout.Flush(); err != nil {
			return
		}
		s := &session{
			i:      i,
			lines:  lines,
			prompt: c.Prompt,
			out:    stdout,
			errOut: os.Stderr,
			log:    log,
		}
		err = s.loop()
	}
	log.Debug("exit", "instructions", i.InstructionCount(), "pc", i.PC(), "halted", i.Halted())
}
