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

// The brainfart command line tool runs brainfart programs, either from a
// source file, from a program image, or interactively.
//
// Usage:
//
//	brainfart [flags] [file]
//
//	-config filename
//		  load configuration from filename (default $HOME/.brainfart.toml)
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump VM state to stderr upon exit
//	-i
//		  start an interactive session after running file
//	-image filename
//		  load a program image from filename instead of source
//	-list
//		  print a listing of the program and exit
//	-noraw
//		  disable raw terminal IO
//	-o filename
//		  assemble the program and save its image to filename, then exit
//	-trace
//		  log every executed instruction
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// With no file and no -image, brainfart starts an interactive session. Each
// line typed at the prompt is assembled on its own, appended to the program
// and run. Subroutines, the tape and the call stack survive from one line to
// the next. Errors are reported and the session goes on; Ctrl-C interrupts a
// running line, Ctrl-D ends the session. When a program reads input during an
// interactive session, a line is read from the terminal with a distinct
// prompt.
//
// -noraw: when running a file with stdin attached to a terminal, brainfart
// switches the terminal to raw mode so that programs see keystrokes as they
// are typed. In raw mode, Ctrl-D signals end of input. This flag disables
// this behavior.
//
// -with: files to feed to the program as input before stdin. If specified
// multiple times, files are read in order of appearance on the command line.
//
// -o, -image: program images are a compact binary encoding of a validated
// program. They can be run with -image and listed with -list.
//
// -debug: sets the log level to debug and prints a full stacktrace should the
// VM fail.
//
// The configuration file is in TOML format:
//
//	prompt = "> "
//	input_prompt = "? "
//	history_file = "~/.brainfart_history"
//	raw = true
//	log_file = ""
//	log_level = "warn"
package main
