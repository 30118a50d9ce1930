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

// Package vm implements the Brainfart VM.
//
// Brainfart extends the classic eight-instruction tape language with
// subroutines:
//
//	op	name		description
//	--	----		-----------------------------------------------------------------
//	<	MoveLeft	move the cursor left, growing the tape at the front if needed
//	>	MoveRight	move the cursor right, growing the tape at the back if needed
//	-	Decrement	decrement the current cell (wraps from 0 to 255)
//	+	Increment	increment the current cell (wraps from 255 to 0)
//	,	ReadByte	read a byte into the current cell, 0 at end of input
//	.	WriteByte	write the current cell
//	[	LoopStart	if the current cell is 0, jump past the matching ]
//	]	LoopEnd		if the current cell is not 0, jump back past the matching [
//	{	DefineStart	bind slot N to the following code, where N is the current
//			cell value, clear the cell and skip past the matching }
//	}	DefineEnd	return to the caller
//	;	Return		return to the caller (early return)
//	@	Call		call slot N, where N is the current cell value, and clear
//			the cell. Calling an unbound slot does nothing.
//
// Returning while the call stack is empty halts the VM. This is a normal
// termination condition.
//
// Branch targets are not precomputed: brackets are matched by scanning the
// code when a branch is taken. As a consequence, the VM expects well formed
// code, as produced by the asm package or loaded from a program image.
//
// A VM Instance persists its state across calls to Run and Extend, which makes
// it suitable for interactive sessions: code can be appended and run
// incrementally while keeping the tape, subroutine bindings and call stack.
package vm
