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

// Package asm provides utility functions to assemble and disassemble Brainfart
// VM code.
//
// Source is read rune by rune. The following runes map to opcodes, all other
// runes are comments:
//
//	rune	opcode
//	----	-------------
//	<	OpMoveLeft
//	>	OpMoveRight
//	-	OpDecrement
//	+	OpIncrement
//	,	OpReadByte
//	.	OpWriteByte
//	[	OpLoopStart
//	]	OpLoopEnd
//	{	OpDefineStart
//	}	OpDefineEnd
//	;	OpReturn
//	@	OpCall
//
// Assemble guarantees that the code it returns is well formed: loops and
// definitions are balanced and properly nested within each other (so that
// "{[}]" is rejected), and ';' only appears inside a definition. The following
// errors are reported, positioned at the offending rune:
//
//	unmatched ']'
//	unmatched '}'
//	unclosed '['
//	unclosed '{'
//	';' outside of a definition
package asm
