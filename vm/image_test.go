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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bfi")
	c := code("+{>+<;}[-]@,.")
	if err := Save(fn, c); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(fn)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(loaded) != len(c) {
		t.Fatalf("Expected %v, got %v", c, loaded)
	}
	for k := range c {
		if loaded[k] != c[k] {
			t.Fatalf("Load error at %d: expected %v, got %v", k, c[k], loaded[k])
		}
	}
}

func TestEncode_deterministic(t *testing.T) {
	a, err := Encode(code("+[>+<-]"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Encode(code("+[>+<-]"))
	if !bytes.Equal(a, b) {
		t.Fatal("encoding is not deterministic")
	}
}

func TestDecode_errors(t *testing.T) {
	enc := func(img *image) []byte {
		data, err := encMode.Marshal(img)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	var tests = [...]struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0xff, 0x00, 0x13}},
		{"magic", enc(&image{"nope", imageVersion, nil})},
		{"version", enc(&image{imageMagic, 42, nil})},
		{"opcode", enc(&image{imageMagic, imageVersion, []byte{byte(OpIncrement), 99}})},
		{"unbalanced", enc(&image{imageMagic, imageVersion, []byte{byte(OpLoopStart)}})},
		{"crossed", enc(&image{imageMagic, imageVersion, []byte{
			byte(OpDefineStart), byte(OpLoopStart), byte(OpDefineEnd), byte(OpLoopEnd)}})},
	}
	for _, test := range tests {
		if _, err := Decode(test.data); errors.Cause(err) != ErrImage {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("Unexpected error: %v", err)
	}
}
