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
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

const (
	imageMagic   = "bfart"
	imageVersion = 1
)

// ErrImage is the cause of errors returned when decoding an invalid program
// image.
var ErrImage = errors.New("invalid program image")

// image is the on-disk representation of a program. It holds code only, never
// the state of a VM.
type image struct {
	Magic   string `cbor:"1,keyasint"`
	Version int    `cbor:"2,keyasint"`
	Code    []byte `cbor:"3,keyasint"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "vm: CBOR encoding mode"))
	}
	encMode = em
}

// Encode returns the program image of code. The encoding is deterministic.
func Encode(code []Opcode) ([]byte, error) {
	b := make([]byte, len(code))
	for k, op := range code {
		b[k] = byte(op)
	}
	data, err := encMode.Marshal(&image{imageMagic, imageVersion, b})
	if err != nil {
		return nil, errors.Wrap(err, "encode failed")
	}
	return data, nil
}

// Decode returns the code stored in a program image. Since images do not go
// through the asm package, Decode rejects unknown opcodes as well as
// unbalanced or improperly nested loops and definitions.
func Decode(data []byte) ([]Opcode, error) {
	var img image
	if err := cbor.Unmarshal(data, &img); err != nil {
		return nil, errors.Wrap(ErrImage, err.Error())
	}
	if img.Magic != imageMagic {
		return nil, errors.Wrapf(ErrImage, "bad magic %q", img.Magic)
	}
	if img.Version != imageVersion {
		return nil, errors.Wrapf(ErrImage, "unsupported version %d", img.Version)
	}
	code := make([]Opcode, len(img.Code))
	for k, b := range img.Code {
		op := Opcode(b)
		if !op.Valid() {
			return nil, errors.Wrapf(ErrImage, "invalid opcode %d at %d", b, k)
		}
		code[k] = op
	}
	if err := checkNesting(code); err != nil {
		return nil, errors.Wrap(ErrImage, err.Error())
	}
	return code, nil
}

// Load loads a program image from file fileName.
func Load(fileName string) ([]Opcode, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	code, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return code, nil
}

// Save saves code to the program image file fileName. The file is removed if
// an error occurs.
func Save(fileName string, code []Opcode) (err error) {
	data, err := Encode(code)
	if err != nil {
		return err
	}
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	_, err = f.Write(data)
	return errors.Wrap(err, "write failed")
}
