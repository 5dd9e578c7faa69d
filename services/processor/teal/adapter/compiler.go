// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
)

type CompiledProgram struct {
	// the program address, as reported by the compiler
	Hash     string
	Bytecode []byte
}

type Compiler interface {
	Compile(ctx context.Context, source string) (*CompiledProgram, error)
}
