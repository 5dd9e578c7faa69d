// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package fake

import (
	"context"
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/teal/adapter"
	"github.com/pkg/errors"
	"strings"
	"sync"
)

// stands in for algod: the "bytecode" is the normalized source, hashed the way algod addresses programs
type FakeCompiler struct {
	mutex    sync.Mutex
	compiled []string
}

func NewCompiler() *FakeCompiler {
	return &FakeCompiler{}
}

func (c *FakeCompiler) Compile(ctx context.Context, source string) (*adapter.CompiledProgram, error) {
	normalized := strings.TrimSpace(source)
	if !strings.HasPrefix(normalized, "#pragma version ") {
		return nil, errors.New("fake compiler requires a version pragma")
	}

	c.mutex.Lock()
	c.compiled = append(c.compiled, source)
	c.mutex.Unlock()

	bytecode := []byte(normalized)
	return &adapter.CompiledProgram{
		Hash:     crypto.AddressFromProgram(bytecode).String(),
		Bytecode: bytecode,
	}, nil
}

func (c *FakeCompiler) CompiledSources() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]string{}, c.compiled...)
}
