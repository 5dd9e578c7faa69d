// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"github.com/orbs-network/go-mock"
)

type CompilerMock struct {
	mock.Mock
}

func (c *CompilerMock) Compile(ctx context.Context, source string) (*CompiledProgram, error) {
	ret := c.Called(ctx, source)
	if out := ret.Get(0); out != nil {
		return out.(*CompiledProgram), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}
