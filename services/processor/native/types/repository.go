// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"bytes"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
)

type ContractInfo struct {
	Name primitives.ContractName

	// base name of the emitted approval/clear artifacts
	ArtifactName string

	CounterKey        string
	Operations        []OperationInfo
	UnknownOperations UnknownOperationPolicy
}

type OperationInfo struct {
	Name   string
	Effect Effect
}

type GlobalSchema struct {
	NumUint      uint64
	NumByteSlice uint64
}

func (c *ContractInfo) Operation(name []byte) (OperationInfo, bool) {
	for _, op := range c.Operations {
		if bytes.Equal([]byte(op.Name), name) {
			return op, true
		}
	}
	return OperationInfo{}, false
}

// the counter is the only global the contracts ever declare
func (c *ContractInfo) GlobalSchema() GlobalSchema {
	return GlobalSchema{NumUint: 1}
}

func (c *ContractInfo) WithUnknownOperations(policy UnknownOperationPolicy) ContractInfo {
	res := *c
	res.UnknownOperations = policy
	return res
}
