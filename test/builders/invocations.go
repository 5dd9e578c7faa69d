// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
)

// types.Invocation

type invocation struct {
	inv *types.Invocation
}

func Invocation() *invocation {
	return &invocation{
		inv: &types.Invocation{
			ApplicationId: 1,
			OnCompletion:  algoTypes.NoOpOC,
			Sender:        SenderAddress(1),
			Args:          [][]byte{},
		},
	}
}

func Creation() *invocation {
	return Invocation().WithApplicationId(0)
}

func OptIn(applicationId uint64) *invocation {
	return Invocation().WithApplicationId(applicationId).WithOnCompletion(algoTypes.OptInOC)
}

func Call(applicationId uint64, operation string, args ...string) *invocation {
	res := Invocation().WithApplicationId(applicationId).WithArgs(operation)
	return res.WithArgs(args...)
}

func (i *invocation) Build() *types.Invocation {
	return i.inv
}

func (i *invocation) WithApplicationId(applicationId uint64) *invocation {
	i.inv.ApplicationId = applicationId
	return i
}

func (i *invocation) WithOnCompletion(onCompletion algoTypes.OnCompletion) *invocation {
	i.inv.OnCompletion = onCompletion
	return i
}

func (i *invocation) WithSender(sender string) *invocation {
	i.inv.Sender = sender
	return i
}

func (i *invocation) WithArgs(args ...string) *invocation {
	for _, arg := range args {
		i.inv.Args = append(i.inv.Args, []byte(arg))
	}
	return i
}

func (i *invocation) WithRawArgs(args ...[]byte) *invocation {
	i.inv.Args = append(i.inv.Args, args...)
	return i
}

// a well formed account address, distinct per index
func SenderAddress(index byte) string {
	var address algoTypes.Address
	address[0] = index
	address[len(address)-1] = index
	return address.String()
}
