// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
)

type Invocation struct {
	ApplicationId uint64
	OnCompletion  algoTypes.OnCompletion
	Sender        string
	Args          [][]byte
}

func (i *Invocation) LifecycleEvent() LifecycleEvent {
	return ClassifyLifecycleEvent(i.ApplicationId, i.OnCompletion)
}

// the leading argument of an ordinary call, compared byte for byte against the dispatch table
func (i *Invocation) OperationName() ([]byte, bool) {
	if len(i.Args) == 0 {
		return nil, false
	}
	return i.Args[0], true
}

type Decision uint8

const (
	DECISION_REJECT Decision = iota
	DECISION_ACCEPT
)

func (d Decision) String() string {
	if d == DECISION_ACCEPT {
		return "ACCEPT"
	}
	return "REJECT"
}

func (d Decision) IsAccept() bool {
	return d == DECISION_ACCEPT
}
