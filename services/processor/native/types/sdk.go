// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import "github.com/pkg/errors"

// global state of the application being executed, writes are transient until the host commits them
type StateSdk interface {
	// read
	ReadUint64ByKey(key string) (uint64, bool)

	// write
	WriteUint64ByKey(key string, value uint64)
}

var (
	ErrNoOperation             = errors.New("ordinary call carries no operation name")
	ErrUnknownOperation        = errors.New("operation is not in the dispatch table")
	ErrUnmatchedLifecycleEvent = errors.New("lifecycle event has no branch in the approval program")
	ErrCounterOverflow         = errors.New("counter increment overflows uint64")
)
