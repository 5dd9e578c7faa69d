// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
)

type LifecycleEvent uint16

const (
	LIFECYCLE_EVENT_UNKNOWN LifecycleEvent = iota
	LIFECYCLE_EVENT_CREATION
	LIFECYCLE_EVENT_OPT_IN
	LIFECYCLE_EVENT_ORDINARY_CALL
	LIFECYCLE_EVENT_CLOSE_OUT
	LIFECYCLE_EVENT_CLEAR_STATE
	LIFECYCLE_EVENT_UPDATE
	LIFECYCLE_EVENT_DELETE
)

func (e LifecycleEvent) String() string {
	switch e {
	case LIFECYCLE_EVENT_CREATION:
		return "LIFECYCLE_EVENT_CREATION"
	case LIFECYCLE_EVENT_OPT_IN:
		return "LIFECYCLE_EVENT_OPT_IN"
	case LIFECYCLE_EVENT_ORDINARY_CALL:
		return "LIFECYCLE_EVENT_ORDINARY_CALL"
	case LIFECYCLE_EVENT_CLOSE_OUT:
		return "LIFECYCLE_EVENT_CLOSE_OUT"
	case LIFECYCLE_EVENT_CLEAR_STATE:
		return "LIFECYCLE_EVENT_CLEAR_STATE"
	case LIFECYCLE_EVENT_UPDATE:
		return "LIFECYCLE_EVENT_UPDATE"
	case LIFECYCLE_EVENT_DELETE:
		return "LIFECYCLE_EVENT_DELETE"
	}
	return "LIFECYCLE_EVENT_UNKNOWN"
}

// the approval program only has branches for these, everything else is rejected by the host
func (e LifecycleEvent) IsGated() bool {
	return e == LIFECYCLE_EVENT_CREATION || e == LIFECYCLE_EVENT_OPT_IN || e == LIFECYCLE_EVENT_ORDINARY_CALL
}

// application id 0 means the application does not exist yet, which takes precedence over the on-completion
func ClassifyLifecycleEvent(applicationId uint64, onCompletion algoTypes.OnCompletion) LifecycleEvent {
	if applicationId == 0 {
		return LIFECYCLE_EVENT_CREATION
	}

	switch onCompletion {
	case algoTypes.NoOpOC:
		return LIFECYCLE_EVENT_ORDINARY_CALL
	case algoTypes.OptInOC:
		return LIFECYCLE_EVENT_OPT_IN
	case algoTypes.CloseOutOC:
		return LIFECYCLE_EVENT_CLOSE_OUT
	case algoTypes.ClearStateOC:
		return LIFECYCLE_EVENT_CLEAR_STATE
	case algoTypes.UpdateApplicationOC:
		return LIFECYCLE_EVENT_UPDATE
	case algoTypes.DeleteApplicationOC:
		return LIFECYCLE_EVENT_DELETE
	}
	return LIFECYCLE_EVENT_UNKNOWN
}
