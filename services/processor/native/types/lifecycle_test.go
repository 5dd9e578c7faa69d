// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestClassifyLifecycleEvent_ApplicationIdZeroIsAlwaysCreation(t *testing.T) {
	for _, oc := range []algoTypes.OnCompletion{algoTypes.NoOpOC, algoTypes.OptInOC, algoTypes.DeleteApplicationOC} {
		require.Equal(t, LIFECYCLE_EVENT_CREATION, ClassifyLifecycleEvent(0, oc), "on-completion %d", oc)
	}
}

func TestClassifyLifecycleEvent_MapsOnCompletion(t *testing.T) {
	expected := map[algoTypes.OnCompletion]LifecycleEvent{
		algoTypes.NoOpOC:              LIFECYCLE_EVENT_ORDINARY_CALL,
		algoTypes.OptInOC:             LIFECYCLE_EVENT_OPT_IN,
		algoTypes.CloseOutOC:          LIFECYCLE_EVENT_CLOSE_OUT,
		algoTypes.ClearStateOC:        LIFECYCLE_EVENT_CLEAR_STATE,
		algoTypes.UpdateApplicationOC: LIFECYCLE_EVENT_UPDATE,
		algoTypes.DeleteApplicationOC: LIFECYCLE_EVENT_DELETE,
		algoTypes.OnCompletion(77):    LIFECYCLE_EVENT_UNKNOWN,
	}
	for oc, event := range expected {
		require.Equal(t, event, ClassifyLifecycleEvent(12, oc), "on-completion %d", oc)
	}
}

func TestLifecycleEvent_OnlyCreationOptInAndOrdinaryCallAreGated(t *testing.T) {
	require.True(t, LIFECYCLE_EVENT_CREATION.IsGated())
	require.True(t, LIFECYCLE_EVENT_OPT_IN.IsGated())
	require.True(t, LIFECYCLE_EVENT_ORDINARY_CALL.IsGated())
	require.False(t, LIFECYCLE_EVENT_CLOSE_OUT.IsGated())
	require.False(t, LIFECYCLE_EVENT_UPDATE.IsGated())
	require.False(t, LIFECYCLE_EVENT_DELETE.IsGated())
	require.False(t, LIFECYCLE_EVENT_UNKNOWN.IsGated())
}

func TestInvocation_OperationName(t *testing.T) {
	inv := &Invocation{ApplicationId: 1}
	_, found := inv.OperationName()
	require.False(t, found, "no args means no operation")

	inv.Args = [][]byte{[]byte("recordDonation"), []byte("extra")}
	name, found := inv.OperationName()
	require.True(t, found)
	require.Equal(t, []byte("recordDonation"), name)
}

func TestParseUnknownOperationPolicy(t *testing.T) {
	p, err := ParseUnknownOperationPolicy("Accept ")
	require.NoError(t, err)
	require.Equal(t, UNKNOWN_OPERATION_ACCEPT, p)

	p, err = ParseUnknownOperationPolicy("reject")
	require.NoError(t, err)
	require.Equal(t, UNKNOWN_OPERATION_REJECT, p)

	_, err = ParseUnknownOperationPolicy("maybe")
	require.Error(t, err)
}

func TestContractInfo_OperationMatchesExactBytes(t *testing.T) {
	c := &ContractInfo{Operations: []OperationInfo{{Name: "recordDonation", Effect: EFFECT_INCREMENT_COUNTER}}}

	op, found := c.Operation([]byte("recordDonation"))
	require.True(t, found)
	require.Equal(t, EFFECT_INCREMENT_COUNTER, op.Effect)

	_, found = c.Operation([]byte("recorddonation"))
	require.False(t, found, "match must be case sensitive")
	_, found = c.Operation([]byte("recordDonation\x00"))
	require.False(t, found, "match must be exact")
}
