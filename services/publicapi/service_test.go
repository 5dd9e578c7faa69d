// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"bytes"
	"context"
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/repository/BloodDonation"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
	"github.com/orbs-network/orbs-donation-ledger/test"
	"github.com/orbs-network/orbs-donation-ledger/test/builders"
	"github.com/orbs-network/orbs-donation-ledger/test/with"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	vmMock  *VirtualMachineMock
	service *Service
}

func newHarness(parent *with.LoggingHarness) *harness {
	vmMock := &VirtualMachineMock{}
	return &harness{
		vmMock:  vmMock,
		service: NewPublicApi(vmMock, parent.Logger, metric.NewRegistry()),
	}
}

func (h *harness) verifyMocks(t *testing.T) {
	ok, err := h.vmMock.Verify()
	require.True(t, ok, "virtual machine mock called incorrectly")
	require.NoError(t, err)
}

func TestCallApplication_PrependsOperationToArgs(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)
			sender := builders.SenderAddress(3)

			h.vmMock.When("CallApplication", mock.Any, mock.AnyIf("no-op call with operation first", func(i interface{}) bool {
				inv, ok := i.(*types.Invocation)
				return ok &&
					inv.ApplicationId == 4 &&
					inv.OnCompletion == algoTypes.NoOpOC &&
					inv.Sender == sender &&
					len(inv.Args) == 2 &&
					bytes.Equal(inv.Args[0], []byte("registerDonor")) &&
					bytes.Equal(inv.Args[1], []byte("alice"))
			})).Return(&virtualmachine.InvocationResult{
				ApplicationId:  4,
				Decision:       types.DECISION_ACCEPT,
				LifecycleEvent: types.LIFECYCLE_EVENT_ORDINARY_CALL,
				Operation:      "registerDonor",
				Round:          9,
			}, nil).Times(1)

			output, err := h.service.CallApplication(ctx, &CallApplicationInput{ApplicationId: 4, Sender: sender, Operation: "registerDonor", Args: []string{"alice"}})
			require.NoError(t, err)

			require.Equal(t, &InvocationOutput{
				ApplicationId: 4,
				Decision:      "ACCEPT",
				Lifecycle:     "LIFECYCLE_EVENT_ORDINARY_CALL",
				Operation:     "registerDonor",
				Round:         9,
			}, output)
			h.verifyMocks(t)
		})
	})
}

func TestCallApplication_RejectCarriesReason(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)

			h.vmMock.When("CallApplication", mock.Any, mock.Any).Return(&virtualmachine.InvocationResult{
				ApplicationId:  4,
				Decision:       types.DECISION_REJECT,
				LifecycleEvent: types.LIFECYCLE_EVENT_ORDINARY_CALL,
				Operation:      "unknown",
				Reason:         errors.Wrap(types.ErrUnknownOperation, "operation 'unknown'"),
			}, nil).Times(1)

			output, err := h.service.CallApplication(ctx, &CallApplicationInput{ApplicationId: 4, Sender: builders.SenderAddress(3), Operation: "unknown"})
			require.NoError(t, err, "a reject is a result, not an error")
			require.Equal(t, "REJECT", output.Decision)
			require.Contains(t, output.Reason, "not in the dispatch table")
			require.EqualValues(t, 1, h.service.metrics.totalRejected.IntValue())
		})
	})
}

func TestCallApplication_ValidatesInputBeforeReachingTheVirtualMachine(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)
			h.vmMock.When("CallApplication", mock.Any, mock.Any).Times(0)

			_, err := h.service.CallApplication(ctx, &CallApplicationInput{ApplicationId: 0, Sender: builders.SenderAddress(1), Operation: "recordDonation"})
			require.Equal(t, ErrInvalidInput, errors.Cause(err))

			_, err = h.service.CallApplication(ctx, &CallApplicationInput{ApplicationId: 1, Sender: "not-an-address", Operation: "recordDonation"})
			require.Equal(t, ErrInvalidInput, errors.Cause(err))

			_, err = h.service.CallApplication(ctx, nil)
			require.Equal(t, ErrInvalidInput, errors.Cause(err))

			_, err = h.service.OptIn(ctx, &AccountInput{ApplicationId: 1})
			require.Equal(t, ErrInvalidInput, errors.Cause(err))

			require.EqualValues(t, 4, h.service.metrics.totalInvalidRequest.IntValue())
			h.verifyMocks(t)
		})
	})
}

func TestOptInAndCloseOut_UseTheirOnCompletion(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)
			sender := builders.SenderAddress(3)

			for _, oc := range []algoTypes.OnCompletion{algoTypes.OptInOC, algoTypes.CloseOutOC} {
				expected := oc
				h.vmMock.When("CallApplication", mock.Any, mock.AnyIf("on-completion matches", func(i interface{}) bool {
					inv, ok := i.(*types.Invocation)
					return ok && inv.OnCompletion == expected && len(inv.Args) == 0
				})).Return(&virtualmachine.InvocationResult{ApplicationId: 2, Decision: types.DECISION_ACCEPT}, nil).Times(1)
			}

			_, err := h.service.OptIn(ctx, &AccountInput{ApplicationId: 2, Sender: sender})
			require.NoError(t, err)
			_, err = h.service.CloseOut(ctx, &AccountInput{ApplicationId: 2, Sender: sender})
			require.NoError(t, err)

			h.verifyMocks(t)
		})
	})
}

func TestCreateApplication_PassesContractAndSender(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)
			sender := builders.SenderAddress(5)

			h.vmMock.When("CreateApplication", mock.Any, mock.AnyIf("contract and sender match", func(i interface{}) bool {
				input, ok := i.(*virtualmachine.CreateApplicationInput)
				return ok && input.Contract == blooddonation.CONTRACT.Name && input.Sender == sender && len(input.Args) == 0
			})).Return(&virtualmachine.InvocationResult{ApplicationId: 1, Decision: types.DECISION_ACCEPT, LifecycleEvent: types.LIFECYCLE_EVENT_CREATION, Round: 1}, nil).Times(1)

			output, err := h.service.CreateApplication(ctx, &CreateApplicationInput{Contract: "BloodDonation", Sender: sender})
			require.NoError(t, err)
			require.EqualValues(t, 1, output.ApplicationId)
			require.Equal(t, "LIFECYCLE_EVENT_CREATION", output.Lifecycle)

			_, err = h.service.CreateApplication(ctx, &CreateApplicationInput{Sender: sender})
			require.Equal(t, ErrInvalidInput, errors.Cause(err))
			h.verifyMocks(t)
		})
	})
}

func TestGetApplicationState_MapsGlobalValues(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)

			h.vmMock.When("GetGlobalState", mock.Any, uint64(1)).Return(&virtualmachine.ApplicationState{
				Application: &virtualmachine.ApplicationInfo{Id: 1, Address: "ADDR", Contract: blooddonation.CONTRACT, Creator: "C", Round: 1, OptedIn: []string{}},
				Values: adapter.ApplicationState{
					"TotalDonations": adapter.UintValue(3),
					"note":           adapter.BytesValue([]byte("hi")),
				},
			}, nil).Times(1)

			output, err := h.service.GetApplicationState(ctx, 1)
			require.NoError(t, err)

			require.Equal(t, "BloodDonation", output.Contract)
			require.EqualValues(t, 3, *output.GlobalState["TotalDonations"].Uint)
			require.Nil(t, output.GlobalState["TotalDonations"].Bytes)
			require.Equal(t, "hi", *output.GlobalState["note"].Bytes)
			h.verifyMocks(t)
		})
	})
}

func TestGetApplicationState_PassesVirtualMachineErrorsThrough(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContext(func(ctx context.Context) {
			h := newHarness(parent)
			h.vmMock.When("GetGlobalState", mock.Any, uint64(8)).Return(nil, errors.Wrap(virtualmachine.ErrApplicationNotFound, "application 8")).Times(1)

			_, err := h.service.GetApplicationState(ctx, 8)
			require.Equal(t, virtualmachine.ErrApplicationNotFound, errors.Cause(err))
		})
	})
}
