// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
)

type VirtualMachineMock struct {
	mock.Mock
}

func (m *VirtualMachineMock) CreateApplication(ctx context.Context, input *virtualmachine.CreateApplicationInput) (*virtualmachine.InvocationResult, error) {
	ret := m.Called(ctx, input)
	if out := ret.Get(0); out != nil {
		return out.(*virtualmachine.InvocationResult), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *VirtualMachineMock) CallApplication(ctx context.Context, inv *types.Invocation) (*virtualmachine.InvocationResult, error) {
	ret := m.Called(ctx, inv)
	if out := ret.Get(0); out != nil {
		return out.(*virtualmachine.InvocationResult), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *VirtualMachineMock) ClearState(ctx context.Context, applicationId uint64, sender string) (*virtualmachine.InvocationResult, error) {
	ret := m.Called(ctx, applicationId, sender)
	if out := ret.Get(0); out != nil {
		return out.(*virtualmachine.InvocationResult), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *VirtualMachineMock) GetGlobalState(ctx context.Context, applicationId uint64) (*virtualmachine.ApplicationState, error) {
	ret := m.Called(ctx, applicationId)
	if out := ret.Get(0); out != nil {
		return out.(*virtualmachine.ApplicationState), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}

func (m *VirtualMachineMock) ListApplications(ctx context.Context) ([]*virtualmachine.ApplicationInfo, error) {
	ret := m.Called(ctx)
	if out := ret.Get(0); out != nil {
		return out.([]*virtualmachine.ApplicationInfo), ret.Error(1)
	} else {
		return nil, ret.Error(1)
	}
}
