// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/trace"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/repository"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type CreateApplicationInput struct {
	Contract primitives.ContractName
	Sender   string
	Args     [][]byte
}

type InvocationResult struct {
	ApplicationId  uint64
	Decision       types.Decision
	LifecycleEvent types.LifecycleEvent
	Operation      string

	// round of the committed changes, zero on reject
	Round uint64

	// set on reject
	Reason error
}

type ApplicationState struct {
	Application *ApplicationInfo
	Values      adapter.ApplicationState
}

func (s *Service) CreateApplication(ctx context.Context, input *CreateApplicationInput) (*InvocationResult, error) {
	contract, found := repository.Lookup(input.Contract)
	if !found {
		return nil, errors.Wrapf(ErrContractNotFound, "contract %s", input.Contract)
	}

	var result *InvocationResult
	err := s.execute(ctx, func() error {
		s.metrics.invocations.Measure(1)

		id := s.registry.nextApplicationId()
		inv := &types.Invocation{
			ApplicationId: 0,
			OnCompletion:  algoTypes.NoOpOC,
			Sender:        input.Sender,
			Args:          input.Args,
		}

		output, state, err := s.runApprovalProgram(ctx, id, &contract, inv)
		if err != nil {
			return err
		}

		result = resultFrom(id, output)
		if !output.Decision.IsAccept() {
			return nil
		}

		round, err := s.commit(state)
		if err != nil {
			return err
		}
		s.registry.register(id, contract, input.Sender, round)
		s.metrics.applications.Inc()
		result.Round = round

		s.logger.Info("application created", trace.LogFieldFrom(ctx), logfields.ApplicationId(id), logfields.Contract(contract.Name), logfields.Sender(input.Sender), logfields.Round(round))
		return nil
	})

	return result, err
}

func (s *Service) CallApplication(ctx context.Context, inv *types.Invocation) (*InvocationResult, error) {
	var result *InvocationResult
	err := s.execute(ctx, func() error {
		s.metrics.invocations.Measure(1)

		app, found := s.registry.get(inv.ApplicationId)
		if !found {
			return errors.Wrapf(ErrApplicationNotFound, "application %d", inv.ApplicationId)
		}

		var err error
		result, err = s.callApplication(ctx, app, inv)
		return err
	})

	return result, err
}

func (s *Service) ClearState(ctx context.Context, applicationId uint64, sender string) (*InvocationResult, error) {
	return s.CallApplication(ctx, &types.Invocation{
		ApplicationId: applicationId,
		OnCompletion:  algoTypes.ClearStateOC,
		Sender:        sender,
	})
}

func (s *Service) GetGlobalState(ctx context.Context, applicationId uint64) (*ApplicationState, error) {
	var result *ApplicationState
	err := s.execute(ctx, func() error {
		app, found := s.registry.get(applicationId)
		if !found {
			return errors.Wrapf(ErrApplicationNotFound, "application %d", applicationId)
		}

		values, err := s.stateStorage.GetGlobalState(applicationId)
		if err != nil {
			return errors.Wrapf(err, "could not read state of application %d", applicationId)
		}

		result = &ApplicationState{Application: app.info(), Values: values}
		return nil
	})

	return result, err
}

func (s *Service) ListApplications(ctx context.Context) ([]*ApplicationInfo, error) {
	var result []*ApplicationInfo
	err := s.execute(ctx, func() error {
		for _, app := range s.registry.all() {
			result = append(result, app.info())
		}
		return nil
	})

	return result, err
}

func (s *Service) callApplication(ctx context.Context, app *application, inv *types.Invocation) (*InvocationResult, error) {
	event := inv.LifecycleEvent()
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.ApplicationId(app.id), logfields.Sender(inv.Sender))

	switch event {
	case types.LIFECYCLE_EVENT_CLEAR_STATE:
		return s.clearState(logger, app, inv.Sender)

	case types.LIFECYCLE_EVENT_OPT_IN:
		if app.optedIn[inv.Sender] {
			return hostReject(app.id, event, ErrAlreadyOptedIn), nil
		}

	case types.LIFECYCLE_EVENT_CLOSE_OUT:
		if !app.optedIn[inv.Sender] {
			return hostReject(app.id, event, ErrNotOptedIn), nil
		}
	}

	output, state, err := s.runApprovalProgram(ctx, app.id, &app.contract, inv)
	if err != nil {
		return nil, err
	}

	result := resultFrom(app.id, output)
	if !output.Decision.IsAccept() {
		return result, nil
	}

	round, err := s.commit(state)
	if err != nil {
		return nil, err
	}
	result.Round = round

	switch event {
	case types.LIFECYCLE_EVENT_OPT_IN:
		app.optedIn[inv.Sender] = true
		logger.Info("account opted in", logfields.Round(round))

	case types.LIFECYCLE_EVENT_CLOSE_OUT:
		delete(app.optedIn, inv.Sender)
		logger.Info("account closed out", logfields.Round(round))

	case types.LIFECYCLE_EVENT_DELETE:
		if err := s.stateStorage.RemoveApplication(app.id); err != nil {
			return nil, errors.Wrapf(err, "could not remove state of application %d", app.id)
		}
		s.registry.remove(app.id)
		s.metrics.applications.Dec()
		logger.Info("application deleted", logfields.Round(round))
	}

	return result, nil
}

// the clear state program accepts unconditionally and touches no global state
func (s *Service) clearState(logger log.Logger, app *application, sender string) (*InvocationResult, error) {
	event := types.LIFECYCLE_EVENT_CLEAR_STATE
	if !app.optedIn[sender] {
		return hostReject(app.id, event, ErrNotOptedIn), nil
	}

	round, err := s.commit(newTransientState(app.id, s.stateStorage))
	if err != nil {
		return nil, err
	}
	delete(app.optedIn, sender)

	logger.Info("account cleared local state", logfields.Round(round))
	return &InvocationResult{
		ApplicationId:  app.id,
		Decision:       types.DECISION_ACCEPT,
		LifecycleEvent: event,
		Round:          round,
	}, nil
}

func (s *Service) runApprovalProgram(ctx context.Context, applicationId uint64, contract *types.ContractInfo, inv *types.Invocation) (*native.ProcessCallOutput, *transientState, error) {
	state := newTransientState(applicationId, s.stateStorage)

	output, err := s.processor.ProcessCall(ctx, &native.ProcessCallInput{
		Contract:   contract,
		Invocation: inv,
		State:      state,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "approval program of application %d failed", applicationId)
	}

	if state.readErr != nil {
		return nil, nil, errors.Wrapf(state.readErr, "could not read state of application %d", applicationId)
	}

	return output, state, nil
}

func resultFrom(applicationId uint64, output *native.ProcessCallOutput) *InvocationResult {
	return &InvocationResult{
		ApplicationId:  applicationId,
		Decision:       output.Decision,
		LifecycleEvent: output.LifecycleEvent,
		Operation:      output.Operation,
		Reason:         output.Reason,
	}
}

func hostReject(applicationId uint64, event types.LifecycleEvent, reason error) *InvocationResult {
	return &InvocationResult{
		ApplicationId:  applicationId,
		Decision:       types.DECISION_REJECT,
		LifecycleEvent: event,
		Reason:         reason,
	}
}
