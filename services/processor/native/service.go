// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/trace"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"math"
	"strings"
	"time"
)

var LogTag = log.Service("processor-native")

type ProcessCallInput struct {
	Contract   *types.ContractInfo
	Invocation *types.Invocation
	State      types.StateSdk
}

type ProcessCallOutput struct {
	Decision       types.Decision
	LifecycleEvent types.LifecycleEvent
	Operation      string
	Effect         types.Effect

	// set on reject
	Reason error
}

type Processor interface {
	ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error)
}

type service struct {
	logger log.Logger
	config config.NativeProcessorConfig

	unknownOperationsOverride *types.UnknownOperationPolicy

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
	accepted        *metric.Gauge
	rejected        *metric.Gauge
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		processCallTime: m.NewLatency("Processor.Native.ProcessCallTime.Millis", 10*time.Second),
		accepted:        m.NewGauge("Processor.Native.Accepted.Count"),
		rejected:        m.NewGauge("Processor.Native.Rejected.Count"),
	}
}

func NewNativeProcessor(config config.NativeProcessorConfig, parentLogger log.Logger, metricFactory metric.Factory) *service {
	logger := parentLogger.WithTags(LogTag)

	s := &service{
		config:  config,
		logger:  logger,
		metrics: getMetrics(metricFactory),
	}

	if configured := strings.TrimSpace(config.ProcessorUnknownOperationPolicy()); configured != "" {
		policy, err := types.ParseUnknownOperationPolicy(configured)
		if err != nil {
			logger.Error("invalid unknown operation policy", log.Error(err))
			panic(errors.Wrap(err, "invalid unknown operation policy"))
		}
		s.unknownOperationsOverride = &policy
		logger.Info("unknown operation policy overridden for all contracts", log.Stringable("policy", policy))
	}

	return s
}

func (s *service) ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error) {
	if input == nil || input.Contract == nil || input.Invocation == nil || input.State == nil {
		return nil, errors.New("process call input must carry a contract, an invocation and a state")
	}

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Contract(input.Contract.Name), logfields.ApplicationId(input.Invocation.ApplicationId))

	start := time.Now()
	defer s.metrics.processCallTime.RecordSince(start)

	output := s.dispatch(input.Contract, input.Invocation, input.State)

	if output.Decision.IsAccept() {
		s.metrics.accepted.Inc()
		logger.Info("approval program accepted", log.Stringable("lifecycle", output.LifecycleEvent), logfields.Operation(output.Operation), logfields.Decision(output.Decision))
	} else {
		s.metrics.rejected.Inc()
		logger.Info("approval program rejected", log.Stringable("lifecycle", output.LifecycleEvent), logfields.Operation(output.Operation), logfields.Decision(output.Decision), log.Error(output.Reason))
	}

	return output, nil
}

// the approval program: exactly one branch runs per invocation, anything unmatched rejects
func (s *service) dispatch(contract *types.ContractInfo, invocation *types.Invocation, state types.StateSdk) *ProcessCallOutput {
	event := invocation.LifecycleEvent()

	switch event {
	case types.LIFECYCLE_EVENT_CREATION:
		state.WriteUint64ByKey(contract.CounterKey, 0)
		return accept(event, "", types.EFFECT_NONE)

	case types.LIFECYCLE_EVENT_OPT_IN:
		return accept(event, "", types.EFFECT_NONE)

	case types.LIFECYCLE_EVENT_ORDINARY_CALL:
		return s.dispatchOperation(contract, invocation, state)
	}

	return reject(event, "", errors.Wrapf(types.ErrUnmatchedLifecycleEvent, "lifecycle event %s", event))
}

func (s *service) dispatchOperation(contract *types.ContractInfo, invocation *types.Invocation, state types.StateSdk) *ProcessCallOutput {
	event := types.LIFECYCLE_EVENT_ORDINARY_CALL

	name, ok := invocation.OperationName()
	if !ok {
		return reject(event, "", types.ErrNoOperation)
	}

	operation, found := contract.Operation(name)
	if !found {
		if s.unknownOperationsPolicy(contract) == types.UNKNOWN_OPERATION_ACCEPT {
			return accept(event, string(name), types.EFFECT_NONE)
		}
		return reject(event, string(name), errors.Wrapf(types.ErrUnknownOperation, "operation '%s'", name))
	}

	switch operation.Effect {
	case types.EFFECT_NONE:
		return accept(event, operation.Name, types.EFFECT_NONE)

	case types.EFFECT_INCREMENT_COUNTER:
		// a missing global reads as zero
		counter, _ := state.ReadUint64ByKey(contract.CounterKey)
		if counter == math.MaxUint64 {
			return reject(event, operation.Name, errors.Wrapf(types.ErrCounterOverflow, "counter %s", contract.CounterKey))
		}
		state.WriteUint64ByKey(contract.CounterKey, counter+1)
		return accept(event, operation.Name, types.EFFECT_INCREMENT_COUNTER)
	}

	return reject(event, operation.Name, errors.Errorf("operation '%s' has an unsupported effect %s", operation.Name, operation.Effect))
}

func (s *service) unknownOperationsPolicy(contract *types.ContractInfo) types.UnknownOperationPolicy {
	if s.unknownOperationsOverride != nil {
		return *s.unknownOperationsOverride
	}
	return contract.UnknownOperations
}

func accept(event types.LifecycleEvent, operation string, effect types.Effect) *ProcessCallOutput {
	return &ProcessCallOutput{
		Decision:       types.DECISION_ACCEPT,
		LifecycleEvent: event,
		Operation:      operation,
		Effect:         effect,
	}
}

func reject(event types.LifecycleEvent, operation string, reason error) *ProcessCallOutput {
	return &ProcessCallOutput{
		Decision:       types.DECISION_REJECT,
		LifecycleEvent: event,
		Operation:      operation,
		Effect:         types.EFFECT_NONE,
		Reason:         reason,
	}
}
