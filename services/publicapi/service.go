// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/trace"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("public-api")

var ErrInvalidInput = errors.New("invalid input")

type VirtualMachine interface {
	CreateApplication(ctx context.Context, input *virtualmachine.CreateApplicationInput) (*virtualmachine.InvocationResult, error)
	CallApplication(ctx context.Context, inv *types.Invocation) (*virtualmachine.InvocationResult, error)
	ClearState(ctx context.Context, applicationId uint64, sender string) (*virtualmachine.InvocationResult, error)
	GetGlobalState(ctx context.Context, applicationId uint64) (*virtualmachine.ApplicationState, error)
	ListApplications(ctx context.Context) ([]*virtualmachine.ApplicationInfo, error)
}

type Service struct {
	virtualMachine VirtualMachine
	logger         log.Logger
	metrics        *metrics
}

type metrics struct {
	invocationTime      *metric.Histogram
	totalRequests       *metric.Gauge
	totalInvalidRequest *metric.Gauge
	totalRejected       *metric.Gauge
}

func newMetrics(factory metric.Factory) *metrics {
	return &metrics{
		invocationTime:      factory.NewLatency("PublicApi.InvocationProcessingTime.Millis", 10*time.Second),
		totalRequests:       factory.NewGauge("PublicApi.TotalRequests.Count"),
		totalInvalidRequest: factory.NewGauge("PublicApi.TotalInvalidRequests.Count"),
		totalRejected:       factory.NewGauge("PublicApi.TotalRejectedInvocations.Count"),
	}
}

func NewPublicApi(virtualMachine VirtualMachine, parentLogger log.Logger, metricFactory metric.Factory) *Service {
	return &Service{
		virtualMachine: virtualMachine,
		logger:         parentLogger.WithTags(LogTag),
		metrics:        newMetrics(metricFactory),
	}
}

func (s *Service) CreateApplication(ctx context.Context, input *CreateApplicationInput) (*InvocationOutput, error) {
	s.metrics.totalRequests.Inc()
	if input == nil || input.Contract == "" {
		return nil, s.invalid(ctx, "contract name is required")
	}
	if err := validateSender(input.Sender); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}

	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)

	result, err := s.virtualMachine.CreateApplication(ctx, &virtualmachine.CreateApplicationInput{
		Contract: primitives.ContractName(input.Contract),
		Sender:   input.Sender,
		Args:     toRawArgs(input.Args),
	})
	return s.toOutput(result, err)
}

func (s *Service) CallApplication(ctx context.Context, input *CallApplicationInput) (*InvocationOutput, error) {
	s.metrics.totalRequests.Inc()
	if input == nil {
		return nil, s.invalid(ctx, "missing call")
	}

	args := input.Args
	if input.Operation != "" {
		args = append([]string{input.Operation}, input.Args...)
	}

	return s.invoke(ctx, input.ApplicationId, input.Sender, algoTypes.NoOpOC, args)
}

func (s *Service) OptIn(ctx context.Context, input *AccountInput) (*InvocationOutput, error) {
	s.metrics.totalRequests.Inc()
	if input == nil {
		return nil, s.invalid(ctx, "missing account")
	}
	return s.invoke(ctx, input.ApplicationId, input.Sender, algoTypes.OptInOC, nil)
}

func (s *Service) CloseOut(ctx context.Context, input *AccountInput) (*InvocationOutput, error) {
	s.metrics.totalRequests.Inc()
	if input == nil {
		return nil, s.invalid(ctx, "missing account")
	}
	return s.invoke(ctx, input.ApplicationId, input.Sender, algoTypes.CloseOutOC, nil)
}

func (s *Service) ClearState(ctx context.Context, input *AccountInput) (*InvocationOutput, error) {
	s.metrics.totalRequests.Inc()
	if input == nil {
		return nil, s.invalid(ctx, "missing account")
	}
	if err := validateApplicationId(input.ApplicationId); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}
	if err := validateSender(input.Sender); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}

	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)

	result, err := s.virtualMachine.ClearState(ctx, input.ApplicationId, input.Sender)
	return s.toOutput(result, err)
}

func (s *Service) GetApplicationState(ctx context.Context, applicationId uint64) (*ApplicationOutput, error) {
	s.metrics.totalRequests.Inc()
	if err := validateApplicationId(applicationId); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}

	state, err := s.virtualMachine.GetGlobalState(ctx, applicationId)
	if err != nil {
		return nil, err
	}
	return toApplicationOutput(state.Application, state.Values), nil
}

func (s *Service) ListApplications(ctx context.Context) ([]*ApplicationOutput, error) {
	s.metrics.totalRequests.Inc()

	apps, err := s.virtualMachine.ListApplications(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*ApplicationOutput, 0, len(apps))
	for _, app := range apps {
		res = append(res, toApplicationOutput(app, nil))
	}
	return res, nil
}

func (s *Service) invoke(ctx context.Context, applicationId uint64, sender string, onCompletion algoTypes.OnCompletion, args []string) (*InvocationOutput, error) {
	if err := validateApplicationId(applicationId); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}
	if err := validateSender(sender); err != nil {
		return nil, s.invalid(ctx, err.Error())
	}

	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)

	result, err := s.virtualMachine.CallApplication(ctx, &types.Invocation{
		ApplicationId: applicationId,
		OnCompletion:  onCompletion,
		Sender:        sender,
		Args:          toRawArgs(args),
	})
	return s.toOutput(result, err)
}

func (s *Service) toOutput(result *virtualmachine.InvocationResult, err error) (*InvocationOutput, error) {
	if err != nil {
		return nil, err
	}
	if !result.Decision.IsAccept() {
		s.metrics.totalRejected.Inc()
	}
	return toInvocationOutput(result), nil
}

func (s *Service) invalid(ctx context.Context, reason string) error {
	s.metrics.totalInvalidRequest.Inc()
	s.logger.Info("refused invalid request", trace.LogFieldFrom(ctx), log.String("reason", reason))
	return errors.Wrap(ErrInvalidInput, reason)
}
