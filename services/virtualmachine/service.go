// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("virtual-machine")

var (
	ErrContractNotFound    = errors.New("contract is not in the repository")
	ErrApplicationNotFound = errors.New("application does not exist")
	ErrAlreadyOptedIn      = errors.New("account already opted in to application")
	ErrNotOptedIn          = errors.New("account is not opted in to application")
	ErrShuttingDown        = errors.New("virtual machine is shutting down")
)

type StateStorage interface {
	CommitStateDiff(round uint64, diff adapter.StateDiff) error
	ReadKey(applicationId uint64, key string) (adapter.Value, bool, error)
	GetGlobalState(applicationId uint64) (adapter.ApplicationState, error)
	GetRound() (uint64, error)
	RemoveApplication(applicationId uint64) error
}

type metrics struct {
	invocations    *metric.Rate
	applications   *metric.Gauge
	round          *metric.Gauge
	invocationTime *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		invocations:    m.NewRate("VirtualMachine.Invocations.Rate"),
		applications:   m.NewGauge("VirtualMachine.Applications.Count"),
		round:          m.NewGauge("VirtualMachine.Round"),
		invocationTime: m.NewLatency("VirtualMachine.InvocationTime.Millis", 10*time.Second),
	}
}

type request struct {
	ctx  context.Context
	run  func() error
	done chan struct{}
	ran  bool
	err  error
}

// every invocation is executed by a single goroutine that owns the registry and the round counter
type Service struct {
	govnr.TreeSupervisor

	logger       log.Logger
	processor    native.Processor
	stateStorage StateStorage
	metrics      *metrics

	requests chan *request
	closed   govnr.ContextEndedChan

	registry *applicationRegistry
	round    uint64
}

func NewVirtualMachine(ctx context.Context, config config.VirtualMachineConfig, processor native.Processor, stateStorage StateStorage, parentLogger log.Logger, metricFactory metric.Factory) *Service {
	logger := parentLogger.WithTags(LogTag)

	round, err := stateStorage.GetRound()
	if err != nil {
		logger.Error("could not read committed round", log.Error(err))
		panic(errors.Wrap(err, "could not read committed round"))
	}

	s := &Service{
		logger:       logger,
		processor:    processor,
		stateStorage: stateStorage,
		metrics:      newMetrics(metricFactory),
		requests:     make(chan *request, config.VirtualMachineRequestQueueSize()),
		registry:     newApplicationRegistry(),
		round:        round,
	}
	s.metrics.round.Update(int64(round))

	handle := govnr.Forever(ctx, "virtual machine", logfields.GovnrErrorer(logger), func() {
		s.serve(ctx)
	})
	s.closed = handle.Done()
	s.Supervise(handle)

	return s
}

func (s *Service) serve(ctx context.Context) {
	for {
		select {
		case req := <-s.requests:
			s.handle(req)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) handle(req *request) {
	defer close(req.done)

	// the caller already gave up, nothing may change on its behalf
	if req.ctx.Err() != nil {
		return
	}

	req.ran = true
	req.err = errors.New("invocation aborted")

	start := time.Now()
	defer s.metrics.invocationTime.RecordSince(start)

	req.err = req.run()
}

func (s *Service) execute(ctx context.Context, f func() error) error {
	req := &request{ctx: ctx, run: f, done: make(chan struct{})}

	select {
	case s.requests <- req:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "invocation was not queued")
	case <-s.closed:
		return ErrShuttingDown
	}

	// once queued the actor decides: it drops the request if ctx already ended, otherwise it runs to completion
	// and the caller must see that outcome
	select {
	case <-req.done:
		return req.outcome()
	case <-s.closed:
		select {
		case <-req.done:
			return req.outcome()
		default:
			return ErrShuttingDown
		}
	}
}

func (req *request) outcome() error {
	if !req.ran {
		return errors.Wrap(req.ctx.Err(), "invocation was dropped")
	}
	return req.err
}

func (s *Service) commit(state *transientState) (uint64, error) {
	round := s.round + 1
	if err := s.stateStorage.CommitStateDiff(round, state.stateDiff()); err != nil {
		return 0, errors.Wrapf(err, "could not commit state of application %d", state.applicationId)
	}
	s.round = round
	s.metrics.round.Update(int64(round))
	return round, nil
}
