// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package artifacts

import (
	"context"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/trace"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/teal"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/teal/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
)

var LogTag = log.Service("artifacts")

const (
	APPROVAL_SUFFIX = "_approval.teal"
	CLEAR_SUFFIX    = "_clear.teal"
)

type Program struct {
	Path   string
	Source string

	// set only when compiling
	Compiled *adapter.CompiledProgram
}

type ArtifactSet struct {
	Contract types.ContractInfo
	Approval *Program
	Clear    *Program
}

type metrics struct {
	emitted      *metric.Gauge
	emissionTime *metric.Histogram
}

type Service struct {
	config   config.ArtifactsConfig
	compiler adapter.Compiler
	logger   log.Logger
	metrics  *metrics
}

// compiler may be nil when the config does not ask for compilation
func NewArtifactsService(config config.ArtifactsConfig, compiler adapter.Compiler, parentLogger log.Logger, metricFactory metric.Factory) *Service {
	return &Service{
		config:   config,
		compiler: compiler,
		logger:   parentLogger.WithTags(LogTag),
		metrics: &metrics{
			emitted:      metricFactory.NewGauge("Artifacts.EmittedPrograms.Count"),
			emissionTime: metricFactory.NewLatency("Artifacts.EmissionTime.Millis", 30*time.Second),
		},
	}
}

func ApprovalFileName(contract *types.ContractInfo) string {
	return contract.ArtifactName + APPROVAL_SUFFIX
}

func ClearFileName(contract *types.ContractInfo) string {
	return contract.ArtifactName + CLEAR_SUFFIX
}

func (s *Service) Emit(ctx context.Context, contracts []types.ContractInfo) ([]*ArtifactSet, error) {
	start := time.Now()
	defer s.metrics.emissionTime.RecordSince(start)

	if s.config.ArtifactsCompile() && s.compiler == nil {
		return nil, errors.New("compilation requested but no compiler is configured")
	}

	dir := s.config.ArtifactsOutputDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "could not create artifacts directory %s", dir)
	}

	res := make([]*ArtifactSet, 0, len(contracts))
	for i := range contracts {
		set, err := s.emitContract(ctx, dir, &contracts[i])
		if err != nil {
			return nil, err
		}
		res = append(res, set)
	}
	return res, nil
}

func (s *Service) emitContract(ctx context.Context, dir string, contract *types.ContractInfo) (*ArtifactSet, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Contract(contract.Name))

	if contract.ArtifactName == "" {
		return nil, errors.Errorf("contract %s has no artifact name", contract.Name)
	}

	version := s.config.TealVersion()

	approvalSource, err := teal.ApprovalProgram(contract, version)
	if err != nil {
		return nil, errors.Wrapf(err, "could not emit approval program of %s", contract.Name)
	}

	clearSource, err := teal.ClearStateProgram(version)
	if err != nil {
		return nil, errors.Wrapf(err, "could not emit clear state program of %s", contract.Name)
	}

	// both programs compile before either file is written
	approval, err := s.compileProgram(ctx, filepath.Join(dir, ApprovalFileName(contract)), approvalSource)
	if err != nil {
		return nil, err
	}

	clear, err := s.compileProgram(ctx, filepath.Join(dir, ClearFileName(contract)), clearSource)
	if err != nil {
		return nil, err
	}

	for _, program := range []*Program{approval, clear} {
		if err := s.writeProgram(program); err != nil {
			return nil, err
		}
	}

	logger.Info("emitted contract artifacts", log.String("approval", approval.Path), log.String("clear", clear.Path), log.Uint32("teal-version", version))

	return &ArtifactSet{
		Contract: *contract,
		Approval: approval,
		Clear:    clear,
	}, nil
}

func (s *Service) compileProgram(ctx context.Context, path string, source string) (*Program, error) {
	program := &Program{Path: path, Source: source}

	if s.config.ArtifactsCompile() {
		compiled, err := s.compiler.Compile(ctx, source)
		if err != nil {
			return nil, errors.Wrapf(err, "could not compile %s", path)
		}
		program.Compiled = compiled
	}

	return program, nil
}

func (s *Service) writeProgram(program *Program) error {
	if err := ioutil.WriteFile(program.Path, []byte(program.Source), 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", program.Path)
	}

	s.metrics.emitted.Inc()
	return nil
}
