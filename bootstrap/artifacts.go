// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/artifacts"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/repository"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/teal/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"strings"
)

// EmitArtifacts writes the approval and clear programs of every contract in the repository
func EmitArtifacts(ctx context.Context, nodeConfig config.NodeConfig, logger log.Logger) ([]*artifacts.ArtifactSet, error) {
	config.Validate(nodeConfig)

	contracts, err := contractsWithPolicyOverride(nodeConfig)
	if err != nil {
		return nil, err
	}

	var compiler adapter.Compiler
	if nodeConfig.ArtifactsCompile() {
		compiler, err = adapter.NewAlgodCompiler(nodeConfig, logger)
		if err != nil {
			return nil, errors.Wrap(err, "could not create algod compiler")
		}
	}

	return artifacts.NewArtifactsService(nodeConfig, compiler, logger, metric.NewRegistry()).Emit(ctx, contracts)
}

// the emitted programs must gate exactly like the native processor running under the same config
func contractsWithPolicyOverride(nodeConfig config.NativeProcessorConfig) ([]types.ContractInfo, error) {
	contracts := repository.All()

	configured := strings.TrimSpace(nodeConfig.ProcessorUnknownOperationPolicy())
	if configured == "" {
		return contracts, nil
	}

	policy, err := types.ParseUnknownOperationPolicy(configured)
	if err != nil {
		return nil, err
	}
	for i := range contracts {
		contracts[i] = contracts[i].WithUnknownOperations(policy)
	}
	return contracts, nil
}
