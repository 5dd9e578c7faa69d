// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"encoding/base64"
	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.String("adapter", "algod-compiler")

type algodCompiler struct {
	config config.AlgodConfig
	logger log.Logger
	client *algod.Client
}

func NewAlgodCompiler(config config.AlgodConfig, parentLogger log.Logger) (Compiler, error) {
	client, err := algod.MakeClient(config.AlgodAddress(), config.AlgodToken())
	if err != nil {
		return nil, errors.Wrapf(err, "could not create algod client for %s", config.AlgodAddress())
	}

	return &algodCompiler{
		config: config,
		logger: parentLogger.WithTags(LogTag),
		client: client,
	}, nil
}

func (c *algodCompiler) Compile(ctx context.Context, source string) (*CompiledProgram, error) {
	if timeout := c.config.AlgodRequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := c.client.TealCompile([]byte(source)).Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "algod rejected teal compilation")
	}

	bytecode, err := base64.StdEncoding.DecodeString(response.Result)
	if err != nil {
		return nil, errors.Wrap(err, "algod returned malformed bytecode")
	}

	c.logger.Info("compiled teal program", log.String("hash", response.Hash), log.Int("bytecode-size", len(bytecode)), log.Stringable("duration", time.Since(start)))

	return &CompiledProgram{
		Hash:     response.Hash,
		Bytecode: bytecode,
	}, nil
}
