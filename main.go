// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/orbs-network/orbs-donation-ledger/bootstrap"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation"
	"github.com/orbs-network/orbs-donation-ledger/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"os"
)

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()

	httpAddress := flag.String("listen", "", "ip address and port for http server, overrides config")
	silentLog := flag.Bool("silent", false, "disable output to stdout")
	pathToLog := flag.String("log", "", "path/to/node.log")
	version := flag.Bool("version", false, "returns information about version")
	emit := flag.Bool("emit", false, "write the approval and clear programs of every contract and exit")
	outputDir := flag.String("out", "", "directory for emitted programs, overrides config")

	var configFiles config.FilesPaths
	flag.Var(&configFiles, "config", "path/to/config.json")

	flag.Parse()

	if *version {
		fmt.Println(config.GetVersion())
		return
	}

	cfg := readConfig(logger, configFiles, *httpAddress, *outputDir)
	logger = instrumentation.GetLogger(*pathToLog, *silentLog, cfg)

	if *emit {
		emitArtifacts(logger, cfg)
		return
	}

	var node *bootstrap.Node
	func() { // context of bootstrap crash logging
		defer func() {
			if r := recover(); r != nil {
				logger.Error("unexpected error during bootstrap", log.Error(errors.Errorf("unknown error: %v", r)))
				os.Exit(8)
			}
		}()

		var err error
		node, err = bootstrap.NewNode(cfg, logger)
		if err != nil {
			logger.Error("node failed to start", log.Error(err))
			os.Exit(8)
		}

		synchronization.NewShutdownListener(logger, node).ListenToOSShutdownSignal()
	}()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in main goroutine", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(2)
		}
	}()
	node.WaitUntilShutdown(context.Background())
}

func readConfig(logger log.Logger, configFiles config.FilesPaths, httpAddress string, outputDir string) config.NodeConfig {
	cfg, err := config.GetNodeConfigFromFiles(configFiles, httpAddress, outputDir)
	if err != nil {
		logger.Error("error reading configuration", log.Error(err))
		os.Exit(1)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("invalid configuration", log.Error(errors.Errorf("%v", r)))
				os.Exit(1)
			}
		}()
		config.Validate(cfg)
	}()

	return cfg
}

func emitArtifacts(logger log.Logger, cfg config.NodeConfig) {
	sets, err := bootstrap.EmitArtifacts(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to emit artifacts", log.Error(err))
		os.Exit(3)
	}

	for _, set := range sets {
		fmt.Println(set.Approval.Path)
		fmt.Println(set.Clear.Path)
	}
}
