// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-donation-ledger/bootstrap/httpserver"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native"
	"github.com/orbs-network/orbs-donation-ledger/services/publicapi"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

type Node struct {
	govnr.TreeSupervisor

	logger         log.Logger
	cancel         context.CancelFunc
	httpServer     *httpserver.HttpServer
	metricRegistry metric.Registry
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	config.Validate(nodeConfig)
	logger.Info("starting node", log.Stringable("version", config.GetVersion()))

	ctx, cancel := context.WithCancel(context.Background())

	metricRegistry := metric.NewRegistry()
	version := config.GetVersion()
	metricRegistry.NewText("Node.Version.Semantic", version.Semantic)
	metricRegistry.NewText("Node.Version.Commit", version.Commit)

	stateStorage := statestorage.NewStateStorage(memory.NewStatePersistence(metricRegistry), logger)
	processor := native.NewNativeProcessor(nodeConfig, logger, metricRegistry)
	virtualMachine := virtualmachine.NewVirtualMachine(ctx, nodeConfig, processor, stateStorage, logger, metricRegistry)
	publicApi := publicapi.NewPublicApi(virtualMachine, logger, metricRegistry)

	httpServer, err := httpserver.NewHttpServer(ctx, nodeConfig, logger, publicApi, metricRegistry)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not start node")
	}

	n := &Node{
		logger:         logger,
		cancel:         cancel,
		httpServer:     httpServer,
		metricRegistry: metricRegistry,
	}

	n.Supervise(virtualMachine)
	n.Supervise(httpServer)
	n.Supervise(metricRegistry.ReportEvery(ctx, nodeConfig.MetricsReportInterval(), logger))

	return n, nil
}

func (n *Node) Port() int {
	return n.httpServer.Port()
}

func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down")
	n.httpServer.GracefulShutdown(shutdownContext)
	n.cancel()
}
