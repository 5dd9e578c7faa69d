// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"fmt"
	"strings"
)

const MINIMAL_TEAL_VERSION = 5
const MAXIMAL_TEAL_VERSION = 10

func Validate(cfg NodeConfig) {
	if cfg.TealVersion() < MINIMAL_TEAL_VERSION || cfg.TealVersion() > MAXIMAL_TEAL_VERSION {
		panic(fmt.Sprintf("teal version must be between %d and %d, got %d", MINIMAL_TEAL_VERSION, MAXIMAL_TEAL_VERSION, cfg.TealVersion()))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.ProcessorUnknownOperationPolicy())) {
	case "", "reject", "accept":
	default:
		panic(fmt.Sprintf("processor unknown operation policy must be empty, 'reject' or 'accept', got '%s'", cfg.ProcessorUnknownOperationPolicy()))
	}

	if cfg.HttpRequestsPerSecond() == 0 {
		panic("http requests per second must be positive")
	}

	if cfg.HttpBurst() < cfg.HttpRequestsPerSecond() {
		panic(fmt.Sprintf("http burst (%d) must be at least http requests per second (%d)", cfg.HttpBurst(), cfg.HttpRequestsPerSecond()))
	}

	if cfg.VirtualMachineRequestQueueSize() == 0 {
		panic("virtual machine request queue size must be positive")
	}

	if cfg.ArtifactsCompile() && cfg.AlgodAddress() == "" {
		panic("artifacts compile requires an algod address")
	}
}
