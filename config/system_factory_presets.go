// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	// empty means every contract keeps its own declared policy
	cfg.SetString(PROCESSOR_UNKNOWN_OPERATION_POLICY, "")

	cfg.SetUint32(TEAL_VERSION, 5)

	cfg.SetString(ARTIFACTS_OUTPUT_DIR, ".")
	cfg.SetBool(ARTIFACTS_COMPILE, false)

	// algod sandbox defaults
	cfg.SetString(ALGOD_ADDRESS, "http://localhost:4001")
	cfg.SetString(ALGOD_TOKEN, "")
	cfg.SetDuration(ALGOD_REQUEST_TIMEOUT, 10*time.Second)

	cfg.SetUint32(VIRTUAL_MACHINE_REQUEST_QUEUE_SIZE, 100)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 50)
	cfg.SetUint32(HTTP_BURST, 100)

	cfg.SetDuration(LOGGER_FILE_TRUNCATION_INTERVAL, 24*time.Hour)
	cfg.SetBool(LOGGER_FULL_LOG, false)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)

	return cfg
}

// config for a production node
func ForProduction(artifactsOutputDir string) mutableNodeConfig {
	cfg := defaultProductionConfig()

	if artifactsOutputDir != "" {
		cfg.SetString(ARTIFACTS_OUTPUT_DIR, artifactsOutputDir)
	}
	return cfg
}

// config for unit and component tests (small queues, no artificial limits, no remote compiler)
func ForTests(artifactsOutputDir string) mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(ARTIFACTS_OUTPUT_DIR, artifactsOutputDir)
	cfg.SetString(ALGOD_ADDRESS, "")
	cfg.SetDuration(ALGOD_REQUEST_TIMEOUT, 1*time.Second)
	cfg.SetUint32(VIRTUAL_MACHINE_REQUEST_QUEUE_SIZE, 10)
	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 1000)
	cfg.SetUint32(HTTP_BURST, 1000)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 50*time.Millisecond)

	return cfg
}
