// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}

type config struct {
	kv map[string]NodeConfigValue
}

const (
	PROCESSOR_UNKNOWN_OPERATION_POLICY = "PROCESSOR_UNKNOWN_OPERATION_POLICY"

	TEAL_VERSION = "TEAL_VERSION"

	ARTIFACTS_OUTPUT_DIR = "ARTIFACTS_OUTPUT_DIR"
	ARTIFACTS_COMPILE    = "ARTIFACTS_COMPILE"

	ALGOD_ADDRESS         = "ALGOD_ADDRESS"
	ALGOD_TOKEN           = "ALGOD_TOKEN"
	ALGOD_REQUEST_TIMEOUT = "ALGOD_REQUEST_TIMEOUT"

	VIRTUAL_MACHINE_REQUEST_QUEUE_SIZE = "VIRTUAL_MACHINE_REQUEST_QUEUE_SIZE"

	HTTP_ADDRESS             = "HTTP_ADDRESS"
	HTTP_REQUESTS_PER_SECOND = "HTTP_REQUESTS_PER_SECOND"
	HTTP_BURST               = "HTTP_BURST"

	LOGGER_FILE_TRUNCATION_INTERVAL = "LOGGER_FILE_TRUNCATION_INTERVAL"
	LOGGER_FULL_LOG                 = "LOGGER_FULL_LOG"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
)

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
	return c
}

func (c *config) ProcessorUnknownOperationPolicy() string {
	return c.kv[PROCESSOR_UNKNOWN_OPERATION_POLICY].StringValue
}

func (c *config) TealVersion() uint32 {
	return c.kv[TEAL_VERSION].Uint32Value
}

func (c *config) ArtifactsOutputDir() string {
	return c.kv[ARTIFACTS_OUTPUT_DIR].StringValue
}

func (c *config) ArtifactsCompile() bool {
	return c.kv[ARTIFACTS_COMPILE].BoolValue
}

func (c *config) AlgodAddress() string {
	return c.kv[ALGOD_ADDRESS].StringValue
}

func (c *config) AlgodToken() string {
	return c.kv[ALGOD_TOKEN].StringValue
}

func (c *config) AlgodRequestTimeout() time.Duration {
	return c.kv[ALGOD_REQUEST_TIMEOUT].DurationValue
}

func (c *config) VirtualMachineRequestQueueSize() uint32 {
	return c.kv[VIRTUAL_MACHINE_REQUEST_QUEUE_SIZE].Uint32Value
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpRequestsPerSecond() uint32 {
	return c.kv[HTTP_REQUESTS_PER_SECOND].Uint32Value
}

func (c *config) HttpBurst() uint32 {
	return c.kv[HTTP_BURST].Uint32Value
}

func (c *config) LoggerFileTruncationInterval() time.Duration {
	return c.kv[LOGGER_FILE_TRUNCATION_INTERVAL].DurationValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}
