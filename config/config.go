// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

type NodeConfig interface {
	// processor
	ProcessorUnknownOperationPolicy() string

	// teal
	TealVersion() uint32

	// artifacts
	ArtifactsOutputDir() string
	ArtifactsCompile() bool

	// algod
	AlgodAddress() string
	AlgodToken() string
	AlgodRequestTimeout() time.Duration

	// virtual machine
	VirtualMachineRequestQueueSize() uint32

	// http server
	HttpAddress() string
	HttpRequestsPerSecond() uint32
	HttpBurst() uint32

	// logger
	LoggerFileTruncationInterval() time.Duration
	LoggerFullLog() bool

	// metrics
	MetricsReportInterval() time.Duration
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig
}

type NativeProcessorConfig interface {
	ProcessorUnknownOperationPolicy() string
}

type TealConfig interface {
	TealVersion() uint32
}

type ArtifactsConfig interface {
	TealConfig
	ArtifactsOutputDir() string
	ArtifactsCompile() bool
}

type AlgodConfig interface {
	AlgodAddress() string
	AlgodToken() string
	AlgodRequestTimeout() time.Duration
}

type VirtualMachineConfig interface {
	VirtualMachineRequestQueueSize() uint32
}

type HttpServerConfig interface {
	HttpAddress() string
	HttpRequestsPerSecond() uint32
	HttpBurst() uint32
}
