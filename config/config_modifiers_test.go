// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_FillEmptyConfig(t *testing.T) {
	// setup
	cfg := emptyConfig()
	// execute
	err := mergeTest(cfg)
	// assert
	require.NoError(t, err)
	checkMerged(t, cfg)
}

func TestConfig_OverrideProductionConfig(t *testing.T) {
	// setup
	cfg := ForProduction("/tmp/artifacts")
	// execute
	err := mergeTest(cfg)
	// assert
	require.NoError(t, err)
	checkMerged(t, cfg)
}

func TestConfig_ParsesZeroValues(t *testing.T) {
	// setup
	cfg := emptyConfig()
	require.NoError(t, mergeTest(cfg))
	// execute
	err := modifyFromJson(cfg, `
{
	"teal-version": 0,
	"artifacts-compile": false,
	"algod-request-timeout": "0s",
	"algod-address": ""
}`)
	// assert
	require.NoError(t, err)
	require.EqualValues(t, 0, cfg.TealVersion())
	require.False(t, cfg.ArtifactsCompile())
	require.EqualValues(t, 0, cfg.AlgodRequestTimeout())
	require.Equal(t, "", cfg.AlgodAddress())
}

func TestConfig_RejectsNegativeAndFractionalNumbers(t *testing.T) {
	cfg := emptyConfig()

	require.Error(t, modifyFromJson(cfg, `{"http-burst": -1}`))
	require.Error(t, modifyFromJson(cfg, `{"http-burst": 1.5}`))
	require.Error(t, modifyFromJson(cfg, `{"http-burst": [1]}`))
}

func TestConfig_AlgodTokenStaysAStringEvenIfItLooksLikeADuration(t *testing.T) {
	cfg := emptyConfig()

	require.NoError(t, modifyFromJson(cfg, `{"algod-token": "10s"}`))
	require.Equal(t, "10s", cfg.AlgodToken())
}

func TestConfig_GetNodeConfigFromFilesAppliesFilesInOrderThenFlags(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte(`{"http-burst": 7, "http-address": ":1"}`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"http-burst": 9}`), 0644))

	cfg, err := GetNodeConfigFromFiles(FilesPaths{first, second}, ":2", "")
	require.NoError(t, err)

	require.EqualValues(t, 9, cfg.HttpBurst(), "later files override earlier ones")
	require.Equal(t, ":2", cfg.HttpAddress(), "flags override files")
	require.EqualValues(t, 5, cfg.TealVersion(), "untouched keys keep production defaults")
}

func TestConfig_GetNodeConfigFromFilesFailsOnMissingFile(t *testing.T) {
	_, err := GetNodeConfigFromFiles(FilesPaths{"/no/such/config.json"}, "", "")
	require.Error(t, err)
}

func TestFilesPaths_CollectsRepeatedFlags(t *testing.T) {
	var paths FilesPaths
	require.NoError(t, paths.Set("a.json"))
	require.NoError(t, paths.Set("b.json"))
	require.Equal(t, "a.json,b.json", paths.String())
}

func mergeTest(cfg mutableNodeConfig) error {
	return modifyFromJson(cfg, `
{
	"processor-unknown-operation-policy": "accept",
	"teal-version": 6,
	"artifacts-output-dir": "/var/artifacts",
	"artifacts-compile": true,
	"algod-address": "http://algod:4001",
	"algod-token": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	"algod-request-timeout": "3s",
	"virtual-machine-request-queue-size": 17,
	"http-address": ":9090",
	"http-requests-per-second": 20,
	"http-burst": 40,
	"logger-full-log": true,
	"metrics-report-interval": "1m"
}`)
}

func checkMerged(t *testing.T, cfg NodeConfig) {
	require.Equal(t, "accept", cfg.ProcessorUnknownOperationPolicy())
	require.EqualValues(t, 6, cfg.TealVersion())
	require.Equal(t, "/var/artifacts", cfg.ArtifactsOutputDir())
	require.True(t, cfg.ArtifactsCompile())
	require.Equal(t, "http://algod:4001", cfg.AlgodAddress())
	require.Len(t, cfg.AlgodToken(), 64)
	require.Equal(t, 3*time.Second, cfg.AlgodRequestTimeout())
	require.EqualValues(t, 17, cfg.VirtualMachineRequestQueueSize())
	require.Equal(t, ":9090", cfg.HttpAddress())
	require.EqualValues(t, 20, cfg.HttpRequestsPerSecond())
	require.EqualValues(t, 40, cfg.HttpBurst())
	require.True(t, cfg.LoggerFullLog())
	require.Equal(t, time.Minute, cfg.MetricsReportInterval())
}
