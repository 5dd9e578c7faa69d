// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestValidateConfig_AcceptsPresets(t *testing.T) {
	require.NotPanics(t, func() {
		Validate(ForProduction(""))
	})
	require.NotPanics(t, func() {
		Validate(ForTests("/tmp"))
	})
}

func TestValidateConfig_PanicsOnOldTealVersion(t *testing.T) {
	cfg := ForTests("")
	cfg.SetUint32(TEAL_VERSION, 4)

	require.Panics(t, func() {
		Validate(cfg)
	})
}

func TestValidateConfig_PanicsOnTealVersionAlgodCannotAssemble(t *testing.T) {
	cfg := ForTests("")
	cfg.SetUint32(TEAL_VERSION, 99)

	require.Panics(t, func() {
		Validate(cfg)
	})

	cfg.SetUint32(TEAL_VERSION, MAXIMAL_TEAL_VERSION)
	require.NotPanics(t, func() {
		Validate(cfg)
	})
}

func TestValidateConfig_PanicsOnUnknownPolicy(t *testing.T) {
	cfg := ForTests("")
	cfg.SetString(PROCESSOR_UNKNOWN_OPERATION_POLICY, "ignore")

	require.Panics(t, func() {
		Validate(cfg)
	})

	cfg.SetString(PROCESSOR_UNKNOWN_OPERATION_POLICY, " Accept")
	require.NotPanics(t, func() {
		Validate(cfg)
	})
}

func TestValidateConfig_PanicsOnZeroRequestRate(t *testing.T) {
	cfg := ForTests("")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 0)

	require.Panics(t, func() {
		Validate(cfg)
	})
}

func TestValidateConfig_PanicsOnBurstBelowRate(t *testing.T) {
	cfg := ForTests("")
	cfg.SetUint32(HTTP_REQUESTS_PER_SECOND, 10)
	cfg.SetUint32(HTTP_BURST, 5)

	require.Panics(t, func() {
		Validate(cfg)
	})
}

func TestValidateConfig_PanicsOnCompileWithoutAlgod(t *testing.T) {
	cfg := ForTests("")
	cfg.SetBool(ARTIFACTS_COMPILE, true)
	cfg.SetString(ALGOD_ADDRESS, "")

	require.Panics(t, func() {
		Validate(cfg)
	})
}
