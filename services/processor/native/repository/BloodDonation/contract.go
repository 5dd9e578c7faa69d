// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package blooddonation

import (
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
)

const CONTRACT_NAME = "BloodDonation"
const COUNTER_KEY = "TotalDonations"

var CONTRACT = types.ContractInfo{
	Name:         CONTRACT_NAME,
	ArtifactName: "blood_donation_backend",
	CounterKey:   COUNTER_KEY,
	Operations: []types.OperationInfo{
		OPERATION_REGISTER_DONOR,
		OPERATION_RECORD_DONATION,
	},
	UnknownOperations: types.UNKNOWN_OPERATION_REJECT,
}

///////////////////////////////////////////////////////////////////////////

var OPERATION_REGISTER_DONOR = types.OperationInfo{
	Name:   "registerDonor",
	Effect: types.EFFECT_NONE,
}

///////////////////////////////////////////////////////////////////////////

var OPERATION_RECORD_DONATION = types.OperationInfo{
	Name:   "recordDonation",
	Effect: types.EFFECT_INCREMENT_COUNTER,
}
