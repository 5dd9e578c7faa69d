// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package nftcertificate

import (
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
)

const CONTRACT_NAME = "NftCertificate"
const COUNTER_KEY = "TotalCertificates"

// certificates are counted on their own, nothing ties a mint to a recorded donation
var CONTRACT = types.ContractInfo{
	Name:         CONTRACT_NAME,
	ArtifactName: "nft_certificate_system",
	CounterKey:   COUNTER_KEY,
	Operations: []types.OperationInfo{
		OPERATION_MINT_DONATION_CERTIFICATE,
	},
	UnknownOperations: types.UNKNOWN_OPERATION_REJECT,
}

///////////////////////////////////////////////////////////////////////////

var OPERATION_MINT_DONATION_CERTIFICATE = types.OperationInfo{
	Name:   "mintDonationCertificate",
	Effect: types.EFFECT_INCREMENT_COUNTER,
}
