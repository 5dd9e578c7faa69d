// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/repository/BloodDonation"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/repository/NftCertificate"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"sort"
)

var Contracts = map[primitives.ContractName]types.ContractInfo{
	blooddonation.CONTRACT.Name:  blooddonation.CONTRACT,
	nftcertificate.CONTRACT.Name: nftcertificate.CONTRACT,
	// add new contracts here
}

func Lookup(name primitives.ContractName) (types.ContractInfo, bool) {
	contract, found := Contracts[name]
	return contract, found
}

// sorted by name so emission and listings are stable
func All() []types.ContractInfo {
	res := make([]types.ContractInfo, 0, len(Contracts))
	for _, contract := range Contracts {
		res = append(res, contract)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
