// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/orbs-network/orbs-donation-ledger/services/processor/native/types"
	"sort"
)

type application struct {
	id       uint64
	contract types.ContractInfo
	creator  string
	round    uint64
	optedIn  map[string]bool
}

type ApplicationInfo struct {
	Id       uint64
	Address  string
	Contract types.ContractInfo
	Creator  string
	Round    uint64
	OptedIn  []string
}

func (a *application) info() *ApplicationInfo {
	optedIn := make([]string, 0, len(a.optedIn))
	for account := range a.optedIn {
		optedIn = append(optedIn, account)
	}
	sort.Strings(optedIn)

	return &ApplicationInfo{
		Id:       a.id,
		Address:  crypto.GetApplicationAddress(a.id).String(),
		Contract: a.contract,
		Creator:  a.creator,
		Round:    a.round,
		OptedIn:  optedIn,
	}
}

// only touched from the actor goroutine
type applicationRegistry struct {
	lastApplicationId uint64
	applications      map[uint64]*application
}

func newApplicationRegistry() *applicationRegistry {
	return &applicationRegistry{
		applications: make(map[uint64]*application),
	}
}

func (r *applicationRegistry) nextApplicationId() uint64 {
	return r.lastApplicationId + 1
}

func (r *applicationRegistry) register(id uint64, contract types.ContractInfo, creator string, round uint64) *application {
	app := &application{
		id:       id,
		contract: contract,
		creator:  creator,
		round:    round,
		optedIn:  make(map[string]bool),
	}
	r.applications[id] = app
	r.lastApplicationId = id
	return app
}

func (r *applicationRegistry) get(id uint64) (*application, bool) {
	app, found := r.applications[id]
	return app, found
}

func (r *applicationRegistry) remove(id uint64) {
	delete(r.applications, id)
}

func (r *applicationRegistry) all() []*application {
	res := make([]*application, 0, len(r.applications))
	for _, app := range r.applications {
		res = append(res, app)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].id < res[j].id })
	return res
}
