// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	algoTypes "github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
	"github.com/pkg/errors"
)

type CreateApplicationInput struct {
	Contract string   `json:"contract"`
	Sender   string   `json:"sender"`
	Args     []string `json:"args,omitempty"`
}

type CallApplicationInput struct {
	ApplicationId uint64   `json:"-"`
	Sender        string   `json:"sender"`
	Operation     string   `json:"operation"`
	Args          []string `json:"args,omitempty"`
}

type AccountInput struct {
	ApplicationId uint64 `json:"-"`
	Sender        string `json:"sender"`
}

type InvocationOutput struct {
	ApplicationId uint64 `json:"app-id"`
	Decision      string `json:"decision"`
	Lifecycle     string `json:"lifecycle"`
	Operation     string `json:"operation,omitempty"`
	Round         uint64 `json:"round,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type GlobalValue struct {
	Uint  *uint64 `json:"uint,omitempty"`
	Bytes *string `json:"bytes,omitempty"`
}

type GlobalSchemaOutput struct {
	NumUint      uint64 `json:"num-uint"`
	NumByteSlice uint64 `json:"num-byte-slice"`
}

type ApplicationOutput struct {
	ApplicationId uint64                 `json:"app-id"`
	Address       string                 `json:"address"`
	Contract      string                 `json:"contract"`
	Creator       string                 `json:"creator"`
	CreatedRound  uint64                 `json:"created-round"`
	OptedIn       []string               `json:"opted-in"`
	GlobalSchema  GlobalSchemaOutput     `json:"global-state-schema"`
	GlobalState   map[string]GlobalValue `json:"global-state,omitempty"`
}

func validateApplicationId(applicationId uint64) error {
	if applicationId == 0 {
		return errors.New("application id must be positive")
	}
	return nil
}

func validateSender(sender string) error {
	if _, err := algoTypes.DecodeAddress(sender); err != nil {
		return errors.Wrapf(err, "sender '%s' is not an account address", sender)
	}
	return nil
}

func toRawArgs(args []string) [][]byte {
	res := make([][]byte, 0, len(args))
	for _, arg := range args {
		res = append(res, []byte(arg))
	}
	return res
}

func toInvocationOutput(result *virtualmachine.InvocationResult) *InvocationOutput {
	output := &InvocationOutput{
		ApplicationId: result.ApplicationId,
		Decision:      result.Decision.String(),
		Lifecycle:     result.LifecycleEvent.String(),
		Operation:     result.Operation,
		Round:         result.Round,
	}
	if result.Reason != nil {
		output.Reason = result.Reason.Error()
	}
	return output
}

func toApplicationOutput(app *virtualmachine.ApplicationInfo, values adapter.ApplicationState) *ApplicationOutput {
	output := &ApplicationOutput{
		ApplicationId: app.Id,
		Address:       app.Address,
		Contract:      string(app.Contract.Name),
		Creator:       app.Creator,
		CreatedRound:  app.Round,
		OptedIn:       app.OptedIn,
	}

	schema := app.Contract.GlobalSchema()
	output.GlobalSchema = GlobalSchemaOutput{NumUint: schema.NumUint, NumByteSlice: schema.NumByteSlice}

	if values != nil {
		output.GlobalState = make(map[string]GlobalValue, len(values))
		for key, value := range values {
			v := value
			if v.Type == adapter.VALUE_TYPE_UINT {
				output.GlobalState[key] = GlobalValue{Uint: &v.Uint}
			} else {
				b := string(v.Bytes)
				output.GlobalState[key] = GlobalValue{Bytes: &b}
			}
		}
	}
	return output
}
