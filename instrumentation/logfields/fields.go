// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"fmt"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
)

func ApplicationId(value uint64) *log.Field {
	return log.Uint64("app-id", value)
}

func Contract(name primitives.ContractName) *log.Field {
	return log.String("contract", string(name))
}

func Operation(name string) *log.Field {
	return log.String("operation", name)
}

func Round(value uint64) *log.Field {
	return log.Uint64("round", value)
}

func Sender(value string) *log.Field {
	return log.String("sender", value)
}

type ErrorLogger interface {
	Error(message string, fields ...*log.Field)
}

type govnrErrorer struct {
	logger ErrorLogger
}

func (h *govnrErrorer) Error(err error) {
	h.logger.Error("recovered panic", log.Error(err))
}

func GovnrErrorer(logger ErrorLogger) govnr.Errorer {
	return &govnrErrorer{logger}
}

func Decision(value fmt.Stringer) *log.Field {
	return log.String("decision", value.String())
}
