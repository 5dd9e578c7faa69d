// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/pkg/errors"
	"strings"
)

type Effect uint8

const (
	EFFECT_NONE Effect = iota
	EFFECT_INCREMENT_COUNTER
)

func (e Effect) String() string {
	switch e {
	case EFFECT_NONE:
		return "EFFECT_NONE"
	case EFFECT_INCREMENT_COUNTER:
		return "EFFECT_INCREMENT_COUNTER"
	}
	return "EFFECT_UNKNOWN"
}

type UnknownOperationPolicy uint8

const (
	UNKNOWN_OPERATION_REJECT UnknownOperationPolicy = iota
	UNKNOWN_OPERATION_ACCEPT
)

func (p UnknownOperationPolicy) String() string {
	if p == UNKNOWN_OPERATION_ACCEPT {
		return "accept"
	}
	return "reject"
}

func ParseUnknownOperationPolicy(value string) (UnknownOperationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "reject":
		return UNKNOWN_OPERATION_REJECT, nil
	case "accept":
		return UNKNOWN_OPERATION_ACCEPT, nil
	}
	return UNKNOWN_OPERATION_REJECT, errors.Errorf("unknown operation policy must be 'reject' or 'accept', got '%s'", value)
}
