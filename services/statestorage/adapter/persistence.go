// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"bytes"
	"fmt"
)

type ValueType uint8

const (
	VALUE_TYPE_UINT ValueType = iota
	VALUE_TYPE_BYTES
)

// a global state value, either of the two kinds an application can store
type Value struct {
	Type  ValueType
	Uint  uint64
	Bytes []byte
}

func UintValue(v uint64) Value {
	return Value{Type: VALUE_TYPE_UINT, Uint: v}
}

func BytesValue(v []byte) Value {
	return Value{Type: VALUE_TYPE_BYTES, Bytes: v}
}

func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	if v.Type == VALUE_TYPE_UINT {
		return v.Uint == other.Uint
	}
	return bytes.Equal(v.Bytes, other.Bytes)
}

func (v Value) String() string {
	if v.Type == VALUE_TYPE_UINT {
		return fmt.Sprintf("%d", v.Uint)
	}
	return fmt.Sprintf("%q", v.Bytes)
}

type ApplicationState map[string]Value

// keyed by application id
type StateDiff map[uint64]ApplicationState

type StatePersistence interface {
	Write(round uint64, diff StateDiff) error
	Read(applicationId uint64, key string) (Value, bool, error)
	ReadApplication(applicationId uint64) (ApplicationState, bool, error)
	ReadRound() (uint64, error)
	Remove(applicationId uint64) error
	Dump() string
}
