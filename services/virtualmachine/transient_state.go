// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"sort"
)

type committedStateReader interface {
	ReadKey(applicationId uint64, key string) (adapter.Value, bool, error)
}

// writes of one invocation on top of committed state, merged only if the approval program accepts
type transientState struct {
	applicationId uint64
	committed     committedStateReader
	dirty         map[string]adapter.Value
	readErr       error
}

func newTransientState(applicationId uint64, committed committedStateReader) *transientState {
	return &transientState{
		applicationId: applicationId,
		committed:     committed,
		dirty:         make(map[string]adapter.Value),
	}
}

func (s *transientState) getValue(key string) (adapter.Value, bool) {
	if value, found := s.dirty[key]; found {
		return value, true
	}
	if s.committed == nil {
		return adapter.Value{}, false
	}
	value, found, err := s.committed.ReadKey(s.applicationId, key)
	if err != nil {
		s.readErr = err
		return adapter.Value{}, false
	}
	return value, found
}

func (s *transientState) setValue(key string, value adapter.Value) {
	s.dirty[key] = value
}

func (s *transientState) ReadUint64ByKey(key string) (uint64, bool) {
	value, found := s.getValue(key)
	if !found || value.Type != adapter.VALUE_TYPE_UINT {
		return 0, false
	}
	return value.Uint, true
}

func (s *transientState) WriteUint64ByKey(key string, value uint64) {
	s.setValue(key, adapter.UintValue(value))
}

func (s *transientState) forDirty(f func(key string, value adapter.Value)) {
	keys := make([]string, 0, len(s.dirty))
	for k := range s.dirty {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f(k, s.dirty[k])
	}
}

func (s *transientState) stateDiff() adapter.StateDiff {
	if len(s.dirty) == 0 {
		return adapter.StateDiff{}
	}
	records := make(adapter.ApplicationState, len(s.dirty))
	s.forDirty(func(key string, value adapter.Value) {
		records[key] = value
	})
	return adapter.StateDiff{s.applicationId: records}
}
