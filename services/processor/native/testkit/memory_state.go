// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package testkit

import (
	"sync"
)

// a plain StateSdk for driving the processor without a virtual machine
type MemoryState struct {
	sync.Mutex
	uints  map[string]uint64
	writes int
}

func NewMemoryState() *MemoryState {
	return &MemoryState{
		uints: make(map[string]uint64),
	}
}

func (s *MemoryState) ReadUint64ByKey(key string) (uint64, bool) {
	s.Lock()
	defer s.Unlock()
	v, ok := s.uints[key]
	return v, ok
}

func (s *MemoryState) WriteUint64ByKey(key string, value uint64) {
	s.Lock()
	defer s.Unlock()
	s.writes++
	s.uints[key] = value
}

func (s *MemoryState) Writes() int {
	s.Lock()
	defer s.Unlock()
	return s.writes
}
