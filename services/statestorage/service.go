// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

var LogTag = log.Service("state-storage")

type Service struct {
	logger      log.Logger
	persistence adapter.StatePersistence

	mutex sync.RWMutex
}

func NewStateStorage(persistence adapter.StatePersistence, parentLogger log.Logger) *Service {
	return &Service{
		persistence: persistence,
		logger:      parentLogger.WithTags(LogTag),
	}
}

// diffs must arrive in round order, each round exactly one above the last committed one
func (s *Service) CommitStateDiff(round uint64, diff adapter.StateDiff) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lastCommittedRound, err := s.persistence.ReadRound()
	if err != nil {
		return errors.Wrap(err, "could not read last committed round")
	}

	if round != lastCommittedRound+1 {
		return errors.Errorf("expected to commit round %d, got %d", lastCommittedRound+1, round)
	}

	if err := s.persistence.Write(round, diff); err != nil {
		return errors.Wrapf(err, "could not write state diff of round %d", round)
	}

	s.logger.Info("committed state diff", logfields.Round(round), log.Int("num-applications", len(diff)))
	return nil
}

func (s *Service) ReadKey(applicationId uint64, key string) (adapter.Value, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.persistence.Read(applicationId, key)
}

func (s *Service) GetGlobalState(applicationId uint64) (adapter.ApplicationState, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	state, found, err := s.persistence.ReadApplication(applicationId)
	if err != nil {
		return nil, err
	}
	if !found {
		return adapter.ApplicationState{}, nil
	}
	return state, nil
}

func (s *Service) GetRound() (uint64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.persistence.ReadRound()
}

func (s *Service) RemoveApplication(applicationId uint64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.persistence.Remove(applicationId)
}
