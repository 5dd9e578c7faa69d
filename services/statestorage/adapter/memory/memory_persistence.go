// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"fmt"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"sort"
	"strings"
	"sync"
)

type metrics struct {
	numberOfKeys         *metric.Gauge
	numberOfApplications *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		numberOfKeys:         m.NewGauge("StateStoragePersistence.TotalNumberOfKeys.Count"),
		numberOfApplications: m.NewGauge("StateStoragePersistence.TotalNumberOfApplications.Count"),
	}
}

type InMemoryStatePersistence struct {
	metrics   *metrics
	mutex     sync.RWMutex
	fullState map[uint64]adapter.ApplicationState
	round     uint64
}

func NewStatePersistence(metricFactory metric.Factory) *InMemoryStatePersistence {
	return &InMemoryStatePersistence{
		metrics:   newMetrics(metricFactory),
		fullState: make(map[uint64]adapter.ApplicationState),
		round:     0,
	}
}

func (sp *InMemoryStatePersistence) reportSize() {
	nApplications := 0
	nKeys := 0
	for _, records := range sp.fullState {
		nApplications++
		nKeys = nKeys + len(records)
	}
	sp.metrics.numberOfKeys.Update(int64(nKeys))
	sp.metrics.numberOfApplications.Update(int64(nApplications))
}

func (sp *InMemoryStatePersistence) Write(round uint64, diff adapter.StateDiff) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	sp.round = round

	for applicationId, records := range diff {
		for key, value := range records {
			sp._writeOneRecord(applicationId, key, value)
		}
	}
	sp.reportSize()
	return nil
}

func (sp *InMemoryStatePersistence) _writeOneRecord(applicationId uint64, key string, value adapter.Value) {
	if _, ok := sp.fullState[applicationId]; !ok {
		sp.fullState[applicationId] = adapter.ApplicationState{}
	}

	// values are copied so callers cannot mutate committed state through a shared slice
	if value.Type == adapter.VALUE_TYPE_BYTES {
		value.Bytes = append([]byte{}, value.Bytes...)
	}
	sp.fullState[applicationId][key] = value
}

func (sp *InMemoryStatePersistence) Read(applicationId uint64, key string) (adapter.Value, bool, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	record, ok := sp.fullState[applicationId][key]
	return record, ok, nil
}

func (sp *InMemoryStatePersistence) ReadApplication(applicationId uint64) (adapter.ApplicationState, bool, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	records, ok := sp.fullState[applicationId]
	if !ok {
		return nil, false, nil
	}

	res := make(adapter.ApplicationState, len(records))
	for k, v := range records {
		res[k] = v
	}
	return res, true, nil
}

func (sp *InMemoryStatePersistence) ReadRound() (uint64, error) {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	return sp.round, nil
}

func (sp *InMemoryStatePersistence) Remove(applicationId uint64) error {
	sp.mutex.Lock()
	defer sp.mutex.Unlock()

	delete(sp.fullState, applicationId)
	sp.reportSize()
	return nil
}

func (sp *InMemoryStatePersistence) Dump() string {
	sp.mutex.RLock()
	defer sp.mutex.RUnlock()

	output := strings.Builder{}
	output.WriteString("{")
	output.WriteString(fmt.Sprintf("round: %v, data: {", sp.round))
	applications := make([]uint64, 0, len(sp.fullState))
	for id := range sp.fullState {
		applications = append(applications, id)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i] < applications[j] })
	for _, applicationId := range applications {
		keys := make([]string, 0, len(sp.fullState[applicationId]))
		for k := range sp.fullState[applicationId] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		output.WriteString(fmt.Sprintf("%d:{", applicationId))
		for _, k := range keys {
			output.WriteString(k)
			output.WriteString(":")
			output.WriteString(sp.fullState[applicationId][k].String())
			output.WriteString(",")
		}
		output.WriteString("},")
	}
	output.WriteString("}}")
	return output.String()
}
