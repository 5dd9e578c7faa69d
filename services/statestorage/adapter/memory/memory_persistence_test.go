// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWriteAndReadBack(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())

	err := d.Write(1, adapter.StateDiff{
		7: {"TotalDonations": adapter.UintValue(0)},
	})
	require.NoError(t, err)

	value, found, err := d.Read(7, "TotalDonations")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, adapter.UintValue(0).Equal(value))

	round, err := d.ReadRound()
	require.NoError(t, err)
	require.EqualValues(t, 1, round)
}

func TestReadMissingKeysAndApplications(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, d.Write(1, adapter.StateDiff{1: {"a": adapter.UintValue(3)}}))

	_, found, err := d.Read(1, "b")
	require.NoError(t, err)
	require.False(t, found, "missing key")

	_, found, err = d.Read(2, "a")
	require.NoError(t, err)
	require.False(t, found, "missing application")

	_, found, err = d.ReadApplication(2)
	require.NoError(t, err)
	require.False(t, found)
}

func TestReadApplicationReturnsACopy(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, d.Write(1, adapter.StateDiff{1: {"a": adapter.UintValue(3)}}))

	state, found, err := d.ReadApplication(1)
	require.NoError(t, err)
	require.True(t, found)
	state["a"] = adapter.UintValue(100)

	value, _, _ := d.Read(1, "a")
	require.EqualValues(t, 3, value.Uint, "committed state must not change through a read result")
}

func TestWrittenBytesAreCopied(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())
	raw := []byte("abc")
	require.NoError(t, d.Write(1, adapter.StateDiff{1: {"a": adapter.BytesValue(raw)}}))

	raw[0] = 'z'

	value, _, _ := d.Read(1, "a")
	require.Equal(t, []byte("abc"), value.Bytes)
}

func TestRemoveDropsTheApplication(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, d.Write(1, adapter.StateDiff{1: {"a": adapter.UintValue(3)}, 2: {"b": adapter.UintValue(4)}}))

	require.NoError(t, d.Remove(1))

	_, found, _ := d.ReadApplication(1)
	require.False(t, found)
	_, found, _ = d.ReadApplication(2)
	require.True(t, found)
}

func TestGaugesTrackSize(t *testing.T) {
	registry := metric.NewRegistry()
	d := NewStatePersistence(registry)
	require.NoError(t, d.Write(1, adapter.StateDiff{1: {"a": adapter.UintValue(3), "b": adapter.UintValue(4)}, 2: {"c": adapter.UintValue(5)}}))

	require.EqualValues(t, 3, d.metrics.numberOfKeys.IntValue())
	require.EqualValues(t, 2, d.metrics.numberOfApplications.IntValue())
}

func TestDumpIsSorted(t *testing.T) {
	d := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, d.Write(4, adapter.StateDiff{
		2: {"z": adapter.UintValue(1), "a": adapter.BytesValue([]byte("x"))},
		1: {"TotalDonations": adapter.UintValue(2)},
	}))

	require.Equal(t, `{round: 4, data: {1:{TotalDonations:2,},2:{a:"x",z:1,},}}`, d.Dump())
}
