// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGauge_TracksApplicationCount(t *testing.T) {
	g := newGauge("VirtualMachine.Applications.Count")
	g.Inc()
	g.Inc()
	g.Dec()
	require.EqualValues(t, 1, g.IntValue())

	g.Add(4)
	require.EqualValues(t, 5, g.IntValue())

	g.Update(2)
	require.EqualValues(t, 2, g.IntValue(), "update overwrites the count")
}

func TestGauge_ExportsValue(t *testing.T) {
	g := newGauge("VirtualMachine.Round")
	g.Update(17)

	row := g.Export().LogRow()
	require.Equal(t, "gauge", row[2].Key)
	require.EqualValues(t, 17, row[2].Int)

	require.Equal(t, "# TYPE VirtualMachine_Round gauge\nVirtualMachine_Round 17\n", g.exportPrometheus(""))
	require.Equal(t, "# TYPE VirtualMachine_Round gauge\nVirtualMachine_Round{node=\"a\"} 17\n", g.exportPrometheus("node=\"a\""))
}
