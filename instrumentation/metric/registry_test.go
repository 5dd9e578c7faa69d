// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestInMemoryRegistry_ExportAll(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("hello")
	gauge.Add(1)

	gaugeValue := registry.ExportAll()["hello"].(gaugeExport)
	require.EqualValues(t, gaugeValue.Value, 1)
}

func TestInMemoryRegistry_ExportsHistogramInMillis(t *testing.T) {
	registry := NewRegistry()
	histogram := registry.NewLatency("Processor.Native.ProcessCallTime.Millis", time.Second)
	histogram.Record(int64(20 * time.Millisecond))

	export := registry.ExportAll()["Processor.Native.ProcessCallTime.Millis"].(histogramExport)
	require.EqualValues(t, 1, export.Samples)
	require.InDelta(t, 20, export.Max, 0.5, "max should be about 20ms")
}

func TestInMemoryRegistry_HistogramKeepsSamplesAcrossRotation(t *testing.T) {
	registry := NewRegistry()
	histogram := registry.NewLatency("latency", time.Second)
	histogram.Record(int64(time.Millisecond))
	histogram.Rotate()

	export := registry.ExportAll()["latency"].(histogramExport)
	require.EqualValues(t, 1, export.Samples, "windowed histogram should keep older windows")
}

func TestInMemoryRegistry_ExportPrometheus(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("VirtualMachine.Applications.Count").Update(2)
	registry.NewText("Node.Version.Semantic", "v1.0.0")

	out := registry.ExportPrometheus()
	require.Contains(t, out, "# TYPE VirtualMachine_Applications_Count gauge\n")
	require.Contains(t, out, "VirtualMachine_Applications_Count 2\n")
	require.NotContains(t, out, "Node_Version", "text metrics are not exported to prometheus")
}

func TestText_Update(t *testing.T) {
	registry := NewRegistry()
	text := registry.NewText("Node.Version.Commit", "")
	require.Empty(t, text.Value())

	text.Update("abc123")
	require.Equal(t, "abc123", registry.ExportAll()["Node.Version.Commit"].(textExport).Value)
	require.Contains(t, text.String(), "Node.Version.Commit: abc123")
}
