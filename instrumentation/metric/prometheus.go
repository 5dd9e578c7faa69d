// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"strconv"
	"strings"
)

/**
Format reference: https://prometheus.io/docs/instrumenting/exposition_formats/
*/
func (r *inMemoryRegistry) ExportPrometheus() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []string
	for _, metric := range r.sorted() {
		rows = append(rows, metric.exportPrometheus(""))
	}

	return strings.Join(rows, "")
}

func (g *Gauge) exportPrometheus(labelString string) string {
	typeRow := prometheusType(g.pName, "gauge")
	if len(labelString) > 0 {
		return typeRow + fmt.Sprintf("%s{%s} %s\n", g.pName, labelString, strconv.FormatInt(g.IntValue(), 10))
	}
	return typeRow + fmt.Sprintf("%s %s\n", g.pName, strconv.FormatInt(g.IntValue(), 10))
}

func (h *Histogram) exportPrometheus(labelString string) string {
	e := h.export()
	rows := prometheusType(h.pName, "summary")
	for _, q := range []struct {
		quantile string
		value    float64
	}{{"0.5", e.P50}, {"0.95", e.P95}, {"0.99", e.P99}} {
		labels := fmt.Sprintf("quantile=\"%s\"", q.quantile)
		if len(labelString) > 0 {
			labels = labelString + "," + labels
		}
		rows += fmt.Sprintf("%s{%s} %s\n", h.pName, labels, strconv.FormatFloat(q.value, 'f', -1, 64))
	}
	rows += fmt.Sprintf("%s_count %d\n", h.pName, e.Samples)
	return rows
}

// Note: rate is not exported
func (r *Rate) exportPrometheus(labelString string) string {
	return ""
}

// Note: text is not exported
func (t *Text) exportPrometheus(labelString string) string {
	return ""
}

func prometheusName(name string) string {
	return strings.Replace(name, ".", "_", -1)
}

func prometheusType(name string, typeString string) string {
	return fmt.Sprintf("# TYPE %s %s\n", prometheusName(name), typeString)
}
