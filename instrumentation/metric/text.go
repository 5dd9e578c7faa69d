// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/orbs-network/scribe/log"
	"sync/atomic"
)

// a label such as the build version, shown in the json export and the metric log but not in prometheus
type Text struct {
	namedMetric
	value atomic.Value
}

type textExport struct {
	Name  string
	Value string
}

func newText(name string, value string) *Text {
	t := &Text{namedMetric: newNamedMetric(name)}
	t.value.Store(value)
	return t
}

func (t *Text) Update(value string) {
	t.value.Store(value)
}

func (t *Text) Value() string {
	return t.value.Load().(string)
}

func (t *Text) String() string {
	return fmt.Sprintf("metric %s: %s\n", t.name, t.Value())
}

func (t *Text) Export() ExportedMetric {
	return textExport{Name: t.name, Value: t.Value()}
}

func (e textExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", e.Name),
		log.String("metric-type", "text"),
		log.String("text", e.Value),
	}
}
