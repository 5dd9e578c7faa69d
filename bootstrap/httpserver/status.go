// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/scribe/log"
	"net/http"
)

type StatusResponse struct {
	Round        int64
	Applications int64

	PublicApi struct {
		TotalRequests       int64
		RejectedInvocations int64
	}

	StateStorage struct {
		Keys int64
	}

	Version config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	metrics := s.metricRegistry.ExportAll()

	status := StatusResponse{
		Round:        metricGetGaugeValue(s.logger, metrics, "VirtualMachine.Round"),
		Applications: metricGetGaugeValue(s.logger, metrics, "VirtualMachine.Applications.Count"),
		Version:      config.GetVersion(),
	}
	status.PublicApi.TotalRequests = metricGetGaugeValue(s.logger, metrics, "PublicApi.TotalRequests.Count")
	status.PublicApi.RejectedInvocations = metricGetGaugeValue(s.logger, metrics, "PublicApi.TotalRejectedInvocations.Count")
	status.StateStorage.Keys = metricGetGaugeValue(s.logger, metrics, "StateStoragePersistence.TotalNumberOfKeys.Count")

	data, _ := json.MarshalIndent(status, "", "  ")
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing status response", log.Error(err))
	}
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	data, _ := json.MarshalIndent(s.metricRegistry.ExportAll(), "", "  ")
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing metrics response", log.Error(err))
	}
}

func (s *HttpServer) dumpPrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(s.metricRegistry.ExportPrometheus())); err != nil {
		s.logger.Info("error writing prometheus metrics response", log.Error(err))
	}
}

// a gauge that was never registered reads as zero
func metricGetGaugeValue(logger log.Logger, metrics map[string]metric.ExportedMetric, name string) int64 {
	m, found := metrics[name]
	if !found {
		logger.Info("could not retrieve metric", log.String("metric", name))
		return 0
	}

	for _, field := range m.LogRow() {
		if field.Key == "gauge" {
			return field.Int
		}
	}
	return 0
}
