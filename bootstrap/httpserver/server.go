// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/logfields"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/metric"
	"github.com/orbs-network/orbs-donation-ledger/instrumentation/trace"
	"github.com/orbs-network/orbs-donation-ledger/services/publicapi"
	"github.com/orbs-network/orbs-donation-ledger/services/virtualmachine"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
	"net"
	"net/http"
	"time"
)

var LogTag = log.String("adapter", "http-server")

const MAX_REQUEST_BODY_BYTES = 1 << 20

type PublicApi interface {
	CreateApplication(ctx context.Context, input *publicapi.CreateApplicationInput) (*publicapi.InvocationOutput, error)
	CallApplication(ctx context.Context, input *publicapi.CallApplicationInput) (*publicapi.InvocationOutput, error)
	OptIn(ctx context.Context, input *publicapi.AccountInput) (*publicapi.InvocationOutput, error)
	CloseOut(ctx context.Context, input *publicapi.AccountInput) (*publicapi.InvocationOutput, error)
	ClearState(ctx context.Context, input *publicapi.AccountInput) (*publicapi.InvocationOutput, error)
	GetApplicationState(ctx context.Context, applicationId uint64) (*publicapi.ApplicationOutput, error)
	ListApplications(ctx context.Context) ([]*publicapi.ApplicationOutput, error)
}

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

type errorResponse struct {
	Error string `json:"error"`
}

type HttpServer struct {
	govnr.TreeSupervisor

	httpServer     *http.Server
	logger         log.Logger
	publicApi      PublicApi
	metricRegistry metric.Registry
	config         config.HttpServerConfig
	limiter        *rate.Limiter
	metrics        *metrics

	cancelServe context.CancelFunc
	port        int
}

type metrics struct {
	throttled *metric.Gauge
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	if err := tc.SetKeepAlive(true); err != nil {
		return nil, err
	}
	if err := tc.SetKeepAlivePeriod(35 * time.Second); err != nil {
		return nil, err
	}
	return tc, nil
}

func NewHttpServer(ctx context.Context, cfg config.HttpServerConfig, parentLogger log.Logger, publicApi PublicApi, metricRegistry metric.Registry) (*HttpServer, error) {
	logger := parentLogger.WithTags(LogTag)

	s := &HttpServer{
		logger:         logger,
		publicApi:      publicApi,
		metricRegistry: metricRegistry,
		config:         cfg,
		limiter:        rate.NewLimiter(rate.Limit(cfg.HttpRequestsPerSecond()), int(cfg.HttpBurst())),
		metrics:        &metrics{throttled: metricRegistry.NewGauge("HttpServer.ThrottledRequests.Count")},
	}

	// not ListenAndServe: a bad address must fail here and not in the serving goroutine
	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", cfg.HttpAddress())
	}
	s.port = listener.Addr().(*net.TCPAddr).Port
	s.httpServer = &http.Server{
		Handler: s.createRouter(),
	}

	serveCtx, cancel := context.WithCancel(ctx)
	s.cancelServe = cancel
	s.Supervise(govnr.Forever(serveCtx, "http server", logfields.GovnrErrorer(logger), func() {
		err := s.httpServer.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)})
		if err != nil && err != http.ErrServerClosed && serveCtx.Err() == nil {
			logger.Error("http server stopped serving", log.Error(err))
		}
		<-serveCtx.Done()
	}))

	logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", s.port))
	return s, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	s.cancelServe()
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := http.NewServeMux()
	router.Handle("/api/v1/applications", s.api(s.applicationsHandler))
	router.Handle("/api/v1/applications/", s.api(s.applicationHandler))
	router.Handle("/metrics", http.HandlerFunc(wrapHandlerWithCORS(s.dumpMetrics)))
	router.Handle("/metrics.prometheus", http.HandlerFunc(wrapHandlerWithCORS(s.dumpPrometheusMetrics)))
	router.Handle("/status", http.HandlerFunc(wrapHandlerWithCORS(s.getStatus)))
	router.Handle("/robots.txt", http.HandlerFunc(s.robots))
	return router
}

// api endpoints are throttled and run under a request context of their own
func (s *HttpServer) api(f func(w http.ResponseWriter, r *http.Request)) http.Handler {
	return http.HandlerFunc(wrapHandlerWithCORS(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.metrics.throttled.Inc()
			s.writeErrorResponseAndLog(w, &httpErr{http.StatusTooManyRequests, log.String("path", r.URL.Path), "request rate limit exceeded"})
			return
		}
		f(w, r.WithContext(trace.NewContext(r.Context(), r.Method+" "+r.URL.Path)))
	}))
}

func readJsonInput(w http.ResponseWriter, r *http.Request, into interface{}) *httpErr {
	if r.Body == nil {
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_REQUEST_BODY_BYTES))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		return &httpErr{http.StatusBadRequest, log.Error(err), "http request body is not valid json"}
	}
	return nil
}

func translateErrorToHttpCode(err error) int {
	switch {
	case errors.Is(err, publicapi.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, virtualmachine.ErrApplicationNotFound), errors.Is(err, virtualmachine.ErrContractNotFound):
		return http.StatusNotFound
	case errors.Is(err, virtualmachine.ErrShuttingDown), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *HttpServer) writeJsonResponse(ctx context.Context, w http.ResponseWriter, code int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "could not encode response"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", log.Error(err), trace.LogFieldFrom(ctx))
	}
}

func (s *HttpServer) writeResultOrError(w http.ResponseWriter, r *http.Request, result interface{}, err error) {
	if err != nil {
		code := translateErrorToHttpCode(err)
		if code == http.StatusInternalServerError {
			s.logger.Error("request failed", log.Error(err), trace.LogFieldFrom(r.Context()))
		} else {
			s.logger.Info("request refused", log.Error(err), log.Int("status", code), trace.LogFieldFrom(r.Context()))
		}
		s.writeJsonResponse(r.Context(), w, code, errorResponse{Error: err.Error()})
		return
	}
	s.writeJsonResponse(r.Context(), w, http.StatusOK, result)
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}

	data, _ := json.Marshal(errorResponse{Error: m.message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

// Allows handler to be called via XHR requests from any host
func wrapHandlerWithCORS(f func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
		} else {
			f(w, r)
		}
	}
}
