// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"github.com/orbs-network/orbs-donation-ledger/services/publicapi"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"strconv"
	"strings"
)

const APPLICATIONS_PATH = "/api/v1/applications/"

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) applicationsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		apps, err := s.publicApi.ListApplications(r.Context())
		s.writeResultOrError(w, r, apps, err)
	case http.MethodPost:
		input := &publicapi.CreateApplicationInput{}
		if e := readJsonInput(w, r, input); e != nil {
			s.writeErrorResponseAndLog(w, e)
			return
		}
		output, err := s.publicApi.CreateApplication(r.Context(), input)
		s.writeResultOrError(w, r, output, err)
	default:
		s.methodNotAllowed(w, r)
	}
}

// /api/v1/applications/{id} and /api/v1/applications/{id}/{call|opt-in|close-out|clear}
func (s *HttpServer) applicationHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, APPLICATIONS_PATH), "/"), "/")
	if len(parts) > 2 || parts[0] == "" {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusNotFound, log.String("path", r.URL.Path), "no such endpoint"})
		return
	}

	applicationId, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil || applicationId == 0 {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusBadRequest, log.String("app-id", parts[0]), "application id must be a positive integer"})
		return
	}

	if len(parts) == 1 {
		if r.Method != http.MethodGet {
			s.methodNotAllowed(w, r)
			return
		}
		state, err := s.publicApi.GetApplicationState(r.Context(), applicationId)
		s.writeResultOrError(w, r, state, err)
		return
	}

	if r.Method != http.MethodPost {
		s.methodNotAllowed(w, r)
		return
	}

	switch parts[1] {
	case "call":
		input := &publicapi.CallApplicationInput{}
		if e := readJsonInput(w, r, input); e != nil {
			s.writeErrorResponseAndLog(w, e)
			return
		}
		input.ApplicationId = applicationId
		output, err := s.publicApi.CallApplication(r.Context(), input)
		s.writeResultOrError(w, r, output, err)
	case "opt-in":
		s.accountHandler(w, r, applicationId, s.publicApi.OptIn)
	case "close-out":
		s.accountHandler(w, r, applicationId, s.publicApi.CloseOut)
	case "clear":
		s.accountHandler(w, r, applicationId, s.publicApi.ClearState)
	default:
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusNotFound, log.String("path", r.URL.Path), "no such endpoint"})
	}
}

type accountInvocation func(ctx context.Context, input *publicapi.AccountInput) (*publicapi.InvocationOutput, error)

func (s *HttpServer) accountHandler(w http.ResponseWriter, r *http.Request, applicationId uint64, invoke accountInvocation) {
	input := &publicapi.AccountInput{}
	if e := readJsonInput(w, r, input); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}
	input.ApplicationId = applicationId
	output, err := invoke(r.Context(), input)
	s.writeResultOrError(w, r, output, err)
}

func (s *HttpServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeErrorResponseAndLog(w, &httpErr{http.StatusMethodNotAllowed, log.String("method", r.Method), "method not allowed"})
}
