// Copyright 2019 the orbs-donation-ledger authors
// This file is part of the orbs-donation-ledger library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-donation-ledger/config"
	"github.com/orbs-network/orbs-donation-ledger/test/with"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type algodConfigForTests struct {
	address string
}

func (c *algodConfigForTests) AlgodAddress() string                { return c.address }
func (c *algodConfigForTests) AlgodToken() string                  { return "a-token" }
func (c *algodConfigForTests) AlgodRequestTimeout() time.Duration { return time.Second }

var _ config.AlgodConfig = &algodConfigForTests{}

func TestAlgodCompiler_PostsSourceAndDecodesResult(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		var receivedSource string
		var receivedToken string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := ioutil.ReadAll(r.Body)
			receivedSource = string(body)
			receivedToken = r.Header.Get("X-Algo-API-Token")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"hash":   "PROGRAMHASH",
				"result": base64.StdEncoding.EncodeToString([]byte{0x05, 0x81, 0x01}),
			})
		}))
		defer server.Close()

		compiler, err := NewAlgodCompiler(&algodConfigForTests{address: server.URL}, harness.Logger)
		require.NoError(t, err)

		compiled, err := compiler.Compile(context.Background(), "#pragma version 5\nint 1\nreturn\n")
		require.NoError(t, err)

		require.Equal(t, "#pragma version 5\nint 1\nreturn\n", receivedSource)
		require.Equal(t, "a-token", receivedToken)
		require.Equal(t, "PROGRAMHASH", compiled.Hash)
		require.Equal(t, []byte{0x05, 0x81, 0x01}, compiled.Bytecode)
	})
}

func TestAlgodCompiler_ReportsCompilerErrors(t *testing.T) {
	with.Logging(t, func(harness *with.LoggingHarness) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"1: unknown opcode"}`))
		}))
		defer server.Close()

		compiler, err := NewAlgodCompiler(&algodConfigForTests{address: server.URL}, harness.Logger)
		require.NoError(t, err)

		_, err = compiler.Compile(context.Background(), "#pragma version 5\nbogus\n")
		require.Error(t, err)
	})
}

func TestCompilerMock_ReturnsConfiguredProgram(t *testing.T) {
	m := &CompilerMock{}
	m.When("Compile", mock.Any, "src").Return(&CompiledProgram{Hash: "H"}, nil).Times(1)

	compiled, err := m.Compile(context.Background(), "src")
	require.NoError(t, err)
	require.Equal(t, "H", compiled.Hash)

	ok, callErr := m.Verify()
	require.True(t, ok)
	require.NoError(t, callErr)
}
