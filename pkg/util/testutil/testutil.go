// Copyright 2026, The heroku-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil holds helpers shared by the endpoint package tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heroku-go/heroku/pkg/client"
)

// AssertEndpoint checks the method and resolved path of d, and that the pair names a known API endpoint.
func AssertEndpoint(t *testing.T, d client.Descriptor, method, path string) {
	t.Helper()

	assert.Equal(t, method, d.Method())
	assert.Equal(t, path, d.Path())
	assert.NotContains(t, d.Path(), "%!", "unresolved format verb in %s", d.Path())
	assert.NotContains(t, d.Path(), "{", "unresolved placeholder in %s", d.Path())
	assert.NotEqual(t, "unknown", client.EndpointName(d.Method(), d.Path()),
		"%s %s does not match a known endpoint", d.Method(), d.Path())
}

// BodyJSON returns the request body of d encoded as it would be sent.
func BodyJSON(t *testing.T, d client.Descriptor) string {
	t.Helper()

	require.NotNil(t, d.Body(), "%s %s has no body", d.Method(), d.Path())
	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(d.Body())
	require.NoError(t, err)
	return string(b)
}

// BodyMap decodes the request body of d into a generic map, for checking which keys are present.
func BodyMap(t *testing.T, d client.Descriptor) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(BodyJSON(t, d), &m))
	return m
}

// Recorded is a request received by a Server.
type Recorded struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is a fake Platform API answering every request with a fixed response.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Recorded
}

// NewServer starts a fake API replying with status and body. It is closed when the test ends.
func NewServer(t *testing.T, status int, body string) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		b, err := io.ReadAll(req.Body)
		assert.NoError(t, err)

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method:   req.Method,
			Path:     strings.TrimPrefix(req.URL.EscapedPath(), "/"),
			RawQuery: req.URL.RawQuery,
			Header:   req.Header.Clone(),
			Body:     b,
		})
		s.mu.Unlock()

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)
		_, _ = rw.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

// Client returns an API client talking to s.
func (s *Server) Client() *client.Client {
	return client.NewClient(s.URL, "test-token", client.WithHTTPClient(s.Server.Client()))
}

// Last returns the most recent request received by s.
func (s *Server) Last(t *testing.T) Recorded {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests, "no request received")
	return s.requests[len(s.requests)-1]
}
