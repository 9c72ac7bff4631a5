// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package upstream is an internal helper for the test packages.
// This package starts a fake SnappCar search API on a local httptest
// server, records the query parameters of all received requests, and
// replies with a configurable status code and body.
// It may be used in all test suites which need to exercise the search
// client without reaching the real API.
package upstream

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// SearchPath is the endpoint which is served by the fake API.
const SearchPath = "/search/query"

// Server is a fake search API.
type Server struct {
	*httptest.Server

	t        *testing.T
	mu       sync.Mutex
	status   int
	body     string
	requests []url.Values
	gate     chan struct{}
}

// New starts a fake search API which replies with an empty results
// envelope until Respond is called. The server is closed when the t
// test finishes.
func New(t *testing.T) *Server {
	s := &Server{t: t, status: http.StatusOK, body: Body()}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != SearchPath || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.Query())
	status, body, gate := s.status, s.body, s.gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// Respond configures the status code and body of the next replies.
func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

// Hold makes the next requests to wait until the returned release
// function is called (or their client gives up). Calling release more
// than once is harmless and it is called automatically when the test
// finishes.
func (s *Server) Hold() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()
	var once sync.Once
	release = func() {
		once.Do(func() {
			s.mu.Lock()
			s.gate = nil
			s.mu.Unlock()
			close(gate)
		})
	}
	s.t.Cleanup(release)
	return release
}

// Requests returns the query parameters of all received requests.
func (s *Server) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.requests...)
}

// Count returns the number of received search requests.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Body returns a results envelope with one minimal record per given
// correlation id.
func Body(cis ...string) string {
	records := make([]string, 0, len(cis))
	for _, ci := range cis {
		records = append(records, fmt.Sprintf(`{"ci":%q}`, ci))
	}
	return `{"results":[` + strings.Join(records, ",") + `]}`
}
