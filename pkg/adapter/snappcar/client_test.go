// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package snappcar_test

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/momeni/snappauto/internal/test/upstream"
	"github.com/momeni/snappauto/pkg/adapter/snappcar"
	"github.com/momeni/snappauto/pkg/core/cerr"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utrechtQuery() model.SearchQuery {
	return model.SearchQuery{
		Limit:       10,
		Offset:      0,
		Country:     "NL",
		Coordinate:  model.Coordinate{Lat: 52.0907, Lon: 5.1214},
		MaxDistance: 3000,
		Sort:        model.SortOptionRecommended,
		Order:       model.OrderAsc,
	}
}

type recorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recorder) ObserveSearch(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func newClient(t *testing.T, baseURL string, o snappcar.Observer) *snappcar.Client {
	opts := []snappcar.Option{snappcar.WithBaseURL(baseURL)}
	if o != nil {
		opts = append(opts, snappcar.WithObserver(o))
	}
	c, err := snappcar.New(opts...)
	require.NoError(t, err, "cannot create client")
	return c
}

func TestSearchSendsQueryParameters(t *testing.T) {
	srv := upstream.New(t)
	srv.Respond(http.StatusOK, upstream.Body("abc", "def"))
	c := newClient(t, srv.URL, nil)

	results, err := c.Search(context.Background(), utrechtQuery())
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NotNil(t, results[0].CI)
	assert.Equal(t, "abc", *results[0].CI)
	assert.Equal(t, "def", *results[1].CI)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, url.Values{
		"sort":         {"Recommended"},
		"order":        {"asc"},
		"country":      {"NL"},
		"lat":          {"52.0907"},
		"lng":          {"5.1214"},
		"max-distance": {"3000"},
		"limit":        {"10"},
		"offset":       {"0"},
	}, reqs[0])
}

func TestSearchKeepsBasePath(t *testing.T) {
	srv := upstream.New(t)
	c := newClient(t, srv.URL+"/v2", nil)
	_, err := c.Search(context.Background(), utrechtQuery())
	// the fake API only serves /search/query, so /v2/search/query is 404
	require.ErrorIs(t, err, cerr.ErrInvalidResponse)
	assert.Equal(t, 0, srv.Count())
}

func TestSearchEmptyResults(t *testing.T) {
	srv := upstream.New(t)
	c := newClient(t, srv.URL, nil)
	results, err := c.Search(context.Background(), utrechtQuery())
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchInvalidResponse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: 500, body: `{"results":[]}`},
		{name: "not found", status: 404, body: "not found"},
		{name: "redirect-like status", status: 304, body: ""},
		{name: "not json", status: 200, body: "<html></html>"},
		{name: "missing results", status: 200, body: `{"items":[]}`},
		{name: "null results", status: 200, body: `{"results":null}`},
		{name: "results is not a list", status: 200, body: `{"results":{}}`},
		{name: "wrong field type", status: 200, body: `{"results":[{"ci":5}]}`},
		{name: "null record", status: 200, body: `{"results":[{"ci":"a"},null]}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := upstream.New(t)
			srv.Respond(tc.status, tc.body)
			rec := &recorder{}
			c := newClient(t, srv.URL, rec)
			results, err := c.Search(context.Background(), utrechtQuery())
			assert.Nil(t, results)
			assert.ErrorIs(t, err, cerr.ErrInvalidResponse)
			assert.Equal(t, []string{snappcar.OutcomeInvalidResponse}, rec.outcomes)
		})
	}
}

func TestSearchInvalidURL(t *testing.T) {
	for _, tc := range []struct {
		name    string
		baseURL string
		query   func(q *model.SearchQuery)
	}{
		{name: "relative base", baseURL: "api.snappcar.nl/v2"},
		{name: "unparsable base", baseURL: "http://[::1"},
		{name: "control character", baseURL: "http://example.com/\x7f"},
		{
			name:    "invalid sort",
			baseURL: "http://127.0.0.1:1",
			query:   func(q *model.SearchQuery) { q.Sort = model.SortOptionInvalid },
		},
		{
			name:    "invalid order",
			baseURL: "http://127.0.0.1:1",
			query:   func(q *model.SearchQuery) { q.Order = model.OrderInvalid },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			c := newClient(t, tc.baseURL, rec)
			q := utrechtQuery()
			if tc.query != nil {
				tc.query(&q)
			}
			_, err := c.Search(context.Background(), q)
			assert.ErrorIs(t, err, cerr.ErrInvalidURL)
			assert.Equal(t, []string{snappcar.OutcomeInvalidURL}, rec.outcomes)
		})
	}
}

func TestSearchCanceled(t *testing.T) {
	srv := upstream.New(t)
	release := srv.Hold()
	defer release()
	rec := &recorder{}
	c := newClient(t, srv.URL, rec)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	_, err := c.Search(ctx, utrechtQuery())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{snappcar.OutcomeCanceled}, rec.outcomes)
}

func TestSearchTransportError(t *testing.T) {
	srv := upstream.New(t)
	base := srv.URL
	srv.Close()
	rec := &recorder{}
	c := newClient(t, base, rec)
	_, err := c.Search(context.Background(), utrechtQuery())
	require.Error(t, err)
	assert.NotErrorIs(t, err, cerr.ErrInvalidResponse)
	assert.NotErrorIs(t, err, cerr.ErrInvalidURL)
	assert.Equal(t, []string{snappcar.OutcomeTransport}, rec.outcomes)
}

func TestNewOptions(t *testing.T) {
	_, err := snappcar.New(snappcar.WithBaseURL(""))
	assert.Error(t, err, "empty base URL must be rejected")
	_, err = snappcar.New(
		snappcar.WithBaseURL("http://a"), snappcar.WithBaseURL("http://b"),
	)
	assert.Error(t, err, "base URL may be configured once")
	_, err = snappcar.New(snappcar.WithTimeout(0))
	assert.Error(t, err, "zero timeout must be rejected")
	_, err = snappcar.New(
		snappcar.WithHTTPClient(http.DefaultClient),
		snappcar.WithTimeout(time.Second),
	)
	assert.Error(t, err, "timeout conflicts with a custom HTTP client")
	_, err = snappcar.New(snappcar.WithObserver(nil))
	assert.Error(t, err, "nil observer must be rejected")
	c, err := snappcar.New(snappcar.WithTimeout(time.Second))
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
