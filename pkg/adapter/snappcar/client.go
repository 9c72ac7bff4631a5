// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package snappcar is an adapter for the SnappCar rental cars search
// REST API. The Client sends one GET request per search and decodes
// the JSON response into the wire records of this package, while the
// Mapper converts those wire records into the model layer
// SearchResult records.
package snappcar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/snappauto/pkg/core/cerr"
	"github.com/momeni/snappauto/pkg/core/model"
)

// DefaultBaseURL is the search API endpoint which is used when no
// WithBaseURL option is given.
const DefaultBaseURL = "https://api.snappcar.nl/v2"

// Outcome labels which are reported to an Observer.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidURL      = "invalid_url"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeCanceled        = "canceled"
	OutcomeTransport       = "transport"
)

// Observer is notified about every finished search request, e.g.,
// in order to record metrics.
type Observer interface {
	ObserveSearch(outcome string, elapsed time.Duration)
}

// Client sends search requests to the SnappCar API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

// New instantiates a search API client. Without options, it sends
// requests to DefaultBaseURL using an http.Client with the transport
// defaults (and no timeout).
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c, nil
}

// Search sends a GET request to the <base>/search/query endpoint with
// the q parameters and returns the decoded result records.
// Errors wrap cerr.ErrInvalidURL if the request URL cannot be built
// and cerr.ErrInvalidResponse if the status code is not 2xx or the
// body is not a results envelope. Cancellation of ctx is reported by
// an error which wraps the context.Canceled error.
func (c *Client) Search(
	ctx context.Context, q model.SearchQuery,
) ([]Result, error) {
	start := time.Now()
	results, err := c.search(ctx, q)
	if c.observer != nil {
		c.observer.ObserveSearch(outcome(err), time.Since(start))
	}
	return results, err
}

func (c *Client) search(
	ctx context.Context, q model.SearchQuery,
) ([]Result, error) {
	u, err := c.queryURL(q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", cerr.ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf(
			"%w: unexpected status code %d: %s",
			cerr.ErrInvalidResponse, resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf(
			"%w: decoding response body: %w", cerr.ErrInvalidResponse, err,
		)
	}
	if env.Results == nil {
		return nil, fmt.Errorf(
			"%w: missing results key", cerr.ErrInvalidResponse,
		)
	}
	results := make([]Result, len(*env.Results))
	for i, r := range *env.Results {
		if r == nil {
			return nil, fmt.Errorf(
				"%w: null record at results[%d]", cerr.ErrInvalidResponse, i,
			)
		}
		results[i] = *r
	}
	return results, nil
}

// queryURL derives the search query URL from the base URL. Numbers are
// formatted in their shortest decimal representation.
func (c *Client) queryURL(q model.SearchQuery) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: parsing base URL: %w", cerr.ErrInvalidURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf(
			"%w: base URL %q is not absolute", cerr.ErrInvalidURL, c.baseURL,
		)
	}
	if err := q.Sort.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", cerr.ErrInvalidURL, err)
	}
	if err := q.Order.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", cerr.ErrInvalidURL, err)
	}
	u := base.JoinPath("search", "query")
	v := url.Values{}
	v.Set("sort", q.Sort.String())
	v.Set("order", q.Order.String())
	v.Set("country", q.Country)
	v.Set("lat", strconv.FormatFloat(q.Coordinate.Lat, 'f', -1, 64))
	v.Set("lng", strconv.FormatFloat(q.Coordinate.Lon, 'f', -1, 64))
	v.Set("max-distance", strconv.Itoa(q.MaxDistance))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	u.RawQuery = v.Encode()
	return u.String(), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, cerr.ErrInvalidURL):
		return OutcomeInvalidURL
	case errors.Is(err, cerr.ErrInvalidResponse):
		return OutcomeInvalidResponse
	default:
		return OutcomeTransport
	}
}
