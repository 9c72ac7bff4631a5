// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package snappcar

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Option is a functional option for the search API Client.
type Option func(c *Client) error

// WithBaseURL option replaces the DefaultBaseURL endpoint. The URL is
// not validated here, so a malformed URL is reported by each Search
// call as a cerr.ErrInvalidURL error.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return errors.New("base URL is empty")
		}
		if c.baseURL != "" {
			return errors.New("base URL is already configured")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient option makes the Client to send its requests using
// the hc HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("nil HTTP client")
		}
		if c.httpClient != nil {
			return errors.New("HTTP client is already configured")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout option bounds each search request by the given timeout.
// It may not be combined with the WithHTTPClient option.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if d := int64(timeout); d <= 0 {
			return fmt.Errorf("timeout (%d) is not positive", d)
		}
		if c.httpClient != nil {
			return errors.New("HTTP client is already configured")
		}
		c.httpClient = &http.Client{Timeout: timeout}
		return nil
	}
}

// WithObserver option registers an Observer which is notified after
// every Search call.
func WithObserver(o Observer) Option {
	return func(c *Client) error {
		if o == nil {
			return errors.New("nil observer")
		}
		c.observer = o
		return nil
	}
}
