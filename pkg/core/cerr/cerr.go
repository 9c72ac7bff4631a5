// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors. The Error type wraps another
// error and annotates it with an HTTP status code, so the use cases
// layer can decide how an error should be reported by the REST adapter
// without depending on it. Sentinel errors describe the failure kinds
// of the upstream search API and may be wrapped (using the %w verb)
// in order to add details while keeping them detectable by errors.Is.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidURL indicates that the search endpoint URL, or the
	// query URL which is derived from it, could not be constructed.
	ErrInvalidURL = errors.New("invalid search URL")

	// ErrInvalidResponse indicates that the search API responded with
	// a non-2xx status code or a body which could not be decoded as
	// the expected results envelope.
	ErrInvalidResponse = errors.New("invalid search response")
)

// Error annotates Err with the HTTP status code which the REST
// adapter should report it with.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Error prefixes the wrapped error message with the status code.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest wraps err so it is reported as 400 Bad Request.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// NotFound wraps err so it is reported as 404 Not Found.
func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// TooManyRequests wraps err so it is reported as 429 Too Many Requests.
func TooManyRequests(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusTooManyRequests}
}

// BadGateway wraps err so it is reported as 502 Bad Gateway.
func BadGateway(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadGateway}
}
