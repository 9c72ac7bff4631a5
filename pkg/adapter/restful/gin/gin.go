// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and provides the middlewares
// which are shared by all REST resources.
package gin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/momeni/snappauto/pkg/adapter/metrics"
	"github.com/momeni/snappauto/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is set on every response by the Logger middleware.
const RequestIDHeader = "X-Request-ID"

// New instantiates an engine whose handlers may pass their gin.Context
// to the use cases as a context.Context. The request context provides
// its cancellation and values to that gin.Context.
func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.ContextWithFallback = true
	e.Use(middlewares...)
	return e
}

// Logger logs every request with the default slog logger, after it
// is served. A fresh request id is attached to the response headers
// and to the request context, so logs of the handlers report it too.
func Logger() HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := uuid.New()
		c.Header(RequestIDHeader, id.String())
		c.Request = c.Request.WithContext(
			log.WithAttrs(c.Request.Context(), log.ID("request_id", id)),
		)
		path := c.Request.URL.Path

		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn(c, "request served", attrs...)
			return
		}
		log.Info(c, "request served", attrs...)
	}
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

// Metrics records the method, route, status, and latency of every
// request in m. Unmatched requests are recorded with the "unmatched"
// route, so random paths cannot inflate the labels cardinality.
func Metrics(m *metrics.Metrics) HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(
			c.Request.Method, route, c.Writer.Status(), time.Since(start),
		)
	}
}
