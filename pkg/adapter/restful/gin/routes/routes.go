// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/snappauto/pkg/adapter/config"
	"github.com/momeni/snappauto/pkg/adapter/metrics"
	"github.com/momeni/snappauto/pkg/adapter/restful/gin/searchrs"
	"github.com/momeni/snappauto/pkg/core/usecase/searchuc"
)

// Prefix is the common path of all REST APIs.
const Prefix = "/api/snapsearch/v1"

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. Each use case package is named like
// searchuc and each repository package is named like searchrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like searchrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance, behind the
// rate limiting middleware if it is enabled.
// If the m metrics is not nil, it records the search API calls and is
// exposed on the configured metrics path too.
// The instantiated search use case is returned, so caller may close
// it when the engine stops.
func Register(
	e *gin.Engine, c *config.Config, m *metrics.Metrics,
) (*searchuc.UseCase, error) {
	searchUseCase, err := c.NewSearchUseCase(m)
	if err != nil {
		return nil, fmt.Errorf("creating search use case: %w", err)
	}
	r := e.Group(Prefix, c.Gin.APIMiddlewares()...)
	searchrs.Register(r, searchUseCase)
	if m != nil {
		e.GET(*c.Metrics.Path, gin.WrapH(m.Handler()))
	}
	return searchUseCase, nil
}
