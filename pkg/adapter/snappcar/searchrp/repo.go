// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package searchrp implements the repo.Search interface by fetching
// the raw result records from the SnappCar search API and mapping
// them to the domain search results.
package searchrp

import (
	"context"

	"github.com/momeni/snappauto/pkg/adapter/snappcar"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/repo"
)

// Searcher fetches the raw result records from the search API.
type Searcher interface {
	Search(ctx context.Context, q model.SearchQuery) ([]snappcar.Result, error)
}

// ResultMapper converts the raw result records into domain records.
type ResultMapper interface {
	MapAll(results []snappcar.Result) []model.SearchResult
}

// Repo is a search repository which composes a Searcher and a
// ResultMapper.
type Repo struct {
	searcher Searcher
	mapper   ResultMapper
}

// New instantiates a search repository which fetches the records
// using s and maps them using m.
func New(s Searcher, m ResultMapper) repo.Search {
	return &Repo{searcher: s, mapper: m}
}

// Search fetches and maps the results of the q query. Errors of the
// Searcher are returned as is.
func (sr *Repo) Search(
	ctx context.Context, q model.SearchQuery,
) ([]model.SearchResult, error) {
	results, err := sr.searcher.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return sr.mapper.MapAll(results), nil
}
