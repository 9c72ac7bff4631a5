// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package searchrp_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/snappauto/internal/test/upstream"
	"github.com/momeni/snappauto/pkg/adapter/snappcar"
	"github.com/momeni/snappauto/pkg/adapter/snappcar/searchrp"
	"github.com/momeni/snappauto/pkg/core/cerr"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var query = model.SearchQuery{
	Limit:       10,
	Country:     "NL",
	Coordinate:  model.Coordinate{Lat: 52.0907, Lon: 5.1214},
	MaxDistance: 3000,
	Sort:        model.SortOptionPrice,
	Order:       model.OrderAsc,
}

func TestSearchMapsResults(t *testing.T) {
	srv := upstream.New(t)
	srv.Respond(http.StatusOK, upstream.Body("abc", "def"))
	c, err := snappcar.New(snappcar.WithBaseURL(srv.URL))
	require.NoError(t, err)
	r := searchrp.New(c, snappcar.Mapper{})

	results, err := r.Search(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "abc", results[0].Key())
	assert.Equal(t, "def", results[1].Key())
	assert.Equal(t, []model.Badge{}, results[0].Badges)
	assert.Equal(t, "Price", srv.Requests()[0].Get("sort"))
}

func TestSearchPropagatesErrors(t *testing.T) {
	srv := upstream.New(t)
	srv.Respond(http.StatusInternalServerError, "boom")
	c, err := snappcar.New(snappcar.WithBaseURL(srv.URL))
	require.NoError(t, err)
	r := searchrp.New(c, snappcar.Mapper{})

	results, err := r.Search(context.Background(), query)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, cerr.ErrInvalidResponse))
}
