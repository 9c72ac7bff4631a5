// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package searchrs realizes the search resource, allowing the rental
// cars search and the cities lookup REST APIs to be accepted and
// delegated to the search use cases respectively.
package searchrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/snappauto/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/usecase/searchuc"
)

type resource struct {
	search *searchuc.UseCase
}

// Register instantiates a resource adapting the search use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/snapsearch/v1/search?q=<text>&sort=<option>
//     in order to search the cars around the first matching city,
//  2. GET request to /api/snapsearch/v1/cities?q=<text>
//     in order to list the matching cities, and
//  3. GET request to /api/snapsearch/v1/cities/nearest?lat=&lon=
//     in order to find the city which is closest to a location.
func Register(r *gin.RouterGroup, search *searchuc.UseCase) {
	rs := &resource{search: search}
	r.GET("search", rs.Search)
	r.GET("cities", rs.ListCities)
	r.GET("cities/nearest", rs.NearestCity)
}

func (rs *resource) Search(c *gin.Context) {
	req := rs.DserSearchReq(c)
	if req == nil {
		return
	}
	city, results, err := rs.search.Lookup(c, req.Query, req.Sort)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, searchResp{City: city, Results: results})
}

func (rs *resource) ListCities(c *gin.Context) {
	req := &citiesReq{}
	if ok := serdser.Bind(c, req, bindingQuery); !ok {
		return
	}
	c.JSON(http.StatusOK, rs.search.Cities(req.Query))
}

func (rs *resource) NearestCity(c *gin.Context) {
	coord := rs.DserCoordinate(c)
	if coord == nil {
		return
	}
	city, meters := rs.search.Nearest(*coord)
	c.JSON(http.StatusOK, nearestResp{City: city, Distance: meters})
}

type searchResp struct {
	City    *model.City          `json:"city"`
	Results []model.SearchResult `json:"results"`
}

type nearestResp struct {
	City     model.City `json:"city"`
	Distance float64    `json:"distance"` // in meters
}
