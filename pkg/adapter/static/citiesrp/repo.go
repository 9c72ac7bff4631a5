// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package citiesrp implements the repo.Cities interface using a static
// table of cities which is compiled into the program.
package citiesrp

import (
	"math"
	"strings"

	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/momeni/snappauto/pkg/core/repo"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// table lists the searchable cities. Their order is preserved by all
// queries, so the first city of the table wins when a query matches
// several cities.
var table = []model.City{
	{Name: "Amsterdam", Country: "NL", Coordinate: model.Coordinate{Lat: 52.3676, Lon: 4.9041}},
	{Name: "Rotterdam", Country: "NL", Coordinate: model.Coordinate{Lat: 51.9225, Lon: 4.4792}},
	{Name: "Utrecht", Country: "NL", Coordinate: model.Coordinate{Lat: 52.0907, Lon: 5.1214}},
	{Name: "Den Haag", Country: "NL", Coordinate: model.Coordinate{Lat: 52.0705, Lon: 4.3007}},
	{Name: "Eindhoven", Country: "NL", Coordinate: model.Coordinate{Lat: 51.4416, Lon: 5.4697}},
	{Name: "Groningen", Country: "NL", Coordinate: model.Coordinate{Lat: 53.2194, Lon: 6.5665}},
}

type repository struct {
	cities []model.City
}

// New instantiates a cities repository with the default cities table.
func New() repo.Cities {
	return &repository{cities: table}
}

// All returns a copy of the cities table in its declared order.
func (r *repository) All() []model.City {
	return append([]model.City(nil), r.cities...)
}

// Match returns all cities (in their declared order) which their
// names contain the query case-insensitively. An empty query matches
// every city. The returned slice is never nil.
func (r *repository) Match(query string) []model.City {
	if query == "" {
		return r.All()
	}
	q := strings.ToLower(query)
	matched := make([]model.City, 0, len(r.cities))
	for _, c := range r.cities {
		if strings.Contains(strings.ToLower(c.Name), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Nearest finds the city which is closest to the c coordinate and
// returns it together with its great-circle distance in meters.
func (r *repository) Nearest(c model.Coordinate) (model.City, float64) {
	p := point(c)
	var nearest model.City
	best := math.Inf(1)
	for _, city := range r.cities {
		if d := geo.Distance(p, point(city.Coordinate)); d < best {
			nearest, best = city, d
		}
	}
	return nearest, best
}

func point(c model.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}
