// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "log/slog"

// SearchQuery holds the parameters of one rental cars search request.
// Values are passed through to the upstream API as they are, so no
// range validation is performed on them.
type SearchQuery struct {
	Limit       int        // maximum number of results
	Offset      int        // number of results to skip
	Country     string     // ISO country code of the searched city
	Coordinate  Coordinate // center of the search area
	MaxDistance int        // search radius in meters
	Sort        SortOption
	Order       Order
}

// LogValue implements slog.LogValuer.
func (q SearchQuery) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("limit", q.Limit),
		slog.Int("offset", q.Offset),
		slog.String("country", q.Country),
		slog.Any("coordinate", q.Coordinate),
		slog.Int("max_distance", q.MaxDistance),
	}
	if q.Sort.Validate() == nil {
		attrs = append(attrs, slog.String("sort", q.Sort.String()))
	}
	if q.Order.Validate() == nil {
		attrs = append(attrs, slog.String("order", q.Order.String()))
	}
	return slog.GroupValue(attrs...)
}
