// Copyright (c) 2023 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by the REST
// serialization) since adding more tags does not complicate definition
// of a struct, but can prevent unnecessary structs duplication.
package model

import "log/slog"

// Coordinate represents a geographical location with a latitude and
// longitude, both in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"` // latitude of the geo-location
	Lon float64 `json:"lon"` // longitude of the geo-location
}

// LogValue implements slog.LogValuer, so a Coordinate can be logged
// as a group of its latitude and longitude.
func (c Coordinate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat", c.Lat),
		slog.Float64("lon", c.Lon),
	)
}
