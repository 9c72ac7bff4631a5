// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// City is a searchable location. Cities are kept in a static table by
// the adapters layer and a query text is resolved to one of them before
// asking for the rental cars around its Coordinate.
type City struct {
	Name       string     `json:"name"`    // display name, e.g., Utrecht
	Country    string     `json:"country"` // ISO country code, e.g., NL
	Coordinate Coordinate `json:"coordinate"`
}
