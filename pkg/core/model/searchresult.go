// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// SearchResult is one rental car offer, ready to be displayed.
// Scalar fields are optional and nil means the upstream API did not
// provide them. The Badges slice is never nil, although it may be
// empty.
type SearchResult struct {
	Flags            *Flags            `json:"flags"`
	PriceInformation *PriceInformation `json:"priceInformation"`
	CI               *string           `json:"ci"` // correlation id
	Distance         *float64          `json:"distance"`
	Car              *Car              `json:"car"`
	User             *User             `json:"user"`
	Badges           []Badge           `json:"badges"`
}

// Key returns the correlation id of the result which may be used as
// a list key. Results without a correlation id share the empty key.
func (r SearchResult) Key() string {
	if r.CI == nil {
		return ""
	}
	return *r.CI
}

// Flags contains the boolean markers of a search result.
type Flags struct {
	IsFavorite                 *bool `json:"isFavorite"`
	IsNew                      *bool `json:"isNew"`
	IsInstantBookable          *bool `json:"isInstantBookable"`
	IsKeyless                  *bool `json:"isKeyless"`
	WasPreviouslyRented        *bool `json:"wasPreviouslyRented"`
	ShouldShowDurationDiscount *bool `json:"shouldShowDurationDiscount"`
}

// PriceInformation describes the rental price of a car.
type PriceInformation struct {
	Price                *float64 `json:"price"`
	PricePerKilometer    *float64 `json:"pricePerKilometer"`
	FreeKilometersPerDay *int     `json:"freeKilometersPerDay"`
	RentalDays           *int     `json:"rentalDays"`
	ISOCurrencyCode      *string  `json:"isoCurrencyCode"`
}

// Car models a rental car as reported by a search result.
// The Allowed, Accessories, and Images slices are never nil.
type Car struct {
	OwnerID     *string  `json:"ownerId"`
	Year        *int     `json:"year"`
	FuelType    *string  `json:"fuelType"`
	Seats       *int     `json:"seats"`
	Model       *string  `json:"model"`
	Make        *string  `json:"make"`
	CreatedAt   *string  `json:"createdAt"`
	Gear        *string  `json:"gear"`
	BodyType    *string  `json:"bodyType"`
	CarCategory *string  `json:"carCategory"`
	ReviewCount *int     `json:"reviewCount"`
	ReviewAvg   *float64 `json:"reviewAvg"`
	Allowed     []string `json:"allowed"`     // allowed uses, e.g., kids
	Accessories []string `json:"accessories"` // e.g., GPS
	Images      []string `json:"images"`      // image URLs
	Address     *Address `json:"address"`
}

// Address is the pick-up address of a car.
type Address struct {
	City        *string `json:"city"`
	Street      *string `json:"street"`
	CountryCode *string `json:"countryCode"`
}

// User is the owner of a car.
type User struct {
	FirstName *string `json:"firstName"`
	ImageURL  *string `json:"imageUrl"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
}

// Badge is a decoration which is shown next to a search result.
type Badge struct {
	Title   *string `json:"title"`
	IconURL *string `json:"iconUrl"`
}
