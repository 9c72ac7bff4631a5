// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package snappcar

// Envelope is the top-level JSON object of a search response.
// The results key is mandatory and its records may not be null, so a
// nil Results pointer (or a nil record) after decoding indicates a
// malformed response.
type Envelope struct {
	Results *[]*Result `json:"results"`
}

// Result is one search result record as transmitted by the API.
// All fields are optional. Badges may contain null entries which are
// decoded as nil pointers.
type Result struct {
	Flags            *Flags            `json:"flags"`
	PriceInformation *PriceInformation `json:"priceInformation"`
	CI               *string           `json:"ci"`
	Distance         *float64          `json:"distance"`
	Car              *Car              `json:"car"`
	User             *User             `json:"user"`
	Badges           []*Badge          `json:"badges"`
}

// Flags holds the boolean markers of a result which are shown as
// labels next to the car.
type Flags struct {
	Favorite             *bool `json:"favorite"`
	New                  *bool `json:"new"`
	InstantBookable      *bool `json:"instantBookable"`
	IsKeyless            *bool `json:"isKeyless"`
	PreviouslyRented     *bool `json:"previouslyRented"`
	ShowDurationDiscount *bool `json:"showDurationDiscount"`
}

// PriceInformation describes the rental price of a result for the
// queried period.
type PriceInformation struct {
	Price                *float64 `json:"price"`
	PricePerKilometer    *float64 `json:"pricePerKilometer"`
	FreeKilometersPerDay *int     `json:"freeKilometersPerDay"`
	RentalDays           *int     `json:"rentalDays"`
	ISOCurrencyCode      *string  `json:"isoCurrencyCode"`
}

// Car describes the rented vehicle. Its list fields are nil when
// they are absent or null in the response.
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
	Allowed     []string `json:"allowed"`
	Accessories []string `json:"accessories"`
	Images      []string `json:"images"`
	Address     *Address `json:"address"`
}

// Address is the pickup location of a car.
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

// Badge is a highlighted property of a result, such as a rating.
type Badge struct {
	Title   *string `json:"title"`
	IconURL *string `json:"iconUrl"`
}
