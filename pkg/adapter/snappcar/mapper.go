// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package snappcar

import "github.com/momeni/snappauto/pkg/core/model"

// Mapper converts the wire records into model layer records.
// Optional nested records are mapped field by field and stay nil when
// they are absent, while absent lists are replaced by empty lists.
// Null badge entries are dropped. Mapping cannot fail.
type Mapper struct{}

// MapAll maps every result record, preserving their order and count.
// The returned slice is never nil.
func (m Mapper) MapAll(results []Result) []model.SearchResult {
	mapped := make([]model.SearchResult, 0, len(results))
	for _, r := range results {
		mapped = append(mapped, m.Map(r))
	}
	return mapped
}

// Map converts one result record.
func (m Mapper) Map(r Result) model.SearchResult {
	return model.SearchResult{
		Flags:            m.mapFlags(r.Flags),
		PriceInformation: m.mapPriceInformation(r.PriceInformation),
		CI:               r.CI,
		Distance:         r.Distance,
		Car:              m.mapCar(r.Car),
		User:             m.mapUser(r.User),
		Badges:           m.mapBadges(r.Badges),
	}
}

func (m Mapper) mapFlags(f *Flags) *model.Flags {
	if f == nil {
		return nil
	}
	return &model.Flags{
		IsFavorite:                 f.Favorite,
		IsNew:                      f.New,
		IsInstantBookable:          f.InstantBookable,
		IsKeyless:                  f.IsKeyless,
		WasPreviouslyRented:        f.PreviouslyRented,
		ShouldShowDurationDiscount: f.ShowDurationDiscount,
	}
}

func (m Mapper) mapPriceInformation(
	p *PriceInformation,
) *model.PriceInformation {
	if p == nil {
		return nil
	}
	return &model.PriceInformation{
		Price:                p.Price,
		PricePerKilometer:    p.PricePerKilometer,
		FreeKilometersPerDay: p.FreeKilometersPerDay,
		RentalDays:           p.RentalDays,
		ISOCurrencyCode:      p.ISOCurrencyCode,
	}
}

func (m Mapper) mapCar(c *Car) *model.Car {
	if c == nil {
		return nil
	}
	return &model.Car{
		OwnerID:     c.OwnerID,
		Year:        c.Year,
		FuelType:    c.FuelType,
		Seats:       c.Seats,
		Model:       c.Model,
		Make:        c.Make,
		CreatedAt:   c.CreatedAt,
		Gear:        c.Gear,
		BodyType:    c.BodyType,
		CarCategory: c.CarCategory,
		ReviewCount: c.ReviewCount,
		ReviewAvg:   c.ReviewAvg,
		Allowed:     copyList(c.Allowed),
		Accessories: copyList(c.Accessories),
		Images:      copyList(c.Images),
		Address:     m.mapAddress(c.Address),
	}
}

func (m Mapper) mapAddress(a *Address) *model.Address {
	if a == nil {
		return nil
	}
	return &model.Address{
		City:        a.City,
		Street:      a.Street,
		CountryCode: a.CountryCode,
	}
}

func (m Mapper) mapUser(u *User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		FirstName: u.FirstName,
		ImageURL:  u.ImageURL,
		Street:    u.Street,
		City:      u.City,
	}
}

func (m Mapper) mapBadges(badges []*Badge) []model.Badge {
	mapped := make([]model.Badge, 0, len(badges))
	for _, b := range badges {
		if b == nil {
			continue
		}
		mapped = append(mapped, model.Badge{
			Title:   b.Title,
			IconURL: b.IconURL,
		})
	}
	return mapped
}

// copyList copies l into a non-nil slice.
func copyList(l []string) []string {
	return append(make([]string, 0, len(l)), l...)
}
