// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package snappcar_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/snappauto/pkg/adapter/snappcar"
	"github.com/momeni/snappauto/pkg/core/model"
	"github.com/stretchr/testify/suite"
)

type MapperTestSuite struct {
	suite.Suite

	sut snappcar.Mapper
}

func TestMapperTestSuite(t *testing.T) {
	suite.Run(t, &MapperTestSuite{})
}

func ptr[T any](v T) *T {
	return &v
}

func makeCar() *snappcar.Car {
	return &snappcar.Car{
		OwnerID:     ptr("123456"),
		Year:        ptr(2020),
		FuelType:    ptr("Petrol"),
		Seats:       ptr(5),
		Model:       ptr("Corolla"),
		Make:        ptr("Toyota"),
		CreatedAt:   ptr("2025-01-01T00:00:00Z"),
		Gear:        ptr("Manual"),
		BodyType:    ptr("sedan"),
		CarCategory: ptr("regular"),
		ReviewCount: ptr(3),
		ReviewAvg:   ptr(4.5),
		Allowed:     []string{"kids"},
		Accessories: []string{"GPS"},
		Images:      []string{"https://snappauto.com/car1.jpg"},
		Address: &snappcar.Address{
			City:        ptr("Utrecht"),
			Street:      ptr("Hoverniersweg"),
			CountryCode: ptr("NL"),
		},
	}
}

func makeResult(ci string, badges ...*snappcar.Badge) snappcar.Result {
	return snappcar.Result{
		Flags: &snappcar.Flags{
			Favorite:             ptr(false),
			New:                  ptr(true),
			InstantBookable:      ptr(false),
			IsKeyless:            ptr(false),
			PreviouslyRented:     ptr(false),
			ShowDurationDiscount: ptr(false),
		},
		PriceInformation: &snappcar.PriceInformation{
			Price:                ptr(50.0),
			PricePerKilometer:    ptr(0.25),
			FreeKilometersPerDay: ptr(100),
			RentalDays:           ptr(1),
			ISOCurrencyCode:      ptr("EUR"),
		},
		CI:       ptr(ci),
		Distance: ptr(100.0),
		Car:      makeCar(),
		User: &snappcar.User{
			FirstName: ptr("Jacob"),
			ImageURL:  ptr("https://snappauto.com/user.jpg"),
			Street:    ptr("Jacob's Street"),
			City:      ptr("Port Louis"),
		},
		Badges: badges,
	}
}

func (mts *MapperTestSuite) TestMapAllEmpty() {
	for _, in := range [][]snappcar.Result{nil, {}} {
		got := mts.sut.MapAll(in)
		mts.NotNil(got)
		mts.Empty(got)
	}
}

func (mts *MapperTestSuite) TestMapAllPreservesOrderAndCount() {
	got := mts.sut.MapAll([]snappcar.Result{
		makeResult("1"), makeResult("2"), makeResult("3"),
	})
	mts.Require().Len(got, 3)
	for i, key := range []string{"1", "2", "3"} {
		mts.Equal(key, got[i].Key())
	}
}

func (mts *MapperTestSuite) TestMapAllValues() {
	got := mts.sut.Map(makeResult("123456"))
	mts.Equal(model.SearchResult{
		Flags: &model.Flags{
			IsFavorite:                 ptr(false),
			IsNew:                      ptr(true),
			IsInstantBookable:          ptr(false),
			IsKeyless:                  ptr(false),
			WasPreviouslyRented:        ptr(false),
			ShouldShowDurationDiscount: ptr(false),
		},
		PriceInformation: &model.PriceInformation{
			Price:                ptr(50.0),
			PricePerKilometer:    ptr(0.25),
			FreeKilometersPerDay: ptr(100),
			RentalDays:           ptr(1),
			ISOCurrencyCode:      ptr("EUR"),
		},
		CI:       ptr("123456"),
		Distance: ptr(100.0),
		Car: &model.Car{
			OwnerID:     ptr("123456"),
			Year:        ptr(2020),
			FuelType:    ptr("Petrol"),
			Seats:       ptr(5),
			Model:       ptr("Corolla"),
			Make:        ptr("Toyota"),
			CreatedAt:   ptr("2025-01-01T00:00:00Z"),
			Gear:        ptr("Manual"),
			BodyType:    ptr("sedan"),
			CarCategory: ptr("regular"),
			ReviewCount: ptr(3),
			ReviewAvg:   ptr(4.5),
			Allowed:     []string{"kids"},
			Accessories: []string{"GPS"},
			Images:      []string{"https://snappauto.com/car1.jpg"},
			Address: &model.Address{
				City:        ptr("Utrecht"),
				Street:      ptr("Hoverniersweg"),
				CountryCode: ptr("NL"),
			},
		},
		User: &model.User{
			FirstName: ptr("Jacob"),
			ImageURL:  ptr("https://snappauto.com/user.jpg"),
			Street:    ptr("Jacob's Street"),
			City:      ptr("Port Louis"),
		},
		Badges: []model.Badge{},
	}, got)
}

func (mts *MapperTestSuite) TestMapAllAbsent() {
	got := mts.sut.Map(snappcar.Result{})
	mts.Nil(got.Flags)
	mts.Nil(got.PriceInformation)
	mts.Nil(got.CI)
	mts.Nil(got.Distance)
	mts.Nil(got.Car)
	mts.Nil(got.User)
	mts.NotNil(got.Badges)
	mts.Empty(got.Badges)
	mts.Equal("", got.Key())
}

func (mts *MapperTestSuite) TestMapCarAbsentLists() {
	got := mts.sut.Map(snappcar.Result{Car: &snappcar.Car{}})
	mts.Require().NotNil(got.Car)
	mts.Equal([]string{}, got.Car.Allowed)
	mts.Equal([]string{}, got.Car.Accessories)
	mts.Equal([]string{}, got.Car.Images)
	mts.Nil(got.Car.Address)
	mts.Nil(got.Car.Year)
}

func (mts *MapperTestSuite) TestMapCarListsAreCopied() {
	r := snappcar.Result{Car: makeCar()}
	got := mts.sut.Map(r)
	r.Car.Allowed[0] = "pets"
	mts.Equal([]string{"kids"}, got.Car.Allowed)
}

func (mts *MapperTestSuite) TestMapBadges() {
	top := &snappcar.Badge{Title: ptr("Top")}
	pro := &snappcar.Badge{
		Title:   ptr("Super Host"),
		IconURL: ptr("https://snappauto.com/badge.png"),
	}
	for _, tc := range []struct {
		name     string
		badges   []*snappcar.Badge
		expected []model.Badge
	}{
		{name: "absent", badges: nil, expected: []model.Badge{}},
		{name: "empty", badges: []*snappcar.Badge{}, expected: []model.Badge{}},
		{
			name:   "all valid",
			badges: []*snappcar.Badge{top, pro},
			expected: []model.Badge{
				{Title: ptr("Top")},
				{
					Title:   ptr("Super Host"),
					IconURL: ptr("https://snappauto.com/badge.png"),
				},
			},
		},
		{
			name:     "null entries are dropped",
			badges:   []*snappcar.Badge{nil, top, nil},
			expected: []model.Badge{{Title: ptr("Top")}},
		},
		{
			name:     "only null entries",
			badges:   []*snappcar.Badge{nil, nil},
			expected: []model.Badge{},
		},
	} {
		mts.Run(tc.name, func() {
			got := mts.sut.Map(makeResult("ci", tc.badges...))
			mts.Equal(tc.expected, got.Badges)
		})
	}
}

func (mts *MapperTestSuite) TestMapDecodedResponse() {
	data := []byte(`{"results":[
		{"ci":"a","badges":[{"title":"Top"},null,{"iconUrl":"https://x/i.png"}],
		 "car":{"make":"Citroen","model":"2 CV","year":1988,"allowed":null}},
		{}
	]}`)
	var env struct {
		Results []snappcar.Result `json:"results"`
	}
	mts.Require().NoError(json.Unmarshal(data, &env))
	got := mts.sut.MapAll(env.Results)
	mts.Require().Len(got, 2)
	mts.Equal("a", got[0].Key())
	mts.Len(got[0].Badges, 2)
	mts.Equal("Citroen", *got[0].Car.Make)
	mts.Equal("2 CV", *got[0].Car.Model)
	mts.Equal(1988, *got[0].Car.Year)
	mts.Equal([]string{}, got[0].Car.Allowed)
	for _, r := range got[1:] {
		mts.Nil(r.CI)
		mts.Nil(r.Car)
		mts.Equal([]model.Badge{}, r.Badges)
	}
}
