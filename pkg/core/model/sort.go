// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// SortOption specifies how the search results should be sorted by the
// rental cars API. Although this enum is numeric, it is (de)serialized
// as a string, both for the REST API clients and for the upstream
// search API which receives it as the sort query parameter.
type SortOption int

// Valid values for the SortOption enum.
const (
	SortOptionInvalid SortOption = iota // zero value is invalid

	SortOptionPrice       // cheapest cars first
	SortOptionRecommended // upstream ranking, the default option
	SortOptionDistance    // nearest cars first
)

// SortOptions lists all valid sort options in their display order.
var SortOptions = []SortOption{
	SortOptionPrice, SortOptionRecommended, SortOptionDistance,
}

// ErrUnknownSortOption indicates that a given string may not be parsed
// as a valid/known sort option. Similar to other parsing errors, it
// does not repeat the invalid string because the caller already knows
// about it and can wrap this error with more context.
var ErrUnknownSortOption = errors.New("unknown sort option")

// SortOptionError indicates an invalid numeric sort option.
type SortOptionError int

// Error implements the error interface, returning a string
// representation of the SortOptionError.
func (e SortOptionError) Error() string {
	return fmt.Sprintf("invalid sort option: %d", e)
}

// Validate returns nil if SortOption value is valid. For invalid
// values, an instance of the SortOptionError will be returned.
func (s SortOption) Validate() error {
	switch s {
	case SortOptionPrice, SortOptionRecommended, SortOptionDistance:
		return nil
	default:
		return SortOptionError(s)
	}
}

// String converts the SortOption enum to its display name. The same
// name is sent verbatim as the sort query parameter of the upstream
// search API. Invalid sort option causes a panic.
func (s SortOption) String() string {
	switch s {
	case SortOptionPrice:
		return "Price"
	case SortOptionRecommended:
		return "Recommended"
	case SortOptionDistance:
		return "Distance"
	default:
		panic(SortOptionError(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SortOption) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the
// ParseSortOption function.
func (s *SortOption) UnmarshalText(data []byte) error {
	so, err := ParseSortOption(string(data))
	if err != nil {
		return err
	}
	*s = so
	return nil
}

// ParseSortOption parses the given string case-insensitively and
// returns a SortOption. For invalid strings, SortOptionInvalid and
// ErrUnknownSortOption will be returned.
func ParseSortOption(s string) (SortOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "price":
		return SortOptionPrice, nil
	case "recommended":
		return SortOptionRecommended, nil
	case "distance":
		return SortOptionDistance, nil
	default:
		return SortOptionInvalid, ErrUnknownSortOption
	}
}

// Order is the sorting direction which accompanies a SortOption.
type Order int

// Valid values for the Order enum.
const (
	OrderInvalid Order = iota // zero value is invalid

	OrderAsc
	OrderDesc
)

// ErrUnknownOrder indicates that a string is not a known Order.
var ErrUnknownOrder = errors.New("unknown order")

// OrderError indicates an invalid numeric order.
type OrderError int

// Error implements the error interface.
func (e OrderError) Error() string {
	return fmt.Sprintf("invalid order: %d", e)
}

// Validate returns nil if Order value is valid, otherwise an OrderError.
func (o Order) Validate() error {
	switch o {
	case OrderAsc, OrderDesc:
		return nil
	default:
		return OrderError(o)
	}
}

// String returns the query parameter representation of the order.
// Invalid order causes a panic.
func (o Order) String() string {
	switch o {
	case OrderAsc:
		return "asc"
	case OrderDesc:
		return "desc"
	default:
		panic(OrderError(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(data []byte) error {
	oo, err := ParseOrder(string(data))
	if err != nil {
		return err
	}
	*o = oo
	return nil
}

// ParseOrder parses asc or desc (case-insensitively).
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	default:
		return OrderInvalid, ErrUnknownOrder
	}
}
