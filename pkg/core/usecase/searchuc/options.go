// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package searchuc

import (
	"errors"
	"fmt"
	"time"

	"github.com/momeni/snappauto/pkg/core/model"
)

// Option is a functional option for the search use case.
type Option func(uc *UseCase) error

// WithDebounceDelay option configures a search UseCase instance in
// order to wait as much as the given delay after each query change
// before resolving the city and searching for its cars.
func WithDebounceDelay(delay time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(delay); d <= 0 {
			return fmt.Errorf("delay (%d) is not positive", d)
		}
		if uc.delay != 0 {
			return errors.New("delay is already configured")
		}
		uc.delay = delay
		return nil
	}
}

// WithPage option configures the maximum number of results (limit)
// and the number of skipped results (offset) of each search.
func WithPage(limit, offset int) Option {
	return func(uc *UseCase) error {
		if limit <= 0 {
			return fmt.Errorf("limit (%d) is not positive", limit)
		}
		if offset < 0 {
			return fmt.Errorf("offset (%d) is negative", offset)
		}
		if uc.pageSet {
			return errors.New("page is already configured")
		}
		uc.limit, uc.offset, uc.pageSet = limit, offset, true
		return nil
	}
}

// WithMaxDistance option configures the search radius in meters.
func WithMaxDistance(meters int) Option {
	return func(uc *UseCase) error {
		if meters <= 0 {
			return fmt.Errorf("max distance (%d) is not positive", meters)
		}
		if uc.maxDistance != 0 {
			return errors.New("max distance is already configured")
		}
		uc.maxDistance = meters
		return nil
	}
}

// WithOrder sets the order which the sorted results are listed by.
// The default order is ascending.
func WithOrder(o model.Order) Option {
	return func(uc *UseCase) error {
		if err := o.Validate(); err != nil {
			return err
		}
		if uc.order != model.OrderInvalid {
			return errors.New("order is already configured")
		}
		uc.order = o
		return nil
	}
}

// WithErrorMessage option replaces the DefaultErrorMessage.
func WithErrorMessage(msg string) Option {
	return func(uc *UseCase) error {
		if msg == "" {
			return errors.New("error message is empty")
		}
		if uc.errorMessage != "" {
			return errors.New("error message is already configured")
		}
		uc.errorMessage = msg
		return nil
	}
}
