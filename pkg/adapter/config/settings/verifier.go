// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// Range holds the inclusive boundaries of an ordered setting.
// A nil boundary is not enforced.
type Range[T cmp.Ordered] struct {
	Min *T
	Max *T
}

// OutOfRangeError reports a setting which did not fit in its Range.
// When InvalidRange is true, the Range itself was unusable and other
// fields are zero. Otherwise, Value is the given setting and Bound
// is the boundary which replaced it.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T
	Bound        *T
	LessThanMin  bool
	InvalidRange bool
}

func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return fmt.Sprintf("%v is less than min %v", *e.Value, *e.Bound)
	default:
		return fmt.Sprintf("%v is greater than max %v", *e.Value, *e.Bound)
	}
}

// Clamp ensures that (*value) is nil or falls within the r boundaries.
// An out-of-range value is replaced by the violated boundary and the
// returned error describes that replacement. If r.Min is greater than
// r.Max, (*value) is kept intact and an InvalidRange error is returned.
func (r Range[T]) Clamp(value **T) *OutOfRangeError[T] {
	switch {
	case r.Min != nil && r.Max != nil && *r.Min > *r.Max:
		return &OutOfRangeError[T]{InvalidRange: true}
	case *value == nil:
		return nil
	}
	v := **value
	switch {
	case r.Min != nil && v < *r.Min:
		**value = *r.Min
		return &OutOfRangeError[T]{Value: &v, Bound: r.Min, LessThanMin: true}
	case r.Max != nil && v > *r.Max:
		**value = *r.Max
		return &OutOfRangeError[T]{Value: &v, Bound: r.Max}
	}
	return nil
}
