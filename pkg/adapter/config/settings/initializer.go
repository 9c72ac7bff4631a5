// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import "os"

// Nil2Zero makes a nil (*t) point to a new zero T value, so optional
// settings with a zero default can be dereferenced. A non-nil (*t) is
// kept as is.
func Nil2Zero[T any](t **T) {
	if *t == nil {
		*t = new(T)
	}
}

// OverwriteNil makes a nil (*dst) point to a copy of (*src), so the
// missing settings take their default values. Nothing is changed if
// (*dst) is already set or src is nil.
func OverwriteNil[T any](dst **T, src *T) {
	if *dst != nil || src == nil {
		return
	}
	v := *src
	*dst = &v
}

// OverwriteUnconditionally makes (*dst) point to a copy of (*src),
// or sets it to nil if src is nil.
func OverwriteUnconditionally[T any](dst **T, src *T) {
	if src == nil {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

// LookupEnv overwrites the (*dst) pointer with the value of the key
// environment variable, if that variable is present. An empty but
// present variable is taken as an empty string.
func LookupEnv(dst **string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		OverwriteUnconditionally(dst, &v)
	}
}
