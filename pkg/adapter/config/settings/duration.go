// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the helpers which are shared by the config
// sections, such as the human-readable Duration type, the nil pointer
// initializers, and the Range boundaries verifier.
package settings

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is read from and written to the
// config files in its time.ParseDuration format, e.g., 500ms or 1h30m.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler, so yaml decoder
// accepts durations as plain strings. The `d` receiver is updated only
// if data could be parsed.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// Marshal returns the human-readable form of `d`, or nil if `d` is
// nil. Trailing zero units are dropped, so 2m0s is written as 2m and
// 4h0m0s is written as 4h.
func (d *Duration) Marshal() *string {
	if d == nil {
		return nil
	}
	s := (*time.Duration)(d).String()
	if m, ok := strings.CutSuffix(s, "m0s"); ok {
		s = m + "m"
	}
	if h, ok := strings.CutSuffix(s, "h0m"); ok {
		s = h + "h"
	}
	return &s
}

func (d Duration) String() string {
	return *d.Marshal()
}

// MarshalText implements encoding.TextMarshaler, so the effective
// configuration can be written back as yaml.
func (d *Duration) MarshalText() ([]byte, error) {
	if s := d.Marshal(); s != nil {
		return []byte(*s), nil
	}
	return nil, errors.New("nil duration")
}

// LogValue implements slog.LogValuer.
func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(time.Duration(*d))
}
