// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/momeni/snappauto/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDuration_Marshal() {
	for _, d := range []time.Duration{
		0, 500 * time.Millisecond, 3 * time.Second,
		2 * time.Minute, 90 * time.Minute, 4 * time.Hour,
	} {
		sd := settings.Duration(d)
		fmt.Println(*sd.Marshal())
	}
	var missing *settings.Duration
	fmt.Println(missing.Marshal() == nil)
	// Output:
	// 0s
	// 500ms
	// 3s
	// 2m
	// 1h30m
	// 4h
	// true
}

func ExampleRange_Clamp() {
	d := settings.Duration(5 * time.Second)
	value := &d
	maxb := settings.Duration(time.Second)
	r := settings.Range[settings.Duration]{Max: &maxb}
	fmt.Println(r.Clamp(&value))
	fmt.Println(*value)
	// Output:
	// 5s is greater than max 1s
	// 1s
}

func TestRangeClamp(t *testing.T) {
	one, five, nine := 1, 5, 9
	for name, tc := range map[string]struct {
		r     settings.Range[int]
		value *int
		want  *int
		less  bool
		err   string
	}{
		"nil value":    {r: settings.Range[int]{Min: &one}},
		"unbounded":    {value: &nine, want: &nine},
		"within range": {r: settings.Range[int]{Min: &one, Max: &nine}, value: &five, want: &five},
		"below min": {
			r: settings.Range[int]{Min: &five}, value: &one, want: &five,
			less: true, err: "1 is less than min 5",
		},
		"above max": {
			r: settings.Range[int]{Min: &one, Max: &five}, value: &nine,
			want: &five, err: "9 is greater than max 5",
		},
		"invalid range": {
			r: settings.Range[int]{Min: &nine, Max: &one}, value: &five,
			want: &five, err: "min is greater than max",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var value *int
			if tc.value != nil {
				v := *tc.value
				value = &v
			}
			err := tc.r.Clamp(&value)
			if tc.want == nil {
				assert.Nil(t, value)
			} else {
				require.NotNil(t, value)
				assert.Equal(t, *tc.want, *value)
			}
			if tc.err == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.EqualError(t, err, tc.err)
			assert.Equal(t, tc.less, err.LessThanMin)
		})
	}
}

func TestInitializers(t *testing.T) {
	var port *int
	settings.Nil2Zero(&port)
	require.NotNil(t, port)
	assert.Zero(t, *port)

	var path *string
	def := "/metrics"
	settings.OverwriteNil(&path, &def)
	require.NotNil(t, path)
	def = "/changed"
	assert.Equal(t, "/metrics", *path, "source must be copied")
	settings.OverwriteNil(&path, &def)
	assert.Equal(t, "/metrics", *path, "non-nil value must be kept")

	settings.OverwriteUnconditionally(&path, &def)
	assert.Equal(t, "/changed", *path)
	settings.OverwriteUnconditionally(&path, nil)
	assert.Nil(t, path)
}

func TestLookupEnv(t *testing.T) {
	const key = "SNAPSEARCH_SETTINGS_TEST"
	t.Setenv(key, "")
	os.Unsetenv(key)
	def := "kept"
	path := &def
	settings.LookupEnv(&path, key)
	assert.Equal(t, "kept", *path)

	t.Setenv(key, "/from/env")
	settings.LookupEnv(&path, key)
	assert.Equal(t, "/from/env", *path)
	assert.Equal(t, "kept", def, "target must be reallocated")
}
