// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/snappauto/pkg/core/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, level, format string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	buf := &bytes.Buffer{}
	require.NoError(t, log.Setup(buf, level, format))
	return buf
}

func TestSetupInvalid(t *testing.T) {
	assert.Error(t, log.Setup(&bytes.Buffer{}, "verbose", "text"))
	assert.Error(t, log.Setup(&bytes.Buffer{}, "info", "xml"))
}

func TestLevels(t *testing.T) {
	buf := setup(t, "warn", "text")
	ctx := context.Background()
	log.Debug(ctx, "hidden debug")
	log.Info(ctx, "hidden info")
	log.Warn(ctx, "shown warning")
	log.Error(ctx, "shown error", log.Err("err", nil))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN msg=\"shown warning\"")
	assert.Contains(t, out, "level=ERROR msg=\"shown error\" err=no-error")
}

func TestWithAttrs(t *testing.T) {
	buf := setup(t, "debug", "json")
	id := uuid.New()
	parent := log.WithAttrs(context.Background(), log.ID("task", id))
	child := log.WithAttrs(parent, slog.String("city", "Utrecht"))
	assert.Equal(t, parent, log.WithAttrs(parent), "no attrs, same ctx")

	log.Info(child, "searching", log.Err("err", errors.New("boom")))
	log.Debug(parent, "superseded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, id.String(), first["task"])
	assert.Equal(t, "Utrecht", first["city"])
	assert.Equal(t, "boom", first["err"])
	assert.Equal(t, id.String(), second["task"])
	assert.NotContains(t, second, "city", "parent ctx must not change")
}
