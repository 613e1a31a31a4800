// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses the single JSON log line held in buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("twitter-clone-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("tweet created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "twitter-clone-server", entry["role"])
	assert.Equal(t, "tweet created", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_SkipsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewClientLogger("twitter-clone-client")
	l.Logger = l.Output(&buf)

	l.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	l.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("user_id", "u-1").Logger()
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"], "inherits parent fields")
	assert.Equal(t, "u-1", entry["user_id"])

	buf.Reset()
	parent.Info().Msg("parent message")
	assert.NotContains(t, decodeEntry(t, &buf), "user_id", "parent is not affected")
}

func TestFromContext(t *testing.T) {
	t.Run("no logger is disabled", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})

	t.Run("attached with WithContext", func(t *testing.T) {
		var buf bytes.Buffer
		l := &Logger{zerolog.New(&buf).With().Str("trace_id", "abc").Logger()}

		ctx := l.WithContext(context.Background())
		FromContext(ctx).Info().Msg("traced")

		assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()}

	req := httptest.NewRequest(http.MethodGet, "/api/tweet", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-1", decodeEntry(t, &buf)["trace_id"])
}
