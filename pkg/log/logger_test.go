package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

func TestLogger_Info_WritesContextAndOwnFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(log.LevelInfo, buf)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.WithField("path", "/api/songs").Info(ctx, "request handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request handled", entry["msg"])
	assert.Equal(t, "abc", entry["requestID"])
	assert.Equal(t, "/api/songs", entry["path"])
}

func TestLogger_Debug_SkippedBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithWriter(log.LevelWarn, buf)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")

	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected log.Level
		ok       bool
	}{
		{name: "debug", expected: log.LevelDebug, ok: true},
		{name: " WARN ", expected: log.LevelWarn, ok: true},
		{name: "disabled", expected: log.LevelDisabled, ok: true},
		{name: "verbose", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := log.ParseLevel(tc.name)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, level)
			}
		})
	}
}
