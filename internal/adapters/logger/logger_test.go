package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("loaded scene")
	lg.Warn("unknown version")

	assert.Equal(t, "loaded scene\n! unknown version\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(context.Canceled, "scene traversal failed"), "flatten failed")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutputKeepsJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestFormatErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{"single", []string{"single error"}, "Error: single error"},
		{"cause", []string{"outer", "inner"}, "Error: outer\n\n  Caused by:\n    → inner"},
		{"multiline", []string{"line1\nline2"}, "Error: line1\n       line2"},
		{"multiline cause", []string{"main", "c1\nc2"}, "Error: main\n\n  Caused by:\n    → c1\n      c2"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorMessages(tt.messages))
		})
	}
}

func TestCollectErrorMessages(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("root cause"), "outer layer"), "key", "value")

	assert.Equal(t, []string{"outer layer", "root cause"}, logger.CollectErrorMessages(err))
	assert.Empty(t, logger.CollectErrorMessages(nil))
}
