package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input string
		level slog.Level
	}{
		{input: "debug", level: slog.LevelDebug},
		{input: "WARN", level: slog.LevelWarn},
		{input: "error", level: slog.LevelError},
		{input: "", level: slog.LevelInfo},
		{input: "verbose", level: slog.LevelInfo},
	}

	for _, tc := range testCases {
		rq.Equal(tc.level, logx.ParseLevel(tc.input), tc.input)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := slog.New(logx.NewHandler(&buf, "json", "warn"))

	logger.Info("dropped")
	logger.Warn("kept", logx.Error(errors.New("boom")))

	rq.NotContains(buf.String(), "dropped")
	rq.Contains(buf.String(), `"msg":"kept"`)
	rq.Contains(buf.String(), "boom")
}
