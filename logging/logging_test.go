package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		" what ":  zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equalf(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestSetupWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "debug")
	t.Cleanup(func() { Setup(&bytes.Buffer{}, "info") })

	assert.True(t, IsDebugMode())
	Warnf("missing year %d", 1795)
	l := Named("animator")
	l.Info().Msg("focus")

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "missing year 1795")
	assert.Contains(t, out, `"component":"animator"`)
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "warn")
	t.Cleanup(func() { Setup(&bytes.Buffer{}, "info") })

	assert.False(t, IsDebugMode())
	Debugf("hidden")
	Infof("hidden")
	assert.Empty(t, buf.String())
}

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path, "debug")
	require.NoError(t, err)

	Infof("hello from %s", "file")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from file")

	cleanup, err = SetupLogging("", "")
	require.NoError(t, err)
	cleanup()
	assert.False(t, IsDebugMode())
}
