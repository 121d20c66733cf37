package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerWarnWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "/srv/data", "column": "git"})
	log.Warn(errors.New("permission denied"), "skipping column")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "skipping column", entry["message"])
	require.Equal(t, "/srv/data", entry["path"])
	require.Equal(t, "git", entry["column"])
	require.Equal(t, "permission denied", entry["error"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerDefaultLevelHidesInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Info("listing started")
	log.Debug("stat ok")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"dir": "src"}).Debug("not inside a git repository")
	out := buf.String()
	require.Contains(t, out, "not inside a git repository")
	require.Contains(t, out, "dir=src")
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	nilLog.Info("ignored")
	nilLog.WithFields(map[string]any{"a": 1}).Error(errors.New("x"), "ignored")

	Discard().Error(errors.New("x"), "ignored")
}
