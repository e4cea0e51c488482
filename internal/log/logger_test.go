package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Component: ComponentStore, Output: &buf})
	l.Info("loaded", FieldCount, 3)
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "count=3")
	assert.NotContains(t, out, "hidden")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf}).WithComponent(ComponentGit)
	l.Warn("commit skipped")

	assert.Contains(t, buf.String(), "component=git")
	assert.NotContains(t, buf.String(), "component=app")
	assert.Equal(t, 1, strings.Count(buf.String(), "component="))
}

func TestWithKeepsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf}).WithComponent(ComponentStore).With(FieldForm, "sale")
	l.Info("accepted")
	l.WithComponent(ComponentGit).Info("committed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, strings.Count(lines[0], "component="))
	assert.Contains(t, lines[0], "component=store")
	assert.Contains(t, lines[0], "form=sale")
	assert.Equal(t, 1, strings.Count(lines[1], "component="))
	assert.Contains(t, lines[1], "component=git")
	assert.NotContains(t, lines[1], "form=sale", "a new component starts from the bare handler")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, "level %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
