package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reels/internal/config"
)

func TestSetupIn_DisabledWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, closeFn, err := SetupIn(config.LogConfig{}, dir)
	require.NoError(t, err)
	log.Error("dropped")
	require.NoError(t, closeFn())

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "disabled logging must not create the log dir")
}

func TestSetupIn_WritesLevelFilteredFile(t *testing.T) {
	dir := t.TempDir()

	log, closeFn, err := SetupIn(config.LogConfig{Enabled: true, Level: "warn"}, dir)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("component", "reel").Warn("shown")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=reel")
	assert.NotContains(t, out, "hidden")
}

func TestSetupIn_JSONAndBadLevel(t *testing.T) {
	dir := t.TempDir()

	log, closeFn, err := SetupIn(config.LogConfig{Enabled: true, Level: "loud", JSON: true}, dir)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Info("hello")
	require.NoError(t, closeFn())

	entries, _ := os.ReadDir(dir)
	require.Len(t, entries, 1)
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(data)), "{"))
}
