package app_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrymomot/devicedetector/internal/app"
	"github.com/dmitrymomot/devicedetector/pkg/device"
	"github.com/dmitrymomot/devicedetector/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKeywords_Defaults(t *testing.T) {
	t.Parallel()

	kw, err := app.ResolveKeywords("", device.Keywords{})
	require.NoError(t, err)
	assert.Equal(t, device.DefaultKeywords(), kw)
}

func TestResolveKeywords_Layering(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tv: roku\ndesktop: [windows, beos]\n"), 0o600))

	kw, err := app.ResolveKeywords(path, device.Keywords{Desktop: []string{"haiku"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"roku"}, kw.TV, "file replaces defaults")
	assert.Equal(t, device.DefaultKeywords().Tablet, kw.Tablet, "untouched groups keep defaults")
	assert.Equal(t, []string{"haiku"}, kw.Desktop, "env overrides win over file")
}

func TestResolveKeywords_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := app.ResolveKeywords(filepath.Join(t.TempDir(), "nope.yaml"), device.Keywords{})
	assert.ErrorIs(t, err, device.ErrKeywordsFile)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	log := app.NewLogger(app.Config{Env: "production", LogLevel: "error"})
	require.NotNil(t, log)
	assert.False(t, log.Handler().Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, log.Handler().Enabled(t.Context(), slog.LevelError))
}

func TestKeywordsHook(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	kw := device.Keywords{TV: []string{"roku"}, Desktop: []string{"windows", "x11"}}
	app.KeywordsHook(kw)(logger.New(logger.WithOutput(buf)))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "device classifier ready", entry["msg"])
	assert.EqualValues(t, 1, entry["tv"])
	assert.EqualValues(t, 0, entry["mobile"])
	assert.EqualValues(t, 2, entry["desktop"])
}
