package device_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/devicedetector/pkg/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordsFile(t *testing.T) {
	t.Parallel()

	kw, err := device.LoadKeywordsFile("testdata/keywords.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"smarttv", "googletv", "appletv"}, kw.TV)
	assert.Equal(t, []string{"ipad", "tablet", "kindle"}, kw.Tablet)
	assert.Equal(t, []string{"iphone", "mobile"}, kw.Mobile)
	assert.Equal(t, []string{"windows", "macintosh", "x11"}, kw.Desktop)

	assert.Equal(t, device.TV, device.Parse("X (SmartTV; Mobile)", kw).Type())
}

func TestLoadKeywordsFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := device.LoadKeywordsFile("testdata/does_not_exist.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, device.ErrKeywordsFile)
}

func TestLoadKeywordsFile_Invalid(t *testing.T) {
	t.Parallel()

	_, err := device.LoadKeywordsFile("testdata/invalid.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, device.ErrInvalidKeywords)
}

func TestLoadKeywords(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		kw, err := device.LoadKeywords(strings.NewReader(""))
		require.NoError(t, err)
		assert.True(t, kw.IsEmpty())
	})

	t.Run("partial document", func(t *testing.T) {
		t.Parallel()
		kw, err := device.LoadKeywords(strings.NewReader("mobile: iPhone Android\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"iphone", "android"}, kw.Mobile)
		assert.Empty(t, kw.TV)
	})

	t.Run("unknown group", func(t *testing.T) {
		t.Parallel()
		_, err := device.LoadKeywords(strings.NewReader("console: xbox\n"))
		assert.ErrorIs(t, err, device.ErrInvalidKeywords)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := device.LoadKeywords(strings.NewReader("tv: [smarttv\n"))
		assert.ErrorIs(t, err, device.ErrInvalidKeywords)
	})
}
