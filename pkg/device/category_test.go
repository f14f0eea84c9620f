package device_test

import (
	"encoding/json"
	"testing"

	"github.com/dmitrymomot/devicedetector/pkg/device"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	t.Parallel()
	tests := []struct {
		category device.Category
		expected string
	}{
		{device.Mobile, "mobile"},
		{device.Desktop, "desktop"},
		{device.Tablet, "tablet"},
		{device.TV, "TV"},
		{device.Robot, "ROBOT"},
		{device.Other, "other"},
		{device.Category(200), "other"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.category.String())
		})
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	all := device.Categories()
	require.Len(t, all, 6)

	seen := make(map[string]bool, len(all))
	for _, c := range all {
		seen[c.String()] = true
	}
	assert.Len(t, seen, 6, "labels must be distinct")
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range device.Categories() {
		parsed, err := device.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	parsed, err := device.ParseCategory("  tv ")
	require.NoError(t, err)
	assert.Equal(t, device.TV, parsed)

	parsed, err = device.ParseCategory("robot")
	require.NoError(t, err)
	assert.Equal(t, device.Robot, parsed)

	_, err = device.ParseCategory("console")
	assert.ErrorIs(t, err, device.ErrUnknownCategory)
}

func TestCategory_JSON(t *testing.T) {
	t.Parallel()

	payload := struct {
		Type device.Category `json:"type"`
	}{Type: device.TV}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"TV"}`, string(data))

	var decoded struct {
		Type device.Category `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"tablet"}`), &decoded))
	assert.Equal(t, device.Tablet, decoded.Type)

	err = json.Unmarshal([]byte(`{"type":"fridge"}`), &decoded)
	assert.ErrorIs(t, err, device.ErrUnknownCategory)
}
