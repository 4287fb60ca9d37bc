package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styletree/styletree/internal/styles"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, styles.FormatDefault, cfg.FormatMode())
	assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
	assert.Empty(t, cfg.Units)
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("format", "minify")
	viper.Set("watch.debounce", "150ms")
	viper.Set("units", map[string]any{
		"header": map[string]any{
			"src":     "styles/header.yml",
			"output":  "dist/header.css",
			"exclude": []string{"#app .sections*"},
		},
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, styles.FormatMinify, cfg.FormatMode())
	assert.Equal(t, 150*time.Millisecond, cfg.Watch.Debounce)
	require.Contains(t, cfg.Units, "header")
	assert.Equal(t, "styles/header.yml", cfg.Units["header"].Src)
	assert.Equal(t, "dist/header.css", cfg.Units["header"].Output)
	assert.Equal(t, []string{"#app .sections*"}, cfg.Units["header"].Exclude)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("format", "compressed")

	_, err := Load()
	assert.Error(t, err)
}

func TestUnitValidate(t *testing.T) {
	testCases := []struct {
		name    string
		unit    UnitConfig
		wantErr bool
	}{
		{"complete", UnitConfig{Src: "a.yml", Output: "a.css"}, false},
		{"missing src", UnitConfig{Output: "a.css"}, true},
		{"missing output", UnitConfig{Src: "a.yml"}, true},
		{"empty", UnitConfig{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.unit.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
