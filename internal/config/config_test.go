package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handicraft-catalog/internal/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CACHE_TTL", "DEFAULT_SORT", "DEFAULT_PAGE_SIZE", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Port:            "8080",
		GinMode:         "release",
		LogLevel:        "info",
		LogFormat:       "text",
		CacheTTL:        2 * time.Minute,
		DefaultSort:     models.SortNewest,
		DefaultPageSize: 20,
		AllowedOrigins:  []string{"*"},
	}, cfg)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("DEFAULT_SORT", "5")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, http://localhost:19006 ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, models.SortDiscount, cfg.DefaultSort)
	assert.Equal(t, 50, cfg.DefaultPageSize)
	assert.Equal(t, []string{"https://shop.example", "http://localhost:19006"}, cfg.AllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	valid := map[string]string{
		"PORT":                 "8080",
		"GIN_MODE":             "release",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "text",
		"CACHE_TTL":            "1m",
		"DEFAULT_SORT":         "newest",
		"DEFAULT_PAGE_SIZE":    "20",
		"CORS_ALLOWED_ORIGINS": "*",
	}

	tests := []struct {
		key   string
		value string
	}{
		{"PORT", "http"},
		{"GIN_MODE", "production"},
		{"LOG_LEVEL", "verbose"},
		{"LOG_FORMAT", "xml"},
		{"CACHE_TTL", "forever"},
		{"CACHE_TTL", "-1m"},
		{"DEFAULT_SORT", "alphabetical"},
		{"DEFAULT_PAGE_SIZE", "0"},
		{"DEFAULT_PAGE_SIZE", "many"},
		{"CORS_ALLOWED_ORIGINS", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			for k, v := range valid {
				t.Setenv(k, v)
			}
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
