package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("RANKINGS_LOCKING", "")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 5000, DataFile: "rankings_data.json", Locking: true}, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_FILE", "/tmp/doce.json")
	t.Setenv("RANKINGS_LOCKING", "false")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 8080, DataFile: "/tmp/doce.json", Locking: false}, cfg)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATA_FILE", "")
	t.Setenv("RANKINGS_LOCKING", "")

	cfg, err := LoadConfig([]string{"--port", "9090", "--data", "other.json", "--lock=false"})
	require.NoError(t, err)
	assert.Equal(t, Config{Port: 9090, DataFile: "other.json", Locking: false}, cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}, nil},
		{"bad locking", map[string]string{"RANKINGS_LOCKING": "maybe"}, nil},
		{"port out of range", nil, []string{"--port", "70000"}},
		{"unknown flag", nil, []string{"--verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("DATA_FILE", "")
			t.Setenv("RANKINGS_LOCKING", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}
