package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("DOCSUM_TEST_STRING", "  openai ")
	assert.Equal(t, "openai", GetEnvString("DOCSUM_TEST_STRING", "ollama"))

	t.Setenv("DOCSUM_TEST_STRING", "")
	assert.Equal(t, "ollama", GetEnvString("DOCSUM_TEST_STRING", "ollama"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "unset uses default", value: "", want: 1024},
		{name: "valid", value: "512", want: 512},
		{name: "negative parses", value: "-3", want: -3},
		{name: "garbage", value: "abc", want: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DOCSUM_TEST_INT", tt.value)

			got, err := GetEnvInt("DOCSUM_TEST_INT", 1024)

			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "DOCSUM_TEST_INT")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("DOCSUM_TEST_FLOAT", "2.5")
	got, err := GetEnvFloat("DOCSUM_TEST_FLOAT", 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)

	t.Setenv("DOCSUM_TEST_FLOAT", "fast")
	_, err = GetEnvFloat("DOCSUM_TEST_FLOAT", 0)
	assert.Error(t, err)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("DOCSUM_TEST_DURATION", "90s")
	got, err := GetEnvDuration("DOCSUM_TEST_DURATION", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got)

	t.Setenv("DOCSUM_TEST_DURATION", "")
	got, err = GetEnvDuration("DOCSUM_TEST_DURATION", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, got)

	t.Setenv("DOCSUM_TEST_DURATION", "soon")
	_, err = GetEnvDuration("DOCSUM_TEST_DURATION", time.Minute)
	assert.Error(t, err)
}
