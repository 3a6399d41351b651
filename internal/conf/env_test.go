package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapboxTokenFromEnv(t *testing.T) {
	t.Setenv(MapboxTokenEnv, "pk.test-token")

	s := &Settings{}
	assert.Equal(t, "pk.test-token", s.MapboxToken())
}

func TestMapboxTokenFromFile(t *testing.T) {
	t.Setenv(MapboxTokenEnv, "")

	dir := t.TempDir()
	tokenFile := filepath.Join(dir, ".mapbox_token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("pk.file-token\n"), 0o600))

	s := &Settings{}
	s.Map.TokenFile = tokenFile
	assert.Equal(t, "pk.file-token", s.MapboxToken())
}

func TestMapboxTokenAbsent(t *testing.T) {
	t.Setenv(MapboxTokenEnv, "")

	s := &Settings{}
	s.Map.TokenFile = ""
	assert.Empty(t, s.MapboxToken())
}
