package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv(EnvToken, "")
	t.Setenv(EnvTelegramToken, "")
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	return cfg
}

func TestResolveToken_Order(t *testing.T) {
	cfg := tokenConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "token.txt"), []byte("from-file\n"), 0600))

	token, err := ResolveToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "from-file", token)

	t.Setenv(EnvTelegramToken, "from-secondary")
	token, err = ResolveToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "from-secondary", token)

	t.Setenv(EnvToken, "from-primary")
	token, err = ResolveToken(cfg)
	require.NoError(t, err)
	assert.Equal(t, "from-primary", token)
}

func TestResolveToken_Missing(t *testing.T) {
	cfg := tokenConfig(t)

	_, err := ResolveToken(cfg)
	require.ErrorIs(t, err, ErrNoToken)
	assert.Contains(t, err.Error(), EnvToken)
	assert.Contains(t, err.Error(), EnvTelegramToken)
}

func TestResolveToken_BlankFile(t *testing.T) {
	cfg := tokenConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Dir, "token.txt"), []byte("  \n"), 0600))

	_, err := ResolveToken(cfg)
	assert.ErrorIs(t, err, ErrNoToken)
}
