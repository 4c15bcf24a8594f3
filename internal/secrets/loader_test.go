package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  file-secret \n"), 0o600))

	secret, err := Load(Source{Name: "catalog token", File: path})
	require.NoError(t, err)
	assert.Equal(t, "file-secret", secret)
}

func TestLoadFilePrecedesEnvAndValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("from-file"), 0o600))
	t.Setenv("SECRET_TEST_TOKEN", "from-env")

	secret, err := Load(Source{
		File:  path,
		Env:   "SECRET_TEST_TOKEN",
		Value: "from-value",
	})
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SECRET_TEST_TOKEN", " env-secret ")

	secret, err := Load(Source{Env: "SECRET_TEST_TOKEN", Value: "fallback"})
	require.NoError(t, err)
	assert.Equal(t, "env-secret", secret)
}

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Value: "inline"})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Source{Name: "catalog token"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog token")

	_, err = Load(Source{File: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))
	_, err = Load(Source{File: empty})
	assert.Error(t, err)
}
