package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingPathReturnsZeroValue(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestLoad_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[server]
listen_address = "0.0.0.0:9090"
api_key = "topsecret"

[database]
type = "sqlite"
data_dir = "/var/lib/lua2pda"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", f.Server.ListenAddress)
	assert.Equal(t, "topsecret", f.Server.APIKey)
	assert.Equal(t, "sqlite", f.Database.Type)
	assert.Equal(t, "/var/lib/lua2pda", f.Database.DataDir)
}

func TestFillDefaults_LeavesExplicitValuesAlone(t *testing.T) {
	f := File{}
	f.Limits.MaxStackDepth = 10
	out := f.FillDefaults()
	assert.Equal(t, 10, out.Limits.MaxStackDepth)
	assert.Equal(t, DefaultLongBracketLevel, out.Limits.LongBracketLevel)
	assert.Equal(t, "localhost:8080", out.Server.ListenAddress)
	assert.Equal(t, "inmem", out.Database.Type)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvListenAddress, ":9999")
	t.Setenv(EnvAPIKey, "envkey")

	f := File{}
	out := f.EnvOverride()
	assert.Equal(t, ":9999", out.Server.ListenAddress)
	assert.Equal(t, "envkey", out.Server.APIKey)
}

func TestNormalizeSecret_PadsShortSecret(t *testing.T) {
	secret := NormalizeSecret("short")
	assert.GreaterOrEqual(t, len(secret), MinSecretSize)
}

func TestNormalizeSecret_TruncatesLongSecret(t *testing.T) {
	long := make([]byte, MaxSecretSize*2)
	for i := range long {
		long[i] = 'x'
	}
	secret := NormalizeSecret(string(long))
	assert.Len(t, secret, MaxSecretSize)
}

func TestNormalizeSecret_EmptyStaysEmpty(t *testing.T) {
	secret := NormalizeSecret("")
	assert.Empty(t, secret)
}
