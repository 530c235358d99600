package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDBConnString_InMemory(t *testing.T) {
	db, err := ParseDBConnString("inmem")
	require.NoError(t, err)
	assert.Equal(t, DatabaseInMemory, db.Type)
}

func TestParseDBConnString_SQLiteRequiresPath(t *testing.T) {
	_, err := ParseDBConnString("sqlite")
	assert.Error(t, err)
}

func TestParseDBConnString_SQLiteWithPath(t *testing.T) {
	db, err := ParseDBConnString("sqlite:/var/lib/lua2pda")
	require.NoError(t, err)
	assert.Equal(t, DatabaseSQLite, db.Type)
	assert.Equal(t, "/var/lib/lua2pda", db.DataDir)
}

func TestParseDBConnString_UnknownEngine(t *testing.T) {
	_, err := ParseDBConnString("postgres:somewhere")
	assert.Error(t, err)
}

func TestConfig_FillDefaults(t *testing.T) {
	cfg := Config{}.FillDefaults()
	assert.NotEmpty(t, cfg.TokenSecret)
	assert.Equal(t, DatabaseInMemory, cfg.DB.Type)
	assert.Equal(t, 1000, cfg.UnauthDelayMillis)
}

func TestConfig_ValidateRejectsShortSecret(t *testing.T) {
	cfg := Config{TokenSecret: []byte("too-short"), DB: Database{Type: DatabaseInMemory}}
	assert.Error(t, cfg.Validate())
}

func TestConfig_ValidateAcceptsFilledDefaults(t *testing.T) {
	cfg := Config{}.FillDefaults()
	assert.NoError(t, cfg.Validate())
}

func TestConfig_UnauthDelay_NegativeDisables(t *testing.T) {
	cfg := Config{UnauthDelayMillis: -1}
	assert.Zero(t, cfg.UnauthDelay())
}
