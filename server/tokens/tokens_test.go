package tokens

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("a-long-enough-test-secret-value")

func TestGenerateAndValidate_RoundTrips(t *testing.T) {
	tok, err := Generate(testSecret)
	require.NoError(t, err)
	assert.NoError(t, Validate(tok, testSecret))
}

func TestValidate_WrongSecretFails(t *testing.T) {
	tok, err := Generate(testSecret)
	require.NoError(t, err)
	err = Validate(tok, []byte("a-different-secret-value-here!!"))
	assert.Error(t, err)
}

func TestGet_ParsesBearerHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	tok, err := Get(req)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)
}

func TestGet_MissingHeaderFails(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)

	_, err = Get(req)
	assert.Error(t, err)
}

func TestGet_NonBearerSchemeFails(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc.def.ghi")

	_, err = Get(req)
	assert.Error(t, err)
}
