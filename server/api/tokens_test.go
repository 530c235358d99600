package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpCreateToken_CorrectAPIKeyMintsToken(t *testing.T) {
	a := newTestAPI()
	a.APIKey = "correct-key"
	a.TokenSecret = []byte("a-long-enough-test-secret-value")

	req := postJSON(t, "/api/v1/tokens", TokenRequest{APIKey: "correct-key"})
	w := httptest.NewRecorder()
	a.HTTPCreateToken()(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp TokenModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestEpCreateToken_WrongAPIKeyRejected(t *testing.T) {
	a := newTestAPI()
	a.APIKey = "correct-key"
	a.TokenSecret = []byte("a-long-enough-test-secret-value")

	req := postJSON(t, "/api/v1/tokens", TokenRequest{APIKey: "wrong-key"})
	w := httptest.NewRecorder()
	a.HTTPCreateToken()(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEpCreateToken_NoConfiguredAPIKeyDisablesMinting(t *testing.T) {
	a := newTestAPI()
	a.TokenSecret = []byte("a-long-enough-test-secret-value")

	req := postJSON(t, "/api/v1/tokens", TokenRequest{APIKey: ""})
	w := httptest.NewRecorder()
	a.HTTPCreateToken()(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
