package result

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK_WritesJSONBody(t *testing.T) {
	r := OK(map[string]string{"hello": "world"})
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestNotFound_WritesErrorResponse(t *testing.T) {
	r := NotFound()
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
}

func TestUnauthorized_SetsWWWAuthenticateHeader(t *testing.T) {
	r := Unauthorized("")
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestNoContent_WritesNoBody(t *testing.T) {
	r := NoContent()
	w := httptest.NewRecorder()
	r.WriteResponse(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestWriteResponse_PanicsOnUnpopulatedResult(t *testing.T) {
	var r Result
	w := httptest.NewRecorder()
	assert.Panics(t, func() {
		r.WriteResponse(w)
	})
}

func TestLog_DoesNotPanic(t *testing.T) {
	r := OK(nil, "did a thing")
	req, err := http.NewRequest(http.MethodGet, "/api/v1/info", nil)
	require.NoError(t, err)
	req.RemoteAddr = "127.0.0.1:54321"

	assert.NotPanics(t, func() {
		r.Log(req)
	})
}
