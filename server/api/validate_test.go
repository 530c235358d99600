package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stevenskevin/lua-2pda/internal/historydb"
	"github.com/stevenskevin/lua-2pda/server/lservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI() API {
	return API{Backend: lservice.Service{DB: historydb.NewInMemoryStore()}}
}

func postJSON(t *testing.T, path string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEpValidate_AcceptedChunk(t *testing.T) {
	a := newTestAPI()
	req := postJSON(t, "/api/v1/validate", ValidateRequest{Source: "local x = 1\n"})

	w := httptest.NewRecorder()
	a.HTTPValidate()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ValidateModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Nil(t, resp.Failure)
}

func TestEpValidate_RejectedChunk(t *testing.T) {
	a := newTestAPI()
	req := postJSON(t, "/api/v1/validate", ValidateRequest{Source: "@@@not lua@@@"})

	w := httptest.NewRecorder()
	a.HTTPValidate()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ValidateModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Accepted)
	require.NotNil(t, resp.Failure)
	assert.NotEmpty(t, resp.Failure.Message)
}

func TestEpValidate_BadRequestOnWrongContentType(t *testing.T) {
	a := newTestAPI()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader([]byte("{}")))

	w := httptest.NewRecorder()
	a.HTTPValidate()(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
