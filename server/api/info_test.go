package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpGetInfo_ReportsVersionAndStats(t *testing.T) {
	a := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/info", nil)
	w := httptest.NewRecorder()
	a.HTTPGetInfo()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp InfoModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Version.Server)
	assert.NotEmpty(t, resp.Version.Engine)
	assert.Greater(t, resp.Stats.States, 0)
}
