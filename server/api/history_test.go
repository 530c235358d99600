package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpGetHistory_ListsRecordedValidations(t *testing.T) {
	a := newTestAPI()

	validateReq := postJSON(t, "/api/v1/validate", ValidateRequest{Source: "return 1\n"})
	a.HTTPValidate()(httptest.NewRecorder(), validateReq)

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	w := httptest.NewRecorder()
	a.HTTPGetHistory()(w, listReq)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HistoryEntryModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestEpGetHistoryEntry_NotFound(t *testing.T) {
	a := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/00000000-0000-0000-0000-000000000000", nil)
	req = withURLParam(req, "id", "00000000-0000-0000-0000-000000000000")
	w := httptest.NewRecorder()

	a.HTTPGetHistoryEntry()(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEpGetHistoryEntry_FindsRecordedValidation(t *testing.T) {
	a := newTestAPI()

	validateReq := postJSON(t, "/api/v1/validate", ValidateRequest{Source: "return 1\n"})
	vw := httptest.NewRecorder()
	a.HTTPValidate()(vw, validateReq)

	var validated ValidateModel
	require.NoError(t, json.Unmarshal(vw.Body.Bytes(), &validated))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history/"+validated.ID, nil)
	req = withURLParam(req, "id", validated.ID)
	w := httptest.NewRecorder()

	a.HTTPGetHistoryEntry()(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
