package middle

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stevenskevin/lua-2pda/server/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("a-long-enough-test-secret-value")

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_RejectsMissingToken(t *testing.T) {
	h := RequireAuth(testSecret, 0)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_AllowsValidToken(t *testing.T) {
	tok, err := tokens.Generate(testSecret)
	require.NoError(t, err)

	h := RequireAuth(testSecret, 0)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_AllowsMissingToken(t *testing.T) {
	var sawLoggedIn bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLoggedIn = r.Context().Value(AuthLoggedIn).(bool)
		w.WriteHeader(http.StatusOK)
	})

	h := OptionalAuth(testSecret, 0)(next)
	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sawLoggedIn)
}

func TestDontPanic_RecoversAndWrites500(t *testing.T) {
	h := DontPanic()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth_RejectsExpiredToken(t *testing.T) {
	h := RequireAuth(testSecret, 0)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()

	start := time.Now()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Less(t, time.Since(start), time.Second)
}
