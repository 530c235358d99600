// Package middle contains middleware for use with the lua2pda server.
package middle

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/stevenskevin/lua-2pda/server/result"
	"github.com/stevenskevin/lua-2pda/server/tokens"
)

type mwFunc http.HandlerFunc

func (sf mwFunc) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sf(w, req)
}

// Middleware is a function that takes a handler and returns a new handler which
// wraps the given one and provides some additional functionality.
type Middleware func(next http.Handler) http.Handler

// AuthKey is a key in the context of a request populated by an AuthHandler.
type AuthKey int64

const (
	AuthLoggedIn AuthKey = iota
)

// AuthHandler is middleware that accepts a request, extracts the bearer
// token, and validates it against the server's secret. There is no user
// entity to look up: a validated token is itself the full credential.
//
// AuthLoggedIn is added to the request context before the request is
// passed to the next step in the chain (only meaningful for optional
// auth; for required auth, an invalid or missing token results in an
// HTTP error being returned before the next handler runs).
type AuthHandler struct {
	secret        []byte
	required      bool
	unauthedDelay time.Duration
	next          http.Handler
}

func (ah *AuthHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var validated bool

	tok, err := tokens.Get(req)
	if err == nil {
		err = tokens.Validate(tok, ah.secret)
		if err == nil {
			validated = true
		}
	}

	if !validated && ah.required {
		r := result.Unauthorized("", "%v", err)
		time.Sleep(ah.unauthedDelay)
		r.WriteResponse(w)
		r.Log(req)
		return
	}

	ctx := context.WithValue(req.Context(), AuthLoggedIn, validated)
	req = req.WithContext(ctx)
	ah.next.ServeHTTP(w, req)
}

// RequireAuth returns a Middleware that rejects any request not carrying
// a bearer token valid against secret.
func RequireAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{secret: secret, unauthedDelay: unauthDelay, required: true, next: next}
	}
}

// OptionalAuth returns a Middleware that records whether a request
// carried a valid bearer token, without rejecting requests that didn't.
func OptionalAuth(secret []byte, unauthDelay time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return &AuthHandler{secret: secret, unauthedDelay: unauthDelay, required: false, next: next}
	}
}

// DontPanic returns a Middleware that performs a panic check as it exits. If
// the function is panicking, it will write out an HTTP response with a generic
// message to the client and add it to the log.
func DontPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return mwFunc(func(w http.ResponseWriter, r *http.Request) {
			defer panicTo500(w, r)
			next.ServeHTTP(w, r)
		})
	}
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicVal interface{}) {
	if panicErr := recover(); panicErr != nil {
		r := result.TextErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		)
		r.WriteResponse(w)
		r.Log(req)
		return true
	}
	return false
}
