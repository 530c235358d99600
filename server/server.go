// Package server implements the HTTP API for submitting Lua 5.3 chunks to
// the recognizer and retrieving the history of past submissions.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stevenskevin/lua-2pda/internal/luapda"
	"github.com/stevenskevin/lua-2pda/server/api"
	"github.com/stevenskevin/lua-2pda/server/lservice"
	"github.com/stevenskevin/lua-2pda/server/middle"
)

// Server is a running instance of the lua2pda HTTP API, bound to a
// persistence store and a signing secret.
type Server struct {
	router chi.Router
	cfg    Config
}

// New builds a Server from cfg, connecting to the configured persistence
// store. Unset fields of cfg are filled with their defaults before use.
func New(cfg Config) (Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return Server{}, fmt.Errorf("invalid config: %w", err)
	}

	db, err := cfg.DB.Connect()
	if err != nil {
		return Server{}, fmt.Errorf("connect to db: %w", err)
	}

	luapda.ConfigureCache(cfg.Cache.Path, cfg.Cache.Enabled)

	a := api.API{
		Backend: lservice.Service{
			DB:                db,
			PrivacyDigestOnly: cfg.PrivacyDigestOnly,
		},
		UnauthDelay: cfg.UnauthDelay(),
		TokenSecret: cfg.TokenSecret,
		APIKey:      cfg.APIKey,
	}

	r := chi.NewRouter()
	r.Use(middle.DontPanic())

	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Get("/info", a.HTTPGetInfo())
		r.Post("/validate", a.HTTPValidate())
		r.Post("/tokens", a.HTTPCreateToken())

		r.Group(func(r chi.Router) {
			r.Use(middle.RequireAuth(cfg.TokenSecret, cfg.UnauthDelay()))
			r.Get("/history", a.HTTPGetHistory())
			r.Get("/history/{id}", a.HTTPGetHistoryEntry())
		})
	})

	return Server{router: r, cfg: cfg}, nil
}

// ServeForever listens on addr (e.g. "localhost:8080" or ":8080") until
// the process is terminated or the listener fails.
func (s Server) ServeForever(addr string) error {
	log.Printf("INFO  Listening on %s...", addr)
	return http.ListenAndServe(addr, s.router)
}
