/*
Lua2pda-server starts an HTTP server exposing the Lua 5.3 chunk recognizer
over a REST API and begins listening for new connections.

Usage:

	lua2pda-server [flags]
	lua2pda-server [flags] -l [[ADDRESS]:PORT]

Once started, the server will listen for HTTP requests and respond to
them using the JSON REST API documented under /api/v1. By default, it
will listen on localhost:8080. This can be changed with the
--listen/-l flag, the LUA2PDA_LISTEN_ADDRESS environment variable, or a
loaded config file, in increasing priority from file to env to flag.

If a token secret is not given by any of the above means, one is
generated at random and logged as a warning. As a consequence, all
bearer tokens issued become invalid as soon as the server shuts down.
This is suitable for testing but not for production use.

The flags are:

	-v, --version
		Give the current version of the lua2pda server and then exit.

	-c, --config PATH
		Load a TOML config file from PATH before applying environment
		variables and flags on top of it.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in ADDRESS:PORT or :PORT
		format.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing bearer tokens. If it is
		shorter than 32 bytes it is repeated until it reaches that
		length; it is truncated at 64 bytes.

	-k, --api-key API_KEY
		Require this key in requests to mint new bearer tokens. If not
		given, token creation is disabled entirely.

	--db DRIVER[:PARAMS]
		Use the given DB connection string. DRIVER must be one of
		inmem or sqlite. sqlite needs the path to a data directory,
		e.g. sqlite:path/to/data. Defaults to inmem.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/stevenskevin/lua-2pda/internal/config"
	"github.com/stevenskevin/lua-2pda/internal/version"
	"github.com/stevenskevin/lua-2pda/server"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of the lua2pda server and then exit.")
	flagConfig  = pflag.StringP("config", "c", "", "Load a TOML config file before applying env vars and flags on top of it.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for signing bearer tokens.")
	flagAPIKey  = pflag.StringP("api-key", "k", "", "Require this key to mint new bearer tokens.")
	flagDB      = pflag.String("db", "", "Use the given DB connection string.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (lua2pda v%s)\n", version.ServerCurrent, version.Current)
		return
	}

	args := pflag.Args()
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	f, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
	f = f.FillDefaults().EnvOverride()

	if pflag.Lookup("listen").Changed {
		f.Server.ListenAddress = *flagListen
	}
	if pflag.Lookup("secret").Changed {
		f.Server.TokenSecret = *flagSecret
	}
	if pflag.Lookup("api-key").Changed {
		f.Server.APIKey = *flagAPIKey
	}
	dbConnStr := f.Database.Type
	if f.Database.DataDir != "" {
		dbConnStr = fmt.Sprintf("%s:%s", f.Database.Type, f.Database.DataDir)
	}
	if pflag.Lookup("db").Changed {
		dbConnStr = *flagDB
	}

	db, err := server.ParseDBConnString(dbConnStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\nDo -h for help.\n", err.Error())
		os.Exit(1)
	}

	var tokSecret []byte
	if f.Server.TokenSecret != "" {
		tokSecret = config.NormalizeSecret(f.Server.TokenSecret)
		if len(tokSecret) > config.MaxSecretSize {
			fmt.Fprintf(os.Stderr, "Token secret is %d bytes, but it must be <= %d bytes\nDo -h for help.\n", len(tokSecret), config.MaxSecretSize)
			os.Exit(1)
		}
	} else {
		tokSecret = make([]byte, config.MaxSecretSize)
		if _, err := rand.Read(tokSecret); err != nil {
			fmt.Fprintf(os.Stderr, "Could not generate token secret: %s\n", err.Error())
			os.Exit(1)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	cfg := server.Config{
		TokenSecret: tokSecret,
		APIKey:      f.Server.APIKey,
		DB:          db,
		Cache: server.CacheConfig{
			Path:    f.Cache.Path,
			Enabled: f.Cache.Enabled,
		},
		PrivacyDigestOnly: f.History.PrivacyDigestOnly,
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	log.Printf("DEBUG Server initialized")

	log.Printf("INFO  Starting lua2pda server %s...", version.ServerCurrent)
	if err := srv.ServeForever(f.Server.ListenAddress); err != nil {
		log.Fatalf("FATAL server exited: %s", err.Error())
	}
}
