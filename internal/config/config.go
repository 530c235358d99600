// Package config loads process-wide settings for the lua2pda CLI and
// server from a TOML file, with command-line flags and environment
// variables layered on top in that order of increasing priority.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	EnvListenAddress = "LUA2PDA_LISTEN_ADDRESS"
	EnvTokenSecret   = "LUA2PDA_TOKEN_SECRET"
	EnvDatabase      = "LUA2PDA_DATABASE"
	EnvAPIKey        = "LUA2PDA_API_KEY"

	MinSecretSize = 32
	MaxSecretSize = 64

	// DefaultMaxStackDepth bounds how deep the recognizer's symbol stack
	// may grow before a chunk is rejected as too deeply nested, guarding
	// against unbounded memory growth on pathological input.
	DefaultMaxStackDepth = 4096

	// DefaultLongBracketLevel is the highest long-bracket level ('[==[',
	// etc.) the recognizer will accept.
	DefaultLongBracketLevel = 16

	// DefaultCachePath is where the built transition table is cached
	// when caching is enabled but no path is given explicitly.
	DefaultCachePath = "lua2pda-table.cache"
)

// File is the subset of configuration that may be loaded from a TOML
// file on disk. Command-line flags and environment variables, where
// present, override the corresponding field after loading.
type File struct {
	Debug struct {
		Level int `toml:"level"`
	} `toml:"debug"`

	Limits struct {
		MaxStackDepth    int `toml:"max_stack_depth"`
		LongBracketLevel int `toml:"long_bracket_level"`
	} `toml:"limits"`

	Server struct {
		ListenAddress string `toml:"listen_address"`
		TokenSecret   string `toml:"token_secret"`
		APIKey        string `toml:"api_key"`
	} `toml:"server"`

	Database struct {
		Type    string `toml:"type"`
		DataDir string `toml:"data_dir"`
	} `toml:"database"`

	Cache struct {
		// Path is the file the built transition table is cached to
		// between runs. Ignored if Enabled is false.
		Path string `toml:"path"`

		Enabled bool `toml:"enabled"`
	} `toml:"cache"`

	History struct {
		// PrivacyDigestOnly, if true, stores only a content digest of
		// submitted source in the history log instead of the source
		// itself.
		PrivacyDigestOnly bool `toml:"privacy_digest_only"`
	} `toml:"history"`
}

// Load reads and parses a TOML file at path into a File. A missing path
// is not an error; it returns a zero-valued File so the caller can fall
// back entirely to flags and environment variables.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return f, nil
}

// FillDefaults returns a copy of f with zero-valued fields set to their
// defaults.
func (f File) FillDefaults() File {
	out := f
	if out.Limits.MaxStackDepth == 0 {
		out.Limits.MaxStackDepth = DefaultMaxStackDepth
	}
	if out.Limits.LongBracketLevel == 0 {
		out.Limits.LongBracketLevel = DefaultLongBracketLevel
	}
	if out.Server.ListenAddress == "" {
		out.Server.ListenAddress = "localhost:8080"
	}
	if out.Database.Type == "" {
		out.Database.Type = "inmem"
	}
	if out.Cache.Enabled && out.Cache.Path == "" {
		out.Cache.Path = DefaultCachePath
	}
	return out
}

// EnvOverride applies any of the recognized environment variables on top
// of f, returning the result. Flags, applied separately by the caller
// after this, take final priority.
func (f File) EnvOverride() File {
	out := f
	if v := os.Getenv(EnvListenAddress); v != "" {
		out.Server.ListenAddress = v
	}
	if v := os.Getenv(EnvTokenSecret); v != "" {
		out.Server.TokenSecret = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		out.Server.APIKey = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		out.Database.Type = v
	}
	return out
}

// NormalizeSecret pads a short secret by repeating it and truncates an
// overlong one, mirroring the bounds tokens.go enforces when signing.
func NormalizeSecret(s string) []byte {
	secret := []byte(s)
	for len(secret) > 0 && len(secret) < MinSecretSize {
		secret = append(secret, secret...)
	}
	if len(secret) > MaxSecretSize {
		secret = secret[:MaxSecretSize]
	}
	return secret
}
