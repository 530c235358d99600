package luapda

import (
	"crypto/subtle"
	"os"

	"github.com/dekarrin/rezi"
	"golang.org/x/crypto/blake2b"

	"github.com/stevenskevin/lua-2pda/internal/twopda"
	"github.com/stevenskevin/lua-2pda/internal/version"
)

// cacheSumSuffix names the checksum file written alongside a cached
// table, rather than prepending a length-prefixed sum to the same file,
// so a corrupt or partial write of one never looks valid against the
// other.
const cacheSumSuffix = ".sum"

var (
	cachePath    string
	cacheEnabled bool
)

// ConfigureCache enables or disables loading and saving the built
// transition table from/to a file at path, instead of always running the
// subsystem builders on first use. It has no effect once Definition has
// already been called, so callers must set it up during process startup.
func ConfigureCache(path string, enabled bool) {
	cachePath = path
	cacheEnabled = enabled
}

// loadCachedDefinition attempts to load a previously-built table from
// the configured cache file, verifying it against a blake2b checksum of
// the table bytes plus the running binary's version tag. A cache built
// by a different version, one that is missing, or one that is disabled
// in configuration, is treated identically: report absent and let the
// caller rebuild.
func loadCachedDefinition() (*twopda.Definition, bool) {
	if !cacheEnabled || cachePath == "" {
		return nil, false
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	wantSum, err := os.ReadFile(cachePath + cacheSumSuffix)
	if err != nil {
		return nil, false
	}
	if subtle.ConstantTimeCompare(tableChecksum(data), wantSum) != 1 {
		return nil, false
	}

	var snap twopda.Snapshot
	if _, err := rezi.Dec(data, &snap); err != nil {
		return nil, false
	}

	return twopda.FromSnapshot(snap), true
}

// saveCachedDefinition writes def's table to the configured cache file
// along with its checksum. Failures are not fatal: a table that could
// not be cached is simply rebuilt again on the next process start.
func saveCachedDefinition(def *twopda.Definition) {
	if !cacheEnabled || cachePath == "" {
		return
	}

	data, err := rezi.Enc(def.Export())
	if err != nil {
		return
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return
	}
	_ = os.WriteFile(cachePath+cacheSumSuffix, tableChecksum(data), 0644)
}

// tableChecksum hashes data alongside the current build's version tag,
// so that a stale cache from a prior binary build is detected exactly
// like a corrupted one: neither checksum-verifies, and both are rebuilt.
func tableChecksum(data []byte) []byte {
	h, _ := blake2b.New256([]byte(version.Current))
	h.Write(data)
	return h.Sum(nil)
}
