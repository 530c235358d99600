package luapda

import (
	"sync"

	"github.com/stevenskevin/lua-2pda/internal/twopda"
)

var (
	defOnce sync.Once
	def     *twopda.Definition
)

// Definition returns the Lua 5.3 chunk-recognizing transition table,
// building it on first use. Construction is done exactly once per
// process regardless of how many chunks are parsed afterward. If
// ConfigureCache was called with a valid, checksum-verified cache file,
// the table is loaded from there instead of rebuilt from the subsystem
// builders.
func Definition() *twopda.Definition {
	defOnce.Do(func() {
		if cached, ok := loadCachedDefinition(); ok {
			def = cached
			return
		}
		def = NewBuilder().Build()
		saveCachedDefinition(def)
	})
	return def
}

// Parse recognizes src as a Lua 5.3 chunk, returning nil if it is
// accepted. On rejection, the error is always a *twopda.Error carrying
// the byte index, state, and stack at the point recognition failed (or,
// if the rejection happened at end-of-input with nothing left to read,
// Error.EOF is set instead of Byte/Index being meaningful); see
// twopda.Error for the exact fields. A shebang line, if present, is only
// ever consulted at byte offset 0. src is never retained or mutated.
func Parse(src []byte, debugLevel twopda.DebugLevel, tracer twopda.Tracer) error {
	return twopda.Parse(Definition(), src, debugLevel, tracer)
}
