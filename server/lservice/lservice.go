// Package lservice has the service for interacting with the lua2pda server
// backend, decoupled from the API that accesses it.
package lservice

import (
	"github.com/stevenskevin/lua-2pda/internal/historydb"
)

// Service performs the actions requested of the lua2pda server backend and
// makes calls to persistence to preserve and retrieve history.
//
// The zero value of Service is not ready to be used; assign a valid Store to
// DB before attempting to use it.
type Service struct {
	// DB is the persistence store of the service.
	DB historydb.Store

	// PrivacyDigestOnly, if true, has Validate record only a content
	// digest of submitted source in history, never the source itself.
	PrivacyDigestOnly bool
}
